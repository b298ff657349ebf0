// Package errors provides standardized error types for the wpsite CLI tool.
//
// SiteError is the primary error type, containing:
//   - Code: Categorizes the error (NOT_FOUND, ALREADY_EXISTS, etc.)
//   - Message: Human-readable error description
//   - Site: The site name involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// Common scenarios have pre-defined sentinel errors:
//
//	errors.ErrSiteNotFound   // site doesn't exist
//	errors.ErrSiteExists     // site already exists
//	errors.ErrInvalidName    // site name validation failed
//	errors.ErrRootRequired   // root access required
//
// Orchestrator failures carry the subprocess exit code so the CLI can
// propagate it unmodified:
//
//	var siteErr *errors.SiteError
//	if errors.As(err, &siteErr) && siteErr.Code == errors.ErrCodeOrchestrator {
//	    os.Exit(siteErr.ExitCode)
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"      // Site not found
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS" // Site already exists
	ErrCodeValidation    ErrorCode = "VALIDATION"     // Input validation failed
	ErrCodePermission    ErrorCode = "PERMISSION"     // Permission denied
	ErrCodeConfig        ErrorCode = "CONFIG"         // Registry/configuration error
	ErrCodeOrchestrator  ErrorCode = "ORCHESTRATOR"   // Compose orchestrator failure
	ErrCodeMaterialize   ErrorCode = "MATERIALIZE"    // Site file generation error
	ErrCodeInternal      ErrorCode = "INTERNAL"       // Internal/unexpected error
)

// SiteError represents a structured error with context about the operation.
type SiteError struct {
	Code     ErrorCode // Error category
	Message  string    // Human-readable message
	Site     string    // Site name (if applicable)
	ExitCode int       // Orchestrator exit code (ORCHESTRATOR only)
	Err      error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *SiteError) Error() string {
	if e.Site != "" && e.Err != nil {
		return fmt.Sprintf("site %s: %s: %v", e.Site, e.Message, e.Err)
	}
	if e.Site != "" {
		return fmt.Sprintf("site %s: %s", e.Site, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *SiteError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *SiteError) Is(target error) bool {
	t, ok := target.(*SiteError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrSiteNotFound indicates the requested site does not exist.
	ErrSiteNotFound = &SiteError{Code: ErrCodeNotFound, Message: "site not found"}

	// ErrSiteExists indicates a site with the same name already exists.
	ErrSiteExists = &SiteError{Code: ErrCodeAlreadyExists, Message: "site already exists"}

	// ErrInvalidName indicates the site name is not valid.
	ErrInvalidName = &SiteError{Code: ErrCodeValidation, Message: "invalid site name"}

	// ErrPermissionDenied indicates insufficient privileges for the operation.
	ErrPermissionDenied = &SiteError{Code: ErrCodePermission, Message: "permission denied"}

	// ErrConfigInvalid indicates the site registry is invalid or corrupt.
	ErrConfigInvalid = &SiteError{Code: ErrCodeConfig, Message: "invalid configuration"}

	// ErrComposeNotFound indicates no compose implementation is installed.
	ErrComposeNotFound = &SiteError{Code: ErrCodeOrchestrator, Message: "docker compose not installed"}

	// ErrRootRequired indicates root privileges are required.
	ErrRootRequired = &SiteError{Code: ErrCodePermission, Message: "root privileges required"}
)

// NotFound creates an error for a site that doesn't exist.
func NotFound(site string) error {
	return &SiteError{
		Code:    ErrCodeNotFound,
		Message: "site not found",
		Site:    site,
	}
}

// AlreadyExists creates an error for a site that already exists.
func AlreadyExists(site string) error {
	return &SiteError{
		Code:    ErrCodeAlreadyExists,
		Message: "site already exists",
		Site:    site,
	}
}

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &SiteError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Orchestrator creates an error for a failed compose invocation, preserving
// the subprocess exit code for passthrough.
func Orchestrator(site string, exitCode int, err error) error {
	return &SiteError{
		Code:     ErrCodeOrchestrator,
		Message:  "orchestrator command failed",
		Site:     site,
		ExitCode: exitCode,
		Err:      err,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &SiteError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapSite creates an error with site context and underlying error.
func WrapSite(code ErrorCode, site string, err error) error {
	return &SiteError{
		Code: code,
		Site: site,
		Err:  err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
