// Package hosts manages the 127.0.0.1 entries wpsite adds to /etc/hosts
// so a site's name resolves locally. Entries are tagged with a marker
// comment so only lines wpsite wrote are ever removed.
package hosts

import (
	"fmt"
	"os"
	"strings"
)

// DefaultPath is the system hosts file.
const DefaultPath = "/etc/hosts"

const marker = "# wpsite"

// File edits one hosts file. Path is injectable for tests.
type File struct {
	Path string
}

// New returns a File editing the system hosts file.
func New() *File {
	return &File{Path: DefaultPath}
}

// entry formats the managed line for a site.
func entry(name string) string {
	return fmt.Sprintf("127.0.0.1 %s %s", name, marker)
}

// Has reports whether a managed entry for the site exists.
func (f *File) Has(name string) (bool, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read hosts file: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == entry(name) {
			return true, nil
		}
	}
	return false, nil
}

// Add appends a managed entry for the site. Adding an entry that already
// exists is a no-op.
func (f *File) Add(name string) error {
	exists, err := f.Has(name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	fh, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open hosts file: %w", err)
	}
	defer fh.Close()

	if _, err := fmt.Fprintln(fh, entry(name)); err != nil {
		return fmt.Errorf("failed to write hosts entry: %w", err)
	}
	return nil
}

// Remove deletes the managed entry for the site. Lines wpsite did not
// write are left untouched.
func (f *File) Remove(name string) error {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read hosts file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	kept := make([]string, 0, len(lines))
	removed := false
	for _, line := range lines {
		if strings.TrimSpace(line) == entry(name) {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	if !removed {
		return nil
	}

	info, err := os.Stat(f.Path)
	if err != nil {
		return fmt.Errorf("failed to stat hosts file: %w", err)
	}
	if err := os.WriteFile(f.Path, []byte(strings.Join(kept, "\n")), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to rewrite hosts file: %w", err)
	}
	return nil
}

// Writable reports whether the hosts file can be modified by this process.
func (f *File) Writable() bool {
	fh, err := os.OpenFile(f.Path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return false
	}
	fh.Close()
	return true
}
