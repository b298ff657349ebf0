// Package template renders the non-compose site artifacts: the Nginx
// reverse-proxy configuration and the placeholder index.php. Templates are
// embedded in the binary and rendered with text/template.
package template

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// NginxData contains data for rendering the reverse-proxy config
type NginxData struct {
	ServerName string
	FPMHost    string
	FPMPort    int
}

// RenderNginx renders the reverse-proxy configuration for a site
func RenderNginx(data NginxData) (string, error) {
	if data.FPMHost == "" {
		data.FPMHost = "phpfpm"
	}
	if data.FPMPort == 0 {
		data.FPMPort = 9000
	}
	return render("nginx", "default.conf", data)
}

// RenderIndexPHP renders the placeholder index.php served until WordPress
// takes over the document root
func RenderIndexPHP() (string, error) {
	return render("php", "index.php", nil)
}

// render loads and executes one embedded template
func render(group, name string, data interface{}) (string, error) {
	fs, err := getTemplateFS(group)
	if err != nil {
		return "", err
	}

	tmplPath := fmt.Sprintf("%s/%s.tmpl", group, name)
	content, err := fs.ReadFile(tmplPath)
	if err != nil {
		return "", fmt.Errorf("template not found: %s", tmplPath)
	}

	funcMap := template.FuncMap{
		"replace": strings.ReplaceAll,
	}

	tmpl, err := template.New(name).Funcs(funcMap).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}
