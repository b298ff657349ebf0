package template

import (
	"embed"
	"fmt"
)

//go:embed nginx/*.tmpl
var nginxTemplates embed.FS

//go:embed php/*.tmpl
var phpTemplates embed.FS

// getTemplateFS returns the embed.FS for the given template group
func getTemplateFS(group string) (embed.FS, error) {
	switch group {
	case "nginx":
		return nginxTemplates, nil
	case "php":
		return phpTemplates, nil
	default:
		return embed.FS{}, fmt.Errorf("unknown template group: %s", group)
	}
}
