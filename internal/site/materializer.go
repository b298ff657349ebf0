// Package site materializes WordPress site deployments: it validates site
// names, assigns host port blocks, and renders each site's compose
// topology and reverse-proxy configuration into an isolated directory.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/ksyq12/wpsite/internal/compose"
	"github.com/ksyq12/wpsite/internal/config"
	"github.com/ksyq12/wpsite/internal/errors"
	"github.com/ksyq12/wpsite/internal/logger"
	"github.com/ksyq12/wpsite/internal/template"
)

// namePattern accepts tokens that are safe as a directory name, DNS label,
// and container-name prefix all at once.
var namePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// ValidateName checks that a site name is usable as a filesystem, DNS,
// and container-name token.
func ValidateName(name string) error {
	if name == "" {
		return errors.Validation("site name cannot be empty")
	}
	if len(name) > 63 {
		return errors.Validation("site name cannot exceed 63 characters")
	}
	if !namePattern.MatchString(name) {
		return errors.Validation("site name must be lowercase alphanumerics and hyphens, not starting or ending with a hyphen")
	}
	return nil
}

// Database credentials baked into the generated topology. Sites are local
// development deployments; credentials are not secrets here.
const (
	DBName         = "wordpress"
	DBUser         = "wordpress"
	DBPassword     = "wordpress"
	DBRootPassword = "password"
)

// Materialize renders the site's artifacts into its directory:
//
//	<dir>/docker-compose.yml
//	<dir>/nginx/default.conf
//	<dir>/public/index.php
//
// It refuses to touch a directory that already exists, so an existing
// site's files are never overwritten.
func Materialize(s *config.Site) error {
	if _, err := os.Stat(s.Dir); err == nil {
		return errors.AlreadyExists(s.Name)
	} else if !os.IsNotExist(err) {
		return errors.WrapSite(errors.ErrCodeMaterialize, s.Name, err)
	}

	logger.InfoFields("Materializing site", map[string]interface{}{
		"site": s.Name,
		"dir":  s.Dir,
	})

	for _, d := range []string{s.Dir, filepath.Join(s.Dir, "nginx"), filepath.Join(s.Dir, "public")} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return errors.WrapSite(errors.ErrCodeMaterialize, s.Name, fmt.Errorf("mkdir %s: %w", d, err))
		}
	}

	doc := ComposeFile(s)
	data, err := doc.Marshal()
	if err != nil {
		return errors.WrapSite(errors.ErrCodeMaterialize, s.Name, err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, "docker-compose.yml"), data, 0644); err != nil {
		return errors.WrapSite(errors.ErrCodeMaterialize, s.Name, err)
	}

	nginxConf, err := template.RenderNginx(template.NginxData{
		ServerName: s.Name,
		FPMHost:    "phpfpm",
		FPMPort:    9000,
	})
	if err != nil {
		return errors.WrapSite(errors.ErrCodeMaterialize, s.Name, err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, "nginx", "default.conf"), []byte(nginxConf), 0644); err != nil {
		return errors.WrapSite(errors.ErrCodeMaterialize, s.Name, err)
	}

	indexPHP, err := template.RenderIndexPHP()
	if err != nil {
		return errors.WrapSite(errors.ErrCodeMaterialize, s.Name, err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir, "public", "index.php"), []byte(indexPHP), 0644); err != nil {
		return errors.WrapSite(errors.ErrCodeMaterialize, s.Name, err)
	}

	return nil
}

// Remove deletes the site's directory and everything under it.
func Remove(s *config.Site) error {
	if err := os.RemoveAll(s.Dir); err != nil {
		return errors.WrapSite(errors.ErrCodeMaterialize, s.Name, err)
	}
	return nil
}

// ComposeFile builds the site's five-service topology: database, PHP-FPM,
// phpMyAdmin, WordPress, and the Nginx reverse proxy, on one per-site
// network with one named volume for database storage.
func ComposeFile(s *config.Site) *compose.File {
	net := []string{s.Network()}

	return &compose.File{
		Services: map[string]compose.Service{
			"db": {
				Image:   "mysql:5.7",
				Restart: "always",
				Ports:   []string{hostPort(s.Ports.DB, 3306)},
				Volumes: []string{s.Volume() + ":/var/lib/mysql"},
				Environment: map[string]string{
					"MYSQL_DATABASE":      DBName,
					"MYSQL_USER":          DBUser,
					"MYSQL_PASSWORD":      DBPassword,
					"MYSQL_ROOT_PASSWORD": DBRootPassword,
				},
				Networks: net,
			},
			"phpfpm": {
				Image:     "php:fpm",
				DependsOn: []string{"db"},
				Ports:     []string{hostPort(s.Ports.PHPFPM, 9000)},
				Volumes:   []string{"./public:/usr/share/nginx/html"},
				Networks:  net,
			},
			"phpmyadmin": {
				Image:     "phpmyadmin/phpmyadmin",
				Restart:   "always",
				DependsOn: []string{"db"},
				Ports:     []string{hostPort(s.Ports.PHPMyAdmin, 80)},
				Environment: map[string]string{
					"PMA_HOST":            "db",
					"MYSQL_ROOT_PASSWORD": DBRootPassword,
				},
				Networks: net,
			},
			"wordpress": {
				Image:     "wordpress:latest",
				Restart:   "always",
				DependsOn: []string{"db"},
				Ports:     []string{hostPort(s.Ports.WordPress, 80)},
				Volumes:   []string{"./:/var/www/html"},
				Environment: map[string]string{
					"WORDPRESS_DB_HOST":     "db:3306",
					"WORDPRESS_DB_USER":     DBUser,
					"WORDPRESS_DB_PASSWORD": DBPassword,
					"WORDPRESS_DB_NAME":     DBName,
				},
				Networks: net,
			},
			"proxy": {
				Image:     "nginx:1.17.10",
				DependsOn: []string{"db", "wordpress", "phpmyadmin", "phpfpm"},
				Ports:     []string{hostPort(s.Ports.Proxy, 80)},
				Volumes: []string{
					"./:/var/www/html",
					"./nginx/default.conf:/etc/nginx/nginx.conf",
				},
				Networks: net,
			},
		},
		Networks: map[string]*compose.Named{s.Network(): nil},
		Volumes:  map[string]*compose.Named{s.Volume(): nil},
	}
}

func hostPort(host, container int) string {
	return fmt.Sprintf("%d:%d", host, container)
}
