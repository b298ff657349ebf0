package compose

import (
	"errors"
	"strings"
	"testing"

	"github.com/ksyq12/wpsite/internal/config"
	wperrors "github.com/ksyq12/wpsite/internal/errors"
	"github.com/ksyq12/wpsite/internal/executor"
)

func pluginExecutor() *executor.MockExecutor {
	return &executor.MockExecutor{
		LookPathFunc: func(file string) (string, error) {
			if file == "docker" {
				return "/usr/bin/docker", nil
			}
			return "", errors.New("not found")
		},
	}
}

func standaloneExecutor() *executor.MockExecutor {
	return &executor.MockExecutor{
		LookPathFunc: func(file string) (string, error) {
			if file == "docker-compose" {
				return "/usr/bin/docker-compose", nil
			}
			return "", errors.New("not found")
		},
	}
}

func TestDetect(t *testing.T) {
	t.Run("auto prefers docker compose plugin", func(t *testing.T) {
		orch, err := Detect(pluginExecutor(), "auto")
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if orch.Name() != "docker compose" {
			t.Errorf("expected docker compose, got %s", orch.Name())
		}
	})

	t.Run("auto falls back to standalone", func(t *testing.T) {
		orch, err := Detect(standaloneExecutor(), "auto")
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if orch.Name() != "docker-compose" {
			t.Errorf("expected docker-compose, got %s", orch.Name())
		}
	})

	t.Run("explicit standalone preference", func(t *testing.T) {
		mock := &executor.MockExecutor{} // LookPath succeeds for everything
		orch, err := Detect(mock, "docker-compose")
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if orch.Name() != "docker-compose" {
			t.Errorf("expected docker-compose, got %s", orch.Name())
		}
	})

	t.Run("nothing installed", func(t *testing.T) {
		mock := &executor.MockExecutor{
			LookPathFunc: func(file string) (string, error) {
				return "", errors.New("not found")
			},
		}
		_, err := Detect(mock, "auto")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !wperrors.Is(err, wperrors.ErrComposeNotFound) {
			t.Errorf("expected ErrComposeNotFound, got %v", err)
		}
	})
}

func TestCLIOperations(t *testing.T) {
	s := &config.Site{Name: "blog", Dir: "/tmp/sites/blog"}

	tests := []struct {
		name     string
		invoke   func(c *CLI) error
		wantArgs string
	}{
		{
			name:     "up",
			invoke:   func(c *CLI) error { return c.Up(s) },
			wantArgs: "compose -p wpsite-blog up -d",
		},
		{
			name:     "start",
			invoke:   func(c *CLI) error { return c.Start(s) },
			wantArgs: "compose -p wpsite-blog start",
		},
		{
			name:     "stop",
			invoke:   func(c *CLI) error { return c.Stop(s) },
			wantArgs: "compose -p wpsite-blog stop",
		},
		{
			name:     "down with volumes",
			invoke:   func(c *CLI) error { return c.Down(s, true) },
			wantArgs: "compose -p wpsite-blog down --volumes",
		},
		{
			name:     "down keeping volumes",
			invoke:   func(c *CLI) error { return c.Down(s, false) },
			wantArgs: "compose -p wpsite-blog down",
		},
		{
			name:     "logs",
			invoke:   func(c *CLI) error { return c.Logs(s, true, 50) },
			wantArgs: "compose -p wpsite-blog logs --tail 50 --follow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &executor.MockExecutor{}
			c := NewCLI("docker", []string{"compose"}, mock)

			if err := tt.invoke(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(mock.Calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.Calls))
			}
			call := mock.Calls[0]
			if call.Name != "docker" {
				t.Errorf("expected docker binary, got %s", call.Name)
			}
			if call.Dir != s.Dir {
				t.Errorf("expected dir %s, got %s", s.Dir, call.Dir)
			}
			got := strings.Join(call.Args, " ")
			if got != tt.wantArgs {
				t.Errorf("expected args %q, got %q", tt.wantArgs, got)
			}
		})
	}
}

func TestCLIPSRunsInSiteDir(t *testing.T) {
	s := &config.Site{Name: "blog", Dir: "/tmp/sites/blog"}
	mock := &executor.MockExecutor{
		ExecuteInDirOutputFunc: func(dir, name string, args ...string) ([]byte, error) {
			return []byte("NAME  STATUS\n"), nil
		},
	}
	c := NewCLI("docker-compose", nil, mock)

	out, err := c.PS(s)
	if err != nil {
		t.Fatalf("PS failed: %v", err)
	}
	if !strings.Contains(string(out), "STATUS") {
		t.Errorf("PS output not returned, got %q", out)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	call := mock.Calls[0]
	// Standalone docker-compose resolves services from the compose file
	// in the current directory, so ps must run where the file lives.
	if call.Dir != s.Dir {
		t.Errorf("ps ran in dir %q, want %q", call.Dir, s.Dir)
	}
	if got := strings.Join(call.Args, " "); got != "-p wpsite-blog ps" {
		t.Errorf("expected args %q, got %q", "-p wpsite-blog ps", got)
	}
}

func TestCLIErrorCarriesExitCode(t *testing.T) {
	s := &config.Site{Name: "blog", Dir: "/tmp/sites/blog"}
	mock := &executor.MockExecutor{
		ExecuteInDirFunc: func(dir, name string, args ...string) error {
			return errors.New("exec format error")
		},
	}
	c := NewCLI("docker-compose", nil, mock)

	err := c.Up(s)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var siteErr *wperrors.SiteError
	if !wperrors.As(err, &siteErr) {
		t.Fatalf("expected SiteError, got %T", err)
	}
	if siteErr.Code != wperrors.ErrCodeOrchestrator {
		t.Errorf("expected ORCHESTRATOR code, got %s", siteErr.Code)
	}
	if siteErr.ExitCode != 1 {
		t.Errorf("expected exit code 1 for non-exit error, got %d", siteErr.ExitCode)
	}
	if siteErr.Site != "blog" {
		t.Errorf("expected site blog, got %s", siteErr.Site)
	}
}

func TestFileMarshal(t *testing.T) {
	f := &File{
		Services: map[string]Service{
			"db": {
				Image:    "mysql:5.7",
				Networks: []string{"blog-net"},
			},
		},
		Networks: map[string]*Named{"blog-net": nil},
		Volumes:  map[string]*Named{"blog-db-data": nil},
	}

	data, err := f.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	content := string(data)

	for _, want := range []string{"services:", "db:", "image: mysql:5.7", "networks:", "blog-net:", "volumes:", "blog-db-data:"} {
		if !strings.Contains(content, want) {
			t.Errorf("marshaled compose missing %q:\n%s", want, content)
		}
	}
}
