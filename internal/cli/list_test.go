package cli

import (
	"testing"
	"time"

	"github.com/ksyq12/wpsite/internal/config"
)

func TestListCommand(t *testing.T) {
	t.Run("empty registry", func(t *testing.T) {
		withDeps(t, NewMockDeps().WithConfig(testConfig(t)).Build())

		if err := runList(listCmd, nil); err != nil {
			t.Fatalf("runList failed: %v", err)
		}
	})

	t.Run("lists registered sites", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Sites["blog"] = &config.Site{
			Name:      "blog",
			Dir:       cfg.SiteDir("blog"),
			Ports:     config.Ports{WordPress: 8000, Proxy: 8001, PHPMyAdmin: 8080, PHPFPM: 9000, DB: 13306},
			Enabled:   true,
			CreatedAt: time.Now(),
		}
		cfg.Sites["shop"] = &config.Site{
			Name:      "shop",
			Dir:       cfg.SiteDir("shop"),
			Ports:     config.Ports{WordPress: 8010, Proxy: 8011, PHPMyAdmin: 8090, PHPFPM: 9010, DB: 13316},
			CreatedAt: time.Now(),
		}
		withDeps(t, NewMockDeps().WithConfig(cfg).Build())

		if err := runList(listCmd, nil); err != nil {
			t.Fatalf("runList failed: %v", err)
		}
	})

	t.Run("load failure is returned", func(t *testing.T) {
		loader := &MockConfigLoader{LoadErr: errLoadFailed}
		withDeps(t, NewMockDeps().WithConfigLoader(loader).Build())

		if err := runList(listCmd, nil); err == nil {
			t.Error("expected error when registry load fails")
		}
	})
}
