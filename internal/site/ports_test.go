package site

import (
	"errors"
	"testing"

	"github.com/ksyq12/wpsite/internal/config"
)

func noListeners() (map[int]bool, error) {
	return map[int]bool{}, nil
}

func TestAllocatePorts(t *testing.T) {
	t.Run("first site gets base block", func(t *testing.T) {
		cfg := config.New()

		ports, err := AllocatePorts(cfg, noListeners)
		if err != nil {
			t.Fatalf("AllocatePorts failed: %v", err)
		}

		if ports.WordPress != 8000 || ports.Proxy != 8001 || ports.PHPMyAdmin != 8080 || ports.PHPFPM != 9000 || ports.DB != 13306 {
			t.Errorf("unexpected base block: %+v", ports)
		}
	})

	t.Run("second site gets next block", func(t *testing.T) {
		cfg := config.New()
		cfg.Sites["blog"] = &config.Site{Name: "blog", Ports: portsAt(0)}

		ports, err := AllocatePorts(cfg, noListeners)
		if err != nil {
			t.Fatalf("AllocatePorts failed: %v", err)
		}

		if ports.WordPress != 8010 {
			t.Errorf("expected wordpress port 8010, got %d", ports.WordPress)
		}
	})

	t.Run("skips blocks with host listeners", func(t *testing.T) {
		cfg := config.New()
		listeners := func() (map[int]bool, error) {
			// A dev server already holds the base wordpress port
			return map[int]bool{8000: true}, nil
		}

		ports, err := AllocatePorts(cfg, listeners)
		if err != nil {
			t.Fatalf("AllocatePorts failed: %v", err)
		}

		if ports.WordPress != 8010 {
			t.Errorf("expected wordpress port 8010, got %d", ports.WordPress)
		}
	})

	t.Run("distinct sites never share ports", func(t *testing.T) {
		cfg := config.New()

		blogPorts, err := AllocatePorts(cfg, noListeners)
		if err != nil {
			t.Fatalf("AllocatePorts for blog failed: %v", err)
		}
		cfg.Sites["blog"] = &config.Site{Name: "blog", Ports: blogPorts}

		shopPorts, err := AllocatePorts(cfg, noListeners)
		if err != nil {
			t.Fatalf("AllocatePorts for shop failed: %v", err)
		}

		used := make(map[int]bool)
		for _, p := range portList(blogPorts) {
			used[p] = true
		}
		for _, p := range portList(shopPorts) {
			if used[p] {
				t.Errorf("port %d assigned to both sites", p)
			}
		}
	})

	t.Run("listener scan failure falls back to registry", func(t *testing.T) {
		cfg := config.New()
		cfg.Sites["blog"] = &config.Site{Name: "blog", Ports: portsAt(0)}
		failing := func() (map[int]bool, error) {
			return nil, errTest
		}

		ports, err := AllocatePorts(cfg, failing)
		if err != nil {
			t.Fatalf("AllocatePorts failed: %v", err)
		}
		if ports.WordPress != 8010 {
			t.Errorf("expected wordpress port 8010, got %d", ports.WordPress)
		}
	})
}

var errTest = errors.New("listener scan failed")
