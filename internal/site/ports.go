package site

import (
	"fmt"

	gnet "github.com/shirou/gopsutil/v3/net"

	"github.com/ksyq12/wpsite/internal/config"
	"github.com/ksyq12/wpsite/internal/logger"
)

// Base host ports for the first site; every later site shifts the whole
// block by a multiple of portStride so no two sites share a port.
const (
	baseWordPress  = 8000
	baseProxy      = 8001
	basePHPMyAdmin = 8080
	basePHPFPM     = 9000
	baseDB         = 13306

	portStride = 10
	maxOffsets = 500
)

// ListenerFunc reports TCP ports currently held by a listener on the host.
type ListenerFunc func() (map[int]bool, error)

// HostListeners scans the host's TCP listeners via gopsutil. Used to skip
// port blocks already taken by processes outside the registry (a host
// MySQL on 3306, a dev server on 8000).
func HostListeners() (map[int]bool, error) {
	conns, err := gnet.Connections("tcp")
	if err != nil {
		return nil, fmt.Errorf("failed to scan host listeners: %w", err)
	}
	listening := make(map[int]bool)
	for _, c := range conns {
		if c.Status == "LISTEN" {
			listening[int(c.Laddr.Port)] = true
		}
	}
	return listening, nil
}

// portsAt returns the port block at the given offset.
func portsAt(offset int) config.Ports {
	return config.Ports{
		WordPress:  baseWordPress + offset,
		Proxy:      baseProxy + offset,
		PHPMyAdmin: basePHPMyAdmin + offset,
		PHPFPM:     basePHPFPM + offset,
		DB:         baseDB + offset,
	}
}

// portList returns the block's ports as a slice.
func portList(p config.Ports) []int {
	return []int{p.WordPress, p.Proxy, p.PHPMyAdmin, p.PHPFPM, p.DB}
}

// AllocatePorts assigns the lowest free port block: free means no
// registered site owns any of its ports and no host listener occupies
// them. Allocation is deterministic given the registry and host state,
// so two sites created in sequence always get disjoint blocks.
func AllocatePorts(cfg *config.Config, listeners ListenerFunc) (config.Ports, error) {
	if listeners == nil {
		listeners = HostListeners
	}

	assigned := make(map[int]bool)
	for _, s := range cfg.Sites {
		for _, p := range portList(s.Ports) {
			assigned[p] = true
		}
	}

	listening, err := listeners()
	if err != nil {
		// Registry-only allocation still guarantees disjoint sites
		logger.Warn("Host listener scan failed, allocating from registry only: %v", err)
		listening = map[int]bool{}
	}

	for i := 0; i < maxOffsets; i++ {
		candidate := portsAt(i * portStride)
		free := true
		for _, p := range portList(candidate) {
			if assigned[p] || listening[p] {
				free = false
				break
			}
		}
		if free {
			return candidate, nil
		}
	}

	return config.Ports{}, fmt.Errorf("no free port block found after %d offsets", maxOffsets)
}
