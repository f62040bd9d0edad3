package skills

import (
	"context"
	"sync"

	"github.com/jingkaihe/skillkit/pkg/logger"
)

// Manager caches skill resolution per working directory. Resolving skills
// walks several filesystem roots, so session start and every turn start
// hit the cache instead of re-walking when nothing changed.
//
// Concurrency: lookups take a read lock and writes take the write lock
// only to store a finished result. The filesystem walk happens outside
// any lock, so a slow walk never starves concurrent readers. Concurrent
// loads for the same directory may both walk; the result is idempotent
// and the later write simply replaces the earlier one.
type Manager struct {
	configHome string

	mu         sync.RWMutex
	cacheByCwd map[string]*LoadOutcome
}

// NewManager creates a Manager rooted at configHome and installs the
// bundled system skills. Installation failure is logged and otherwise
// ignored; a broken system-skill install must never take the agent down
// with it.
func NewManager(ctx context.Context, configHome string) *Manager {
	if err := InstallSystemSkills(configHome); err != nil {
		logger.G(ctx).WithError(err).Error("failed to install system skills")
	}

	return &Manager{
		configHome: configHome,
		cacheByCwd: make(map[string]*LoadOutcome),
	}
}

// GetOrLoad returns the resolution outcome for cwd. A cached outcome is
// returned as-is unless forceReload is set, in which case the roots are
// re-walked and the stored entry replaced wholesale. Outcomes are
// immutable snapshots; callers must not modify them.
func (m *Manager) GetOrLoad(ctx context.Context, cwd string, forceReload bool) *LoadOutcome {
	if !forceReload {
		m.mu.RLock()
		cached := m.cacheByCwd[cwd]
		m.mu.RUnlock()
		if cached != nil {
			return cached
		}
	}

	roots := RootsForCwd(m.configHome, cwd)
	outcome := LoadFromRoots(ctx, roots)

	m.mu.Lock()
	m.cacheByCwd[cwd] = outcome
	m.mu.Unlock()

	return outcome
}
