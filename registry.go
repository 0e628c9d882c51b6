package imfs

import (
	"github.com/brettbedarf/imfs/config"
	"github.com/brettbedarf/imfs/internal/util"
	"github.com/brettbedarf/imfs/namespace"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"
)

// Registry hosts independent namespaces keyed by their ID.
// The registry itself is safe for concurrent use; the namespaces it hands out are not,
// so each one should be driven by a single actor at a time.
type Registry struct {
	cfg        *config.Config
	namespaces *xsync.Map[uuid.UUID, *namespace.FileSystem]
}

// NewRegistry creates an empty registry whose namespaces share cfg.
// A nil cfg uses the defaults.
func NewRegistry(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	return &Registry{
		cfg:        cfg,
		namespaces: xsync.NewMap[uuid.UUID, *namespace.FileSystem](),
	}
}

// Create makes a new empty namespace and registers it under its ID
func (r *Registry) Create() *namespace.FileSystem {
	logger := util.GetLogger("Registry.Create")

	ns := namespace.NewFS(r.cfg)
	r.namespaces.Store(ns.ID(), ns)
	logger.Debug().Str("id", ns.ID().String()).Int("size", r.namespaces.Size()).Msg("Registered namespace")
	return ns
}

// Get returns the namespace registered under id
func (r *Registry) Get(id uuid.UUID) (ns *namespace.FileSystem, ok bool) {
	return r.namespaces.Load(id)
}

// Remove drops the namespace registered under id.
// Returns false if there was none.
func (r *Registry) Remove(id uuid.UUID) bool {
	logger := util.GetLogger("Registry.Remove")

	if _, existed := r.namespaces.LoadAndDelete(id); existed {
		logger.Debug().Str("id", id.String()).Msg("Removed namespace")
		return true
	}
	logger.Debug().Str("id", id.String()).Msg("No namespace found")
	return false
}

// Len returns the number of registered namespaces
func (r *Registry) Len() int {
	return r.namespaces.Size()
}

// Range calls fn for each registered namespace until fn returns false
func (r *Registry) Range(fn func(id uuid.UUID, ns *namespace.FileSystem) bool) {
	r.namespaces.Range(fn)
}
