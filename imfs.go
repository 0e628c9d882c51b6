// Package imfs provides ephemeral, in-memory hierarchical namespaces: trees of
// named directories and files manipulated through a small shell-like command
// set (pwd, ls, mkdir, touch, cd, read, write, rmdir, find, cls).
//
// Nothing is ever persisted. Each instance is fully isolated; hosts that need
// several can hold them directly or through a [Registry].
package imfs

import (
	"github.com/brettbedarf/imfs/config"
	"github.com/brettbedarf/imfs/namespace"
)

// New creates an empty namespace positioned at the root given your config.
// A nil cfg uses the defaults.
func New(cfg *config.Config) *namespace.FileSystem {
	return namespace.NewFS(cfg)
}
