package imfs

import (
	"github.com/brettbedarf/imfs/namespace"
	"github.com/google/uuid"
)

// Namespace defines the operations external consumers (shells, sandboxes,
// simulators) need from a namespace. Failures are returned as
// *namespace.PathError values wrapping one of the namespace.Err* kinds.
type Namespace interface {
	// ID returns the instance's unique identifier
	ID() uuid.UUID

	// Pwd returns the present working directory; "/" at the root
	Pwd() string

	// Ls lists a directory's children in insertion order; "" lists the current one
	Ls(path string) ([]string, error)

	// Mkdir creates an empty directory in path, or the current directory if path is ""
	Mkdir(name, path string) error

	// Touch creates an empty file in path, or the current directory if path is ""
	Touch(name, path string) error

	// Cd moves to "..", an absolute path, or a child directory by name
	Cd(target string) error

	// Read returns a file's contents
	Read(filepath string) (string, error)

	// Write overwrites an existing file's contents
	Write(filepath, contents string) error

	// Rmdir removes a child of the current directory and its whole subtree
	Rmdir(name string) error

	// Rm removes a file in the current directory
	Rm(name string) error

	// Find returns the children of the current directory with exactly this name
	Find(name string) []string

	// Stat returns the kind of the entry at path
	Stat(path string) (namespace.Kind, error)

	// Tree renders the whole namespace
	Tree() string

	// Cls discards everything and returns to an empty root
	Cls()
}

// ensure FileSystem implements Namespace
var _ Namespace = (*namespace.FileSystem)(nil)
