package namespace

import (
	"strings"

	"github.com/brettbedarf/imfs/config"
	"github.com/brettbedarf/imfs/internal/util"
	"github.com/google/uuid"
)

// FileSystem is one isolated in-memory namespace: a root directory plus a
// cursor naming the chain of directories down to the current one.
//
// The current directory is always found by walking the cursor from the root;
// no node handle outlives the operation that looked it up.
//
// NOTE: FileSystem is not thread-safe. Use separate instances for separate actors.
type FileSystem struct {
	cfg    *config.Config
	id     uuid.UUID
	root   *Node    // Always a directory
	cursor []string // Names from root to the current directory; empty is root
	logger util.Logger
}

// NewFS creates an empty namespace positioned at the root.
// A nil cfg uses the defaults.
func NewFS(cfg *config.Config) *FileSystem {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	id := uuid.New()
	return &FileSystem{
		cfg:    cfg,
		id:     id,
		root:   NewDirNode(""),
		logger: util.GetLogger("Namespace").With().Str("id", id.String()).Logger(),
	}
}

// ID returns the instance's unique identifier
func (fs *FileSystem) ID() uuid.UUID {
	return fs.id
}

// Pwd returns the present working directory, "/" at the root
func (fs *FileSystem) Pwd() string {
	return pathSep + strings.Join(fs.cursor, pathSep)
}

// Ls lists the children of the directory at path in insertion order.
// An empty path lists the current directory.
func (fs *FileSystem) Ls(path string) ([]string, error) {
	dir, err := fs.resolveDir(path)
	if err != nil {
		return nil, fs.fail("ls", path, err)
	}
	fs.logger.Trace().Str("path", path).Msg("Listed directory")
	return dir.ChildNames(), nil
}

// Mkdir creates an empty directory called name inside the directory at path
// (the current directory if path is empty).
func (fs *FileSystem) Mkdir(name, path string) error {
	return fs.create("mkdir", name, path, DirKind)
}

// Touch creates an empty file called name inside the directory at path
// (the current directory if path is empty).
func (fs *FileSystem) Touch(name, path string) error {
	return fs.create("touch", name, path, FileKind)
}

// Cd changes the current directory. target is ".." for the parent, an
// absolute path, or the name of a child of the current directory.
func (fs *FileSystem) Cd(target string) error {
	const op = "cd"

	switch {
	case target == "..":
		if len(fs.cursor) == 0 {
			return fs.fail(op, target, ErrAtRoot)
		}
		fs.cursor = fs.cursor[:len(fs.cursor)-1]
	case isAbs(target):
		segs := splitPath(target)
		if _, err := walkDirs(fs.root, segs); err != nil {
			return fs.fail(op, target, err)
		}
		fs.cursor = segs
	default:
		cwd, err := fs.currentDir()
		if err != nil {
			return fs.fail(op, target, err)
		}
		child, err := lookupChild(cwd, target)
		if err != nil {
			return fs.fail(op, target, err)
		}
		if !child.IsDir() {
			return fs.fail(op, target, ErrNotADirectory)
		}
		fs.cursor = append(fs.cursor, target)
	}

	fs.logger.Debug().Str("target", target).Str("pwd", fs.Pwd()).Msg("Changed directory")
	return nil
}

// Read returns the contents of the file at filepath: an absolute path, or the
// name of a file in the current directory.
func (fs *FileSystem) Read(filepath string) (string, error) {
	file, err := fs.resolveFile(filepath)
	if err != nil {
		return "", fs.fail("read", filepath, err)
	}
	return file.Contents(), nil
}

// Write replaces the contents of an existing file. The file must have been
// created with [FileSystem.Touch] first.
func (fs *FileSystem) Write(filepath, contents string) error {
	file, err := fs.resolveFile(filepath)
	if err != nil {
		return fs.fail("write", filepath, err)
	}
	file.SetContents(contents)
	fs.logger.Debug().Str("path", filepath).Int("size", len(contents)).Msg("Wrote file")
	return nil
}

// Rmdir removes the named child of the current directory along with
// everything beneath it. Non-empty directories are removed too.
func (fs *FileSystem) Rmdir(name string) error {
	const op = "rmdir"

	cwd, err := fs.currentDir()
	if err != nil {
		return fs.fail(op, name, err)
	}
	if !cwd.RemoveChild(name) {
		return fs.fail(op, name, ErrNoSuchEntry)
	}
	fs.logger.Debug().Str("name", name).Str("pwd", fs.Pwd()).Msg("Removed entry")
	return nil
}

// Rm removes the named file from the current directory
func (fs *FileSystem) Rm(name string) error {
	const op = "rm"

	cwd, err := fs.currentDir()
	if err != nil {
		return fs.fail(op, name, err)
	}
	child, err := lookupChild(cwd, name)
	if err != nil {
		return fs.fail(op, name, err)
	}
	if child.IsDir() {
		return fs.fail(op, name, ErrNotAFile)
	}
	cwd.RemoveChild(name)
	fs.logger.Debug().Str("name", name).Str("pwd", fs.Pwd()).Msg("Removed file")
	return nil
}

// Find returns the children of the current directory named exactly name.
// Names are unique per directory so the result has at most one element.
func (fs *FileSystem) Find(name string) []string {
	matches := make([]string, 0, 1)
	cwd, err := fs.currentDir()
	if err != nil {
		return matches
	}
	if _, ok := cwd.GetChild(name); ok {
		matches = append(matches, name)
	}
	return matches
}

// Stat returns the kind of the entry at path: an absolute path ("/" is the
// root) or the name of a child of the current directory.
func (fs *FileSystem) Stat(path string) (Kind, error) {
	const op = "stat"

	if !isAbs(path) {
		cwd, err := fs.currentDir()
		if err != nil {
			return 0, fs.fail(op, path, err)
		}
		child, err := lookupChild(cwd, path)
		if err != nil {
			return 0, fs.fail(op, path, err)
		}
		return child.Kind(), nil
	}

	dirSegs, name, ok := splitFilePath(path)
	if !ok {
		return DirKind, nil
	}
	dir, err := walkDirs(fs.root, dirSegs)
	if err != nil {
		return 0, fs.fail(op, path, err)
	}
	child, ok := dir.GetChild(name)
	if !ok {
		return 0, fs.fail(op, path, ErrPathNotFound)
	}
	return child.Kind(), nil
}

// Cls discards every entry and returns to an empty root
func (fs *FileSystem) Cls() {
	fs.root = NewDirNode("")
	fs.cursor = nil
	fs.logger.Debug().Msg("Cleared filesystem")
}

// Tree renders the whole namespace, one entry per line, indented by depth.
// Directories carry a trailing "/".
func (fs *FileSystem) Tree() string {
	var b strings.Builder
	b.WriteString(pathSep + "\n")
	writeTree(&b, fs.root, 1)
	return b.String()
}

func writeTree(b *strings.Builder, dir *Node, depth int) {
	for _, name := range dir.order {
		child := dir.children[name]
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(name)
		if child.IsDir() {
			b.WriteString(pathSep + "\n")
			writeTree(b, child, depth+1)
		} else {
			b.WriteString("\n")
		}
	}
}

// create validates name, resolves the target directory and inserts a new
// node of kind. Nothing is modified unless every check passes.
func (fs *FileSystem) create(op, name, path string, kind Kind) error {
	if err := ValidateName(name, fs.cfg.MaxNameLength); err != nil {
		return fs.fail(op, name, err)
	}
	dir, err := fs.resolveDir(path)
	if err != nil {
		return fs.fail(op, path, err)
	}
	if _, exists := dir.GetChild(name); exists {
		return fs.fail(op, name, ErrAlreadyExists)
	}

	dir.AddChild(newNode(name, kind))
	fs.logger.Debug().Str("name", name).Str("path", path).Stringer("kind", kind).Msg("Created entry")
	return nil
}

// resolveDir finds the directory an optional path argument refers to:
// the current directory when empty, an absolute path, or a child of the
// current directory by name.
func (fs *FileSystem) resolveDir(path string) (*Node, error) {
	if path == "" {
		return fs.currentDir()
	}
	if isAbs(path) {
		return walkDirs(fs.root, splitPath(path))
	}

	cwd, err := fs.currentDir()
	if err != nil {
		return nil, err
	}
	child, err := lookupChild(cwd, path)
	if err != nil {
		return nil, err
	}
	if !child.IsDir() {
		return nil, ErrNotADirectory
	}
	return child, nil
}

// resolveFile finds the file node a read or write refers to
func (fs *FileSystem) resolveFile(filepath string) (*Node, error) {
	var dir *Node
	var name string

	if isAbs(filepath) {
		dirSegs, fileName, ok := splitFilePath(filepath)
		if !ok {
			return nil, ErrNoSuchEntry
		}
		d, err := walkDirs(fs.root, dirSegs)
		if err != nil {
			return nil, err
		}
		dir, name = d, fileName
	} else {
		cwd, err := fs.currentDir()
		if err != nil {
			return nil, err
		}
		dir, name = cwd, filepath
	}

	file, err := lookupChild(dir, name)
	if err != nil {
		return nil, err
	}
	if file.IsDir() {
		return nil, ErrNotAFile
	}
	return file, nil
}

// currentDir walks the cursor from the root. A failure means the cursor and
// tree disagree, which the operations above never allow.
func (fs *FileSystem) currentDir() (*Node, error) {
	cur := fs.root
	for _, name := range fs.cursor {
		child, ok := cur.GetChild(name)
		if !ok || !child.IsDir() {
			fs.logger.Error().Strs("cursor", fs.cursor).Str("segment", name).Msg("Cursor does not resolve")
			return nil, ErrInternalInconsistency
		}
		cur = child
	}
	return cur, nil
}

// fail wraps err with the operation and argument and logs it
func (fs *FileSystem) fail(op, path string, err error) error {
	fs.logger.Debug().Err(err).Str("op", op).Str("path", path).Msg("Operation failed")
	return &PathError{Op: op, Path: path, Err: err}
}
