package namespace

import "slices"

// Kind tags a [Node] as a directory or a file. It never changes after creation.
type Kind uint8

const (
	DirKind Kind = iota + 1
	FileKind
)

func (k Kind) String() string {
	switch k {
	case DirKind:
		return "dir"
	case FileKind:
		return "file"
	default:
		return "unknown"
	}
}

// Node is a directory or a file in the tree.
// Directories keep their children in insertion order; files hold their whole contents.
type Node struct {
	name     string
	kind     Kind
	order    []string         // child names in insertion order (dirs only)
	children map[string]*Node // child nodes by name (dirs only)
	contents string           // file payload (files only)
}

// NewDirNode creates an empty directory node
func NewDirNode(name string) *Node {
	return &Node{
		name:     name,
		kind:     DirKind,
		order:    make([]string, 0),
		children: make(map[string]*Node),
	}
}

// NewFileNode creates a file node with empty contents
func NewFileNode(name string) *Node {
	return &Node{name: name, kind: FileKind}
}

func newNode(name string, kind Kind) *Node {
	if kind == DirKind {
		return NewDirNode(name)
	}
	return NewFileNode(name)
}

// Name returns the node's name (last part of the path)
func (n *Node) Name() string {
	return n.name
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) IsDir() bool {
	return n.kind == DirKind
}

// AddChild appends child to the directory's children.
// Callers must check for an existing child of the same name first.
func (n *Node) AddChild(child *Node) {
	n.order = append(n.order, child.name)
	n.children[child.name] = child
}

// GetChild returns a child node by name
func (n *Node) GetChild(name string) (child *Node, ok bool) {
	child, ok = n.children[name]
	return
}

// RemoveChild detaches the named child along with its subtree.
// Returns false if no such child exists.
func (n *Node) RemoveChild(name string) bool {
	if _, exists := n.children[name]; !exists {
		return false
	}
	delete(n.children, name)
	n.order = slices.DeleteFunc(n.order, func(s string) bool { return s == name })
	return true
}

// ChildNames returns a copy of the child names in insertion order
func (n *Node) ChildNames() []string {
	names := make([]string, len(n.order))
	copy(names, n.order)
	return names
}

func (n *Node) Contents() string {
	return n.contents
}

func (n *Node) SetContents(contents string) {
	n.contents = contents
}
