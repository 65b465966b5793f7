package tree

import (
	"fmt"
	"path/filepath"

	"github.com/PolarWolf314/libset/internal/format"
)

// Kind distinguishes directories from files.
type Kind int

const (
	Directory Kind = iota
	File
)

func (k Kind) String() string {
	switch k {
	case Directory:
		return "directory"
	case File:
		return "file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "directory":
		*k = Directory
	case "file":
		*k = File
	default:
		return fmt.Errorf("unknown element kind %q", text)
	}
	return nil
}

// Node is one element of a tree: a directory or a file.
//
// A node's path is derived from its parent's path and its own name when it
// is attached with AddChild. Nodes that were never attached and are not the
// root of a Rebase call have no path.
type Node struct {
	name     string
	path     string
	kind     Kind
	format   format.Format
	content  any
	children []*Node
}

// NewDirectory returns a directory node with the given name.
func NewDirectory(name string) *Node {
	return &Node{name: name, kind: Directory}
}

// NewFile returns a plain file node with the given name.
func NewFile(name string) *Node {
	return &Node{name: name, kind: File}
}

// WithFormat sets the format a file's content is serialized with.
func (n *Node) WithFormat(f format.Format) *Node {
	n.format = f
	return n
}

// WithContent sets the value written to a file. nil means an empty file.
func (n *Node) WithContent(v any) *Node {
	n.content = v
	return n
}

// AddChild appends child and recomputes the paths of child and all of its
// descendants. It returns n so calls can be chained.
func (n *Node) AddChild(child *Node) *Node {
	n.children = append(n.children, child)
	Rebase(child, n.path)
	return n
}

// Rebase places n under parentPath and updates every descendant in
// pre-order. A node with an empty name takes parentPath itself, which is how
// a tree root is anchored to a base directory.
func Rebase(n *Node, parentPath string) {
	if n.name == "" {
		n.path = parentPath
	} else {
		n.path = filepath.Join(parentPath, n.name)
	}
	for _, child := range n.children {
		Rebase(child, n.path)
	}
}

func (n *Node) Name() string          { return n.name }
func (n *Node) Path() string          { return n.path }
func (n *Node) Kind() Kind            { return n.kind }
func (n *Node) Format() format.Format { return n.format }
func (n *Node) Content() any          { return n.content }
func (n *Node) Children() []*Node     { return n.children }

// Walk visits n and its descendants in pre-order. Returning an error from
// fn stops the walk.
func (n *Node) Walk(fn func(*Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, child := range n.children {
		if err := child.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Entry is a serializable description of a node, without its content.
type Entry struct {
	Name     string        `json:"name" toml:"name"`
	Path     string        `json:"path" toml:"path"`
	Kind     Kind          `json:"kind" toml:"kind"`
	Format   format.Format `json:"format" toml:"format"`
	Children []Entry       `json:"children,omitempty" toml:"children,omitempty"`
}

// Snapshot describes n and its descendants.
func (n *Node) Snapshot() Entry {
	e := Entry{
		Name:   n.name,
		Path:   n.path,
		Kind:   n.kind,
		Format: n.format,
	}
	for _, child := range n.children {
		e.Children = append(e.Children, child.Snapshot())
	}
	return e
}
