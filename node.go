package translatable

import (
	"maps"
	"strings"
)

// Node is either a Group or a Leaf.
type Node interface {
	node()
}

// Group maps keys to child nodes. All children of a group share one kind.
type Group map[string]Node

// Leaf maps languages to raw template text.
type Leaf map[Language]string

func (Group) node() {}
func (Leaf) node()  {}

// Path addresses a leaf by its key segments.
type Path []string

// ParsePath splits a dotted path such as "common.greeting".
func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	return strings.Split(s, ".")
}

func (p Path) String() string { return strings.Join(p, ".") }

// Join returns a new path with segs appended; p is never modified.
func (p Path) Join(segs ...string) Path {
	out := make(Path, 0, len(p)+len(segs))
	out = append(out, p...)
	return append(out, segs...)
}

func cloneNode(n Node) Node {
	switch n := n.(type) {
	case Group:
		out := make(Group, len(n))
		for k, child := range n {
			out[k] = cloneNode(child)
		}
		return out
	case Leaf:
		return maps.Clone(n)
	}
	return nil
}
