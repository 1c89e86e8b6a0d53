package decl

import (
	"fmt"
	"strings"
)

// Scope accumulates declaration text for one context rendering. It is not
// safe for concurrent use; each rendering builds its own scope.
type Scope struct {
	index *Index
	nodes []Node
}

// NewScope constructs a scope backed by the given index. The index may be nil
// when only pre-rendered nodes will be added.
func NewScope(index *Index) *Scope {
	return &Scope{index: index}
}

// AddFromID resolves a previously indexed declaration by its stable path and
// appends it to the scope. Resolution failures indicate a mismatch between
// the registered capabilities and the extracted index.
func (s *Scope) AddFromID(kind Kind, classID, memberID string) error {
	if s.index == nil {
		return fmt.Errorf("no declaration index attached to scope")
	}
	n, ok := s.index.Lookup(kind, classID, memberID)
	if !ok {
		return fmt.Errorf("declaration %s %s.%s not found in index", kind, classID, memberID)
	}
	s.nodes = append(s.nodes, n)
	return nil
}

// AddNode appends an already-rendered declaration directly. Used for
// built-ins that have no source-level declaration.
func (s *Scope) AddNode(n Node) {
	s.nodes = append(s.nodes, n)
}

// Nodes returns the accumulated declarations in insertion order.
func (s *Scope) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Render joins the accumulated declaration text in insertion order. The
// result is deterministic for a given scope content.
func (s *Scope) Render() string {
	texts := make([]string, len(s.nodes))
	for i, n := range s.nodes {
		texts[i] = n.Text
	}
	return strings.Join(texts, "\n\n")
}
