package decl

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Kind classifies a declaration fragment.
type Kind string

const (
	// KindMethod is a callable member declaration.
	KindMethod Kind = "method"
	// KindType is a type declaration referenced by capability signatures.
	KindType Kind = "type"
	// KindBuiltin marks pre-rendered declarations for runtime built-ins that
	// have no source-level counterpart.
	KindBuiltin Kind = "builtin"
)

// Node is a single rendered declaration fragment. Text is treated as an
// opaque, deterministic string by everything downstream.
type Node struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// record is the on-disk shape of one index entry.
type record struct {
	Kind   Kind   `json:"kind"`
	Class  string `json:"class"`
	Member string `json:"member"`
	Text   string `json:"text"`
}

// Index is the queryable declaration index. It is immutable after loading and
// safe for concurrent lookups.
type Index struct {
	nodes map[string]Node
}

// NewIndex constructs an empty index, useful when declarations are supplied
// programmatically instead of from an artifact file.
func NewIndex() *Index {
	return &Index{nodes: make(map[string]Node)}
}

// Add registers a declaration under its stable (kind, class, member) path,
// overwriting any previous entry for the same path.
func (x *Index) Add(kind Kind, classID, memberID, text string) {
	id := path(classID, memberID)
	x.nodes[key(kind, classID, memberID)] = Node{ID: id, Kind: kind, Text: text}
}

// Lookup resolves a declaration by its stable path.
func (x *Index) Lookup(kind Kind, classID, memberID string) (Node, bool) {
	n, ok := x.nodes[key(kind, classID, memberID)]
	return n, ok
}

// Len returns the number of indexed declarations.
func (x *Index) Len() int { return len(x.nodes) }

// LoadIndex reads a declaration index artifact from disk.
func LoadIndex(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open declaration index: %w", err)
	}
	defer f.Close()

	return DecodeIndex(f)
}

// DecodeIndex decodes a declaration index artifact: a JSON document of the
// form {"declarations": [{"kind", "class", "member", "text"}, ...]}.
func DecodeIndex(r io.Reader) (*Index, error) {
	var doc struct {
		Declarations []record `json:"declarations"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode declaration index: %w", err)
	}

	x := NewIndex()
	for _, rec := range doc.Declarations {
		x.Add(rec.Kind, rec.Class, rec.Member, rec.Text)
	}

	return x, nil
}

func key(kind Kind, classID, memberID string) string {
	return string(kind) + ":" + path(classID, memberID)
}

func path(classID, memberID string) string {
	if memberID == "" {
		return classID
	}
	return classID + "." + memberID
}
