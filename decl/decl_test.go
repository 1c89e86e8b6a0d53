package decl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexArtifact = `{
  "declarations": [
    {"kind": "method", "class": "Calculator", "member": "add", "text": "add(a: number, b: number): number"},
    {"kind": "method", "class": "Calculator", "member": "mul", "text": "mul(a: number, b: number): number"},
    {"kind": "type", "class": "Result", "member": "", "text": "type Result = number"}
  ]
}`

func TestDecodeIndex(t *testing.T) {
	x, err := DecodeIndex(strings.NewReader(indexArtifact))
	require.NoError(t, err)
	assert.Equal(t, 3, x.Len())

	n, ok := x.Lookup(KindMethod, "Calculator", "add")
	require.True(t, ok)
	assert.Equal(t, "Calculator.add", n.ID)
	assert.Equal(t, "add(a: number, b: number): number", n.Text)

	_, ok = x.Lookup(KindMethod, "Calculator", "sub")
	assert.False(t, ok)

	// Same path under a different kind does not resolve.
	_, ok = x.Lookup(KindType, "Calculator", "add")
	assert.False(t, ok)
}

func TestDecodeIndex_Malformed(t *testing.T) {
	_, err := DecodeIndex(strings.NewReader("not json"))
	assert.Error(t, err)
}

func TestIndex_AddOverwrites(t *testing.T) {
	x := NewIndex()
	x.Add(KindMethod, "C", "m", "old")
	x.Add(KindMethod, "C", "m", "new")

	n, ok := x.Lookup(KindMethod, "C", "m")
	require.True(t, ok)
	assert.Equal(t, "new", n.Text)
	assert.Equal(t, 1, x.Len())
}

func TestScope_RenderIsDeterministic(t *testing.T) {
	x, err := DecodeIndex(strings.NewReader(indexArtifact))
	require.NoError(t, err)

	s := NewScope(x)
	require.NoError(t, s.AddFromID(KindMethod, "Calculator", "add"))
	require.NoError(t, s.AddFromID(KindMethod, "Calculator", "mul"))
	s.AddNode(Node{ID: "builtins.exit", Kind: KindBuiltin, Text: "exit(result?)"})

	want := "add(a: number, b: number): number\n\nmul(a: number, b: number): number\n\nexit(result?)"
	assert.Equal(t, want, s.Render())
	// Rendering again yields the same text.
	assert.Equal(t, want, s.Render())
	assert.Len(t, s.Nodes(), 3)
}

func TestScope_AddFromID_Missing(t *testing.T) {
	s := NewScope(NewIndex())
	err := s.AddFromID(KindMethod, "Nope", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nope.missing")
}

func TestScope_NilIndex(t *testing.T) {
	s := NewScope(nil)
	assert.Error(t, s.AddFromID(KindMethod, "C", "m"))

	s.AddNode(Node{ID: "n", Kind: KindBuiltin, Text: "n()"})
	assert.Equal(t, "n()", s.Render())
}
