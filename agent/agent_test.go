package agent

import (
	"context"
	"testing"

	"github.com/hupe1980/agentick/core"
	"github.com/hupe1980/agentick/decl"
	"github.com/hupe1980/agentick/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgent_Defaults(t *testing.T) {
	ag := New("plain")

	assert.Equal(t, "plain", ag.Name())
	assert.False(t, ag.AllowExit())
	assert.IsType(t, &template.Baseline{}, ag.Template())
	assert.Equal(t, 0, ag.Capabilities().Len())
}

type staticTemplate struct{ *template.Baseline }

func (staticTemplate) RenderContext(*decl.Scope) string { return "static context" }

func TestAgent_TemplateOverride(t *testing.T) {
	ag := New("custom", func(o *Options) {
		o.Template = staticTemplate{template.NewBaseline()}
		o.AllowExit = true
	})

	assert.True(t, ag.AllowExit())
	assert.Equal(t, "static context", ag.Template().RenderContext(decl.NewScope(nil)))
}

func TestAgent_RegisterUpserts(t *testing.T) {
	ag := New("upsert")
	ag.Register("op", func(context.Context, []any) (any, error) { return "v1", nil }, nil)
	ag.Register("op", func(context.Context, []any) (any, error) { return "v2", nil }, nil)

	require.Equal(t, 1, ag.Capabilities().Len())
	d, ok := ag.Capabilities().Get("op")
	require.True(t, ok)

	out, err := d.Fn(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "v2", out)
}

func TestInitialPending(t *testing.T) {
	p := InitialPending()
	assert.Equal(t, core.RoleUser, p.Role)
	assert.Nil(t, p.Prompt)
}
