package agentick

import (
	"context"
	"testing"

	"github.com/hupe1980/agentick/agent"
	"github.com/hupe1980/agentick/decl"
	"github.com/hupe1980/agentick/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentick_Run(t *testing.T) {
	client := model.NewMockClient()
	client.Enqueue(
		`{"name":"echo","arguments":["hello"]}`,
		`{"name":"builtins.exit","arguments":["hello"]}`,
	)

	ag := agent.New("echoer", func(o *agent.Options) { o.AllowExit = true })
	ag.Register("echo", func(_ context.Context, args []any) (any, error) {
		if len(args) != 1 {
			return nil, assert.AnError
		}
		return args[0], nil
	}, func(scope *decl.Scope) error {
		scope.AddNode(decl.Node{ID: "echo", Kind: decl.KindMethod, Text: "echo(value): value"})
		return nil
	})

	app := New(decl.NewIndex(), client)
	out, err := app.Run(context.Background(), ag)
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestAgentick_StartAndCancelUnknown(t *testing.T) {
	client := model.NewMockClient()
	client.Enqueue(`{"name":"builtins.exit","arguments":[]}`)

	app := New(decl.NewIndex(), client)
	runID, resultCh := app.Start(context.Background(), agent.New("noop", func(o *agent.Options) { o.AllowExit = true }))
	require.NotEmpty(t, runID)

	res := <-resultCh
	require.NoError(t, res.Err)
	assert.Nil(t, res.Output)

	assert.Error(t, app.Cancel("missing"))
}
