// Package agentick lets an external language model drive a program's control
// flow: an agent exposes named capabilities, the model is shown their
// declarations and replies with structured calls, and the controller keeps
// dispatching and feeding results back until the model signals completion.
// Model mistakes are converted into bounded corrective prompts.
//
// Most applications interact with this package by:
//  1. Creating an Agentick via New() with a declaration index and model client
//  2. Constructing an Agent and registering its capabilities
//  3. Driving it with Run (synchronous) or Start/Cancel (managed runs)
//
// The façade delegates run management to runner.Runner while keeping setup
// ergonomics concise. Defaults are safe for local development; production
// deployments typically supply a structured logger.
package agentick

import (
	"context"

	"github.com/hupe1980/agentick/agent"
	"github.com/hupe1980/agentick/decl"
	"github.com/hupe1980/agentick/logging"
	"github.com/hupe1980/agentick/model"
	"github.com/hupe1980/agentick/runner"
)

// Options configures the Agentick instance.
type Options struct {
	// MaxRetries bounds consecutive recoverable failures per run.
	MaxRetries int

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Agentick is the high-level façade aggregating the run manager and its
// shared collaborators.
type Agentick struct {
	opts   Options
	runner *runner.Runner
}

// New creates a new Agentick instance over a declaration index and a model
// client, with optional overrides.
func New(index *decl.Index, client model.Client, optFns ...func(o *Options)) *Agentick {
	opts := Options{
		MaxRetries: agent.DefaultMaxRetries,
		Logger:     logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	r := runner.New(index, client, func(o *runner.Options) {
		o.MaxRetries = opts.MaxRetries
		o.Logger = opts.Logger
	})

	return &Agentick{opts: opts, runner: r}
}

// Run constructs one controller for ag and drives it to completion, returning
// the run's terminal output or propagating the aborting error.
func (a *Agentick) Run(ctx context.Context, ag *agent.Agent) (any, error) {
	return a.runner.Run(ctx, ag)
}

// Start begins a managed asynchronous run.
func (a *Agentick) Start(ctx context.Context, ag *agent.Agent) (string, <-chan runner.Result) {
	return a.runner.Start(ctx, ag)
}

// Cancel aborts a managed run by ID.
func (a *Agentick) Cancel(runID string) error {
	return a.runner.Cancel(runID)
}
