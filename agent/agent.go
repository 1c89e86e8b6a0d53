// Package agent implements the execution core: the user-supplied Agent
// behavior unit and the Controller that drives the tick loop reconciling
// free-text model replies with typed, validated capability dispatches.
package agent

import (
	"github.com/hupe1980/agentick/capability"
	"github.com/hupe1980/agentick/template"
)

// Options configures an Agent.
type Options struct {
	// Template overrides the default baseline rendering strategy.
	Template template.Template
	// AllowExit permits the built-in termination capability; its declaration
	// is injected into the rendering scope when set.
	AllowExit bool
}

// Agent is the user-supplied behavior unit: a named capability set, an
// optional custom rendering strategy and the exit permission flag. An Agent
// is created once per run and owned exclusively by its Controller.
type Agent struct {
	name      string
	caps      *capability.Registry
	template  template.Template
	allowExit bool
}

// New constructs an Agent with optional overrides.
func New(name string, optFns ...func(o *Options)) *Agent {
	opts := Options{}

	for _, fn := range optFns {
		fn(&opts)
	}

	tmpl := opts.Template
	if tmpl == nil {
		tmpl = template.NewBaseline()
	}

	return &Agent{
		name:      name,
		caps:      capability.NewRegistry(),
		template:  tmpl,
		allowExit: opts.AllowExit,
	}
}

// Name returns the agent's human-readable name.
func (a *Agent) Name() string { return a.name }

// Register upserts a capability under its external name, binding the callable
// and its scope contribution. Typically called once per capability at agent
// construction time.
func (a *Agent) Register(name string, fn capability.Func, adder capability.ScopeAdder) {
	a.caps.Register(name, fn, adder)
}

// Capabilities exposes the capability registry.
func (a *Agent) Capabilities() *capability.Registry { return a.caps }

// Template returns the agent's rendering strategy (the baseline unless
// overridden).
func (a *Agent) Template() template.Template { return a.template }

// AllowExit reports whether the built-in termination capability is permitted.
func (a *Agent) AllowExit() bool { return a.allowExit }
