package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/agentick/capability"
	"github.com/hupe1980/agentick/core"
	"github.com/hupe1980/agentick/decl"
	"github.com/hupe1980/agentick/logging"
	"github.com/hupe1980/agentick/model"
	"github.com/hupe1980/agentick/template"
)

// DefaultMaxRetries bounds consecutive recoverable failures before the loop
// gives up and propagates the error.
const DefaultMaxRetries = 5

// ControllerOptions configures a Controller.
type ControllerOptions struct {
	// MaxRetries overrides DefaultMaxRetries.
	MaxRetries int
	// Logger receives diagnostic events; defaults to a no-op logger.
	Logger logging.Logger
}

// Controller orchestrates the tick loop for one agent run: it builds a
// prompt, exchanges it with the model client, parses the reply, dispatches
// the call through the capability registry, classifies any failure and
// decides the next input or terminal output.
//
// A Controller is a single logical thread of control: ticks execute strictly
// sequentially, with at most one in-flight model exchange and one in-flight
// dispatch at any time. Independent controllers may run concurrently; they
// share no mutable state beyond the process-wide logging verbosity.
type Controller struct {
	agent  *Agent
	index  *decl.Index
	client model.Client
	tmpl   template.Template
	logger *logging.RunLogger

	maxRetries int

	history    core.History
	transcript []model.Message
	retries    int
	exited     bool
}

// NewController constructs a Controller around an agent, a declaration index
// and a model client.
func NewController(ag *Agent, index *decl.Index, client model.Client, optFns ...func(o *ControllerOptions)) *Controller {
	opts := ControllerOptions{
		MaxRetries: DefaultMaxRetries,
		Logger:     logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.MaxRetries < 0 {
		opts.MaxRetries = DefaultMaxRetries
	}

	return &Controller{
		agent:      ag,
		index:      index,
		client:     client,
		tmpl:       ag.Template(),
		logger:     logging.WrapRunLogger(opts.Logger),
		maxRetries: opts.MaxRetries,
	}
}

// InitialPending is the input that starts a run: a user-role message with no
// prompt text, forcing the initial context rendering.
func InitialPending() core.Pending {
	return core.Pending{Role: core.RoleUser}
}

// History returns a copy of the actions dispatched so far.
func (c *Controller) History() core.History {
	out := make(core.History, len(c.history))
	copy(out, c.history)
	return out
}

// Retries returns the current recoverable-failure count.
func (c *Controller) Retries() int { return c.retries }

// Tick executes one controller step: at most one model exchange and at most
// one capability dispatch. It returns the next Pending input, a terminal
// Exited value, or an error that aborts the run.
func (c *Controller) Tick(ctx context.Context, pending core.Pending) (core.TickResult, error) {
	if c.exited {
		return nil, core.NewInternalError("tick invoked after run exited")
	}

	result, err := c.step(ctx, pending)
	if err != nil {
		return c.classify(err)
	}

	return result, nil
}

// RunToCompletion drives Tick from the initial input until the run exits,
// returning its terminal output or the aborting error.
func (c *Controller) RunToCompletion(ctx context.Context) (any, error) {
	pending := InitialPending()
	for {
		result, err := c.Tick(ctx, pending)
		if err != nil {
			return nil, err
		}

		switch r := result.(type) {
		case core.Exited:
			return r.Output, nil
		case core.Pending:
			pending = r
		default:
			return nil, core.NewInternalError("unexpected tick result %T", result)
		}
	}
}

// step is the success path of one tick. Every failure is returned raw and
// classified by the caller.
func (c *Controller) step(ctx context.Context, pending core.Pending) (core.TickResult, error) {
	prompt, err := c.prompt(pending)
	if err != nil {
		return nil, err
	}

	completion, err := c.exchange(ctx, pending.Role, prompt)
	if err != nil {
		return nil, err
	}

	call, err := c.tmpl.ParseResponse(completion)
	if err != nil {
		// A parse failure is a model mistake: wrap the corrective rendering
		// as feedback so it becomes the next system prompt verbatim.
		return nil, &core.FeedbackError{Message: c.tmpl.RenderError(err)}
	}

	reasoning := call.Reasoning
	if reasoning == "" {
		reasoning = "(no reasoning given)"
	}
	c.logger.Info("agent.call", "name", call.Name, "reasoning", reasoning)

	output, err := c.doAction(ctx, call)
	if err != nil {
		return nil, err
	}

	c.history = append(c.history, core.Action{ID: core.NewID(), Call: call, Output: output})
	c.retries = 0

	c.logger.Debug("agent.return", "name", call.Name, "history_len", len(c.history))

	// Prompt construction is deferred to the next tick's output-rendering
	// branch.
	return core.Pending{Role: core.RoleUser}, nil
}

// prompt determines the text to send. An explicit prompt wins; otherwise the
// initial context is rendered for an empty history and the last output is
// rendered for a non-empty one.
func (c *Controller) prompt(pending core.Pending) (string, error) {
	if pending.Prompt != nil {
		return *pending.Prompt, nil
	}

	if last, ok := c.history.Last(); ok {
		return c.tmpl.RenderOutput(last.Output), nil
	}

	scope, err := c.buildScope()
	if err != nil {
		return "", core.NewInternalError("scope construction failed: %v", err)
	}

	return c.tmpl.RenderContext(scope), nil
}

// buildScope populates a fresh scope via each registered capability's scope
// contribution, in registration order, plus the built-in exit declaration
// when permitted.
func (c *Controller) buildScope() (*decl.Scope, error) {
	scope := decl.NewScope(c.index)

	err := c.agent.Capabilities().Each(func(d *capability.Descriptor) error {
		if d.AddToScope == nil {
			return nil
		}
		return d.AddToScope(scope)
	})
	if err != nil {
		return nil, err
	}

	if c.agent.AllowExit() {
		scope.AddNode(capability.ExitNode())
	}

	return scope, nil
}

// exchange appends the outgoing message to the transcript, performs one
// round-trip with the model client and records the completion.
func (c *Controller) exchange(ctx context.Context, role core.Role, prompt string) (string, error) {
	c.transcript = append(c.transcript, model.Message{Role: role, Content: prompt})

	start := time.Now()
	completion, err := c.client.Complete(ctx, append([]model.Message(nil), c.transcript...))
	c.logger.LogModelExchange(c.client.Info().Provider, len(c.transcript), time.Since(start), err)
	if err != nil {
		return "", fmt.Errorf("model exchange failed: %w", err)
	}

	c.transcript = append(c.transcript, model.Message{Role: core.RoleAssistant, Content: completion})

	return completion, nil
}

// doAction dispatches a parsed call: built-ins are handled by the runtime,
// everything else resolves through the capability registry.
func (c *Controller) doAction(ctx context.Context, call core.Call) (any, error) {
	if capability.IsBuiltin(call.Name) {
		return nil, c.dispatchBuiltin(call)
	}

	desc, ok := c.agent.Capabilities().Get(call.Name)
	if !ok || desc.Fn == nil {
		return nil, core.NewFeedbackError("%s is not a function", call.Name)
	}

	start := time.Now()
	output, err := desc.Fn(ctx, call.Arguments)
	c.logger.LogCapabilityCall(call.Name, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return output, nil
}

// dispatchBuiltin handles the builtins namespace. Only exit is recognized;
// anything else reaching dispatch is a runtime defect, never a model mistake.
func (c *Controller) dispatchBuiltin(call core.Call) error {
	if call.Name != capability.ExitName {
		return core.NewInternalError("unrecognized builtin %s", call.Name)
	}

	switch len(call.Arguments) {
	case 0:
		return &core.ExitSignal{}
	case 1:
		return &core.ExitSignal{Output: call.Arguments[0]}
	default:
		return core.NewFeedbackError("%s takes at most one argument, got %d", capability.ExitName, len(call.Arguments))
	}
}

// classify maps a failed step onto the taxonomy: exit becomes the terminal
// result, interrupts and internal defects abort, cancellation aborts, and
// everything else is converted into a corrective prompt while the retry
// budget lasts.
func (c *Controller) classify(err error) (core.TickResult, error) {
	if exit, ok := core.AsExit(err); ok {
		c.exited = true
		c.logger.Info("agent.exit", "has_output", exit.Output != nil)
		return core.Exited{Output: exit.Output}, nil
	}

	if interrupt, ok := core.AsInterrupt(err); ok {
		c.logger.Error("agent.interrupt", "error", interrupt.Error())
		if inner := interrupt.Unwrap(); inner != nil {
			return nil, inner
		}
		return nil, interrupt
	}

	if core.IsInternal(err) {
		c.logger.Error("agent.internal", "error", err.Error())
		return nil, err
	}

	// External cancellation always aborts, never retries.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		c.logger.Warn("agent.cancelled", "error", err.Error())
		return nil, err
	}

	// Budget exhaustion wins over conversion for every recoverable class.
	if c.retries >= c.maxRetries {
		c.logger.Error("agent.retries.exhausted", "retries", c.retries, "error", err.Error())
		return nil, err
	}
	c.retries++

	var feedback *core.FeedbackError
	if errors.As(err, &feedback) {
		c.logger.Warn("agent.feedback", "retries", c.retries, "error", feedback.Message)
		return core.NewPending(core.RoleSystem, feedback.Message), nil
	}

	c.logger.Warn("agent.error", "retries", c.retries, "error", err.Error())
	return core.NewPending(core.RoleSystem, c.tmpl.RenderError(err)), nil
}
