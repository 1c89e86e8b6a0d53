// Package template defines the pluggable prompt-rendering strategy: how the
// initial context, intermediate outputs and corrective diagnostics are turned
// into prompt text, and how raw model replies are parsed back into structured
// calls. Agents may substitute any conforming strategy; Baseline is the
// default.
package template

import (
	"fmt"

	"github.com/hupe1980/agentick/core"
	"github.com/hupe1980/agentick/decl"
)

// Template is the four-operation rendering strategy injected into a
// controller at construction time. All operations are pure with respect to
// controller state.
type Template interface {
	// RenderContext produces the first message of a run: the calling
	// convention, the scope's declarations and the required reply shape.
	RenderContext(scope *decl.Scope) string

	// RenderOutput serializes a capability's return value as the next
	// user-role message. A nil output renders as a null placeholder.
	RenderOutput(output any) string

	// RenderError produces a system-role diagnostic describing err and
	// re-stating the required reply shape.
	RenderError(err error) string

	// ParseResponse deserializes raw model text into a structured call.
	// Malformed or incomplete replies fail with a *ParseError.
	ParseResponse(raw string) (core.Call, error)
}

// ParseError describes a model reply that could not be turned into a call.
type ParseError struct {
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse model reply: %s", e.Reason)
}
