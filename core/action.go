package core

import "github.com/google/uuid"

// Call is a structured invocation request parsed from a model reply.
// Arguments are positional; their order is significant and preserved exactly
// as the model supplied them.
type Call struct {
	Name      string `json:"name"`
	Reasoning string `json:"reasoning,omitempty"`
	Arguments []any  `json:"arguments"`
}

// Action records one successfully dispatched call together with the value the
// capability returned. Output is nil when the capability produced no result.
type Action struct {
	ID     string `json:"id"`
	Call   Call   `json:"call"`
	Output any    `json:"output,omitempty"`
}

// History is the append-only sequence of dispatched actions for one run.
// Entries are never mutated retroactively; the last entry feeds the next
// prompt.
type History []Action

// Last returns the most recent action, or false when the history is empty.
func (h History) Last() (Action, bool) {
	if len(h) == 0 {
		return Action{}, false
	}
	return h[len(h)-1], true
}

// NewID generates a unique identifier for actions and runs.
func NewID() string { return uuid.NewString() }
