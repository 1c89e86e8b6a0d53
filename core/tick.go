package core

// Role tags a message in the model-facing conversation.
type Role string

const (
	// RoleUser marks regular conversational input (context, outputs).
	RoleUser Role = "user"
	// RoleSystem marks corrective diagnostics soliciting a fixed reply.
	RoleSystem Role = "system"
	// RoleAssistant marks completions produced by the model.
	RoleAssistant Role = "assistant"
)

// TickResult is the outcome of a single controller tick: either another
// Pending message to send, or a terminal Exited value. It is a closed
// discriminated variant; the marker method prevents foreign implementations.
type TickResult interface {
	tickResult()
}

// Pending describes the next message the controller will send to the model.
// A nil Prompt defers prompt construction to the controller: the initial
// context rendering when the history is empty, otherwise the rendering of the
// last action's output.
type Pending struct {
	Role   Role
	Prompt *string
}

// Exited carries the terminal output of a run. Output is nil when the run
// ended without a payload.
type Exited struct {
	Output any
}

func (Pending) tickResult() {}
func (Exited) tickResult()  {}

// NewPending builds a Pending with an explicit prompt.
func NewPending(role Role, prompt string) Pending {
	return Pending{Role: role, Prompt: &prompt}
}
