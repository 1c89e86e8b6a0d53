package model

import (
	"context"

	"github.com/hupe1980/agentick/core"
)

// Message is one role-tagged entry in the conversation sent to a model.
type Message struct {
	Role    core.Role `json:"role"`
	Content string    `json:"content"`
}

// Info contains metadata about a client implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Client is the single-exchange contract consumed by the controller: submit
// the ordered message list, receive one completion. Transport failures are
// plain errors; the controller treats them as unclassified and retry-budgeted
// unless the client returns a pre-classified taxonomy error.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)

	// Info returns information about the client implementation.
	Info() Info
}
