package model

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a lightweight in-memory Client useful for tests & examples.
// Completions can be scripted as an ordered queue (Enqueue) or keyed by the
// content of the last submitted message (AddResponse); the queue wins when
// both match. Every request is recorded for inspection.
type MockClient struct {
	mu        sync.Mutex
	info      Info
	queue     []string
	responses map[string]string
	requests  [][]Message
}

// NewMockClient constructs an empty MockClient.
func NewMockClient() *MockClient {
	return &MockClient{
		info:      Info{Name: "mock", Provider: "mock"},
		responses: make(map[string]string),
	}
}

// Enqueue appends completions returned in order by subsequent Complete calls.
func (m *MockClient) Enqueue(completions ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, completions...)
}

// AddResponse registers a deterministic completion for a prompt, matched
// against the content of the last message of a request.
func (m *MockClient) AddResponse(prompt, completion string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = completion
}

// Requests returns all message lists submitted so far.
func (m *MockClient) Requests() [][]Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]Message, len(m.requests))
	copy(out, m.requests)
	return out
}

// Complete implements Client.
func (m *MockClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	recorded := make([]Message, len(messages))
	copy(recorded, messages)
	m.requests = append(m.requests, recorded)

	if len(m.queue) > 0 {
		next := m.queue[0]
		m.queue = m.queue[1:]
		return next, nil
	}

	if len(messages) > 0 {
		if resp, ok := m.responses[messages[len(messages)-1].Content]; ok {
			return resp, nil
		}
	}

	return "", fmt.Errorf("mock client: no scripted completion for request %d", len(m.requests))
}

// Info implements Client.
func (m *MockClient) Info() Info { return m.info }
