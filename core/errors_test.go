package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackError_MessageIsVerbatim(t *testing.T) {
	err := NewFeedbackError("%s is not a function", "frobnicate")
	assert.Equal(t, "frobnicate is not a function", err.Error())
	assert.True(t, IsFeedback(err))
	assert.False(t, IsInternal(err))
}

func TestFeedbackError_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("dispatch failed: %w", NewFeedbackError("bad call"))
	assert.True(t, IsFeedback(err))
}

func TestInterruptError_UnwrapsInner(t *testing.T) {
	inner := errors.New("database unreachable")
	err := Interrupt(inner)

	in, ok := AsInterrupt(err)
	require.True(t, ok)
	assert.Same(t, inner, in.Unwrap())
	assert.True(t, errors.Is(err, inner))
}

func TestInterruptError_NilInner(t *testing.T) {
	err := Interrupt(nil)
	assert.Equal(t, "interrupted", err.Error())
}

func TestInternalError_Classification(t *testing.T) {
	err := NewInternalError("unrecognized builtin %s", "builtins.bogus")
	assert.True(t, IsInternal(err))
	assert.False(t, IsFeedback(err))
	assert.Contains(t, err.Error(), "builtins.bogus")
}

func TestAsExit(t *testing.T) {
	ex, ok := AsExit(&ExitSignal{Output: 42})
	require.True(t, ok)
	assert.Equal(t, 42, ex.Output)

	_, ok = AsExit(errors.New("plain"))
	assert.False(t, ok)
}

func TestHistory_Last(t *testing.T) {
	var h History
	_, ok := h.Last()
	assert.False(t, ok)

	h = append(h, Action{ID: NewID(), Call: Call{Name: "add"}, Output: 5})
	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, "add", last.Call.Name)
	assert.Equal(t, 5, last.Output)
}
