package core

import (
	"errors"
	"fmt"
)

// The controller distinguishes four error classes plus one control signal:
//
//	FeedbackError  - the model produced an invalid or unusable call; recovered
//	                 by re-prompting while the retry budget lasts
//	InterruptError - an inner application error deliberately surfaced through
//	                 the loop; never retried, the inner error propagates
//	InternalError  - a defect in the runtime itself; never retried
//	ExitSignal     - not a failure: the model asked to stop, carrying the
//	                 run's terminal output
//
// Any other error (capability implementation failures, transport errors) is
// unclassified and shares the Feedback retry budget.

// FeedbackError marks a recoverable model mistake: malformed reply text, an
// unknown capability name, wrong arity. Its message is sent back verbatim as
// the corrective system prompt.
type FeedbackError struct {
	Message string
}

func (e *FeedbackError) Error() string { return e.Message }

// NewFeedbackError formats a FeedbackError.
func NewFeedbackError(format string, args ...any) *FeedbackError {
	return &FeedbackError{Message: fmt.Sprintf(format, args...)}
}

// InterruptError wraps an application error that must abort the run. The
// controller unwraps it and propagates the inner error to the caller.
type InterruptError struct {
	Inner error
}

func (e *InterruptError) Error() string {
	if e.Inner == nil {
		return "interrupted"
	}
	return fmt.Sprintf("interrupted: %v", e.Inner)
}

// Unwrap exposes the inner error for errors.Is/As chains.
func (e *InterruptError) Unwrap() error { return e.Inner }

// Interrupt wraps err so the controller aborts instead of retrying.
func Interrupt(err error) *InterruptError { return &InterruptError{Inner: err} }

// InternalError signals a defect in the runtime itself, e.g. an unrecognized
// built-in reaching dispatch. It always aborts the run.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return "internal error: " + e.Message }

// NewInternalError formats an InternalError.
func NewInternalError(format string, args ...any) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}

// ExitSignal is the control signal raised by builtins.exit. It travels the
// error path for convenience but is not a failure; the controller converts it
// into an Exited tick result.
type ExitSignal struct {
	Output any
}

func (e *ExitSignal) Error() string { return "exit" }

// IsFeedback reports whether err is classified as model feedback.
func IsFeedback(err error) bool {
	var fe *FeedbackError
	return errors.As(err, &fe)
}

// IsInternal reports whether err is a runtime defect.
func IsInternal(err error) bool {
	var ie *InternalError
	return errors.As(err, &ie)
}

// AsExit extracts an ExitSignal from err, if present.
func AsExit(err error) (*ExitSignal, bool) {
	var ex *ExitSignal
	if errors.As(err, &ex) {
		return ex, true
	}
	return nil, false
}

// AsInterrupt extracts an InterruptError from err, if present.
func AsInterrupt(err error) (*InterruptError, bool) {
	var in *InterruptError
	if errors.As(err, &in) {
		return in, true
	}
	return nil, false
}
