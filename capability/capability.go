// Package capability implements the registry that maps stable external names
// to callable references, plus the built-in pseudo-capability namespace. A
// capability is registered once at agent construction time; dispatch resolves
// the pre-bound callable by name without any reflection at call time.
package capability

import (
	"context"

	"github.com/hupe1980/agentick/decl"
)

// Func is the callable form of a capability. Arguments are positional and
// arrive in the order the model supplied them; the returned value becomes the
// action's output. Implementations may perform arbitrary asynchronous work
// and must respect ctx cancellation.
type Func func(ctx context.Context, args []any) (any, error)

// ScopeAdder contributes a capability's declaration text to a rendering
// scope, typically via scope.AddFromID against the extracted index.
type ScopeAdder func(scope *decl.Scope) error

// Descriptor binds an external name to its callable and scope contribution.
// Descriptors are immutable after registration.
type Descriptor struct {
	Name       string
	Fn         Func
	AddToScope ScopeAdder
}
