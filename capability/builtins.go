package capability

import (
	"strings"

	"github.com/hupe1980/agentick/decl"
)

// BuiltinPrefix namespaces pseudo-capabilities provided by the runtime
// itself. Names under this prefix never resolve through the registry.
const BuiltinPrefix = "builtins."

// ExitName terminates the run: zero arguments exits without a payload, one
// argument exits carrying that value.
const ExitName = BuiltinPrefix + "exit"

// IsBuiltin reports whether name addresses the built-in namespace.
func IsBuiltin(name string) bool {
	return strings.HasPrefix(name, BuiltinPrefix)
}

const exitDeclaration = `builtins.exit(result?)
  Ends the run. Call with no arguments to finish without a result, or with a
  single argument to finish and return that value as the final output.`

// ExitNode returns the pre-rendered declaration for builtins.exit. The exit
// built-in has no source-level declaration, so it is injected into the scope
// directly when the agent permits termination.
func ExitNode() decl.Node {
	return decl.Node{ID: ExitName, Kind: decl.KindBuiltin, Text: exitDeclaration}
}
