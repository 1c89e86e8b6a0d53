package template

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/agentick/core"
	"github.com/hupe1980/agentick/decl"
	"github.com/hupe1980/agentick/internal/util"
	"github.com/tidwall/gjson"
)

// replyShape is the exact reply contract stated in the initial context and
// re-stated in every corrective diagnostic.
const replyShape = `Reply with a single JSON object and nothing else:

{"name": "<operation name>", "reasoning": "<optional free text>", "arguments": [<ordered argument values>]}

"name" and "arguments" are required, "reasoning" is optional. Arguments are
positional and must appear in declaration order. Do not add any prose,
commentary or formatting outside the JSON object.`

const contextTemplate = `You are driving a program by invoking the operations it exports. On every
turn you pick exactly one operation and the program replies with its result.

The operations available to you are declared below:

` + "```" + `
{{.Declarations}}
` + "```" + `

{{.ReplyShape}}`

// Baseline is the default rendering strategy. It is stateless and safe for
// concurrent use by independent controllers.
type Baseline struct{}

// NewBaseline constructs the default strategy.
func NewBaseline() *Baseline { return &Baseline{} }

// RenderContext implements Template.
func (b *Baseline) RenderContext(scope *decl.Scope) string {
	out, err := util.RenderTemplate(contextTemplate, map[string]any{
		"Declarations": scope.Render(),
		"ReplyShape":   replyShape,
	})
	if err != nil {
		// The template is a constant; execution cannot realistically fail.
		// Fall back to plain concatenation rather than losing the context.
		return "Operations:\n\n" + scope.Render() + "\n\n" + replyShape
	}
	return out
}

// RenderOutput implements Template.
func (b *Baseline) RenderOutput(output any) string {
	serialized, err := json.Marshal(output) // nil marshals to "null"
	if err != nil {
		serialized = []byte(fmt.Sprintf("%q", fmt.Sprint(output)))
	}
	return "The call returned:\n\n```json\n" + string(serialized) + "\n```\n\nIssue the next call."
}

// RenderError implements Template.
func (b *Baseline) RenderError(err error) string {
	return fmt.Sprintf("The previous reply could not be used: %v.\n\n%s", err, replyShape)
}

// ParseResponse implements Template. It tolerates Markdown code fences around
// the object but otherwise demands exactly the documented shape.
func (b *Baseline) ParseResponse(raw string) (core.Call, error) {
	text := stripFences(raw)

	if !gjson.Valid(text) {
		return core.Call{}, &ParseError{Raw: raw, Reason: "reply is not valid JSON"}
	}

	root := gjson.Parse(text)
	if !root.IsObject() {
		return core.Call{}, &ParseError{Raw: raw, Reason: "reply is not a JSON object"}
	}

	name := root.Get("name")
	if !name.Exists() || name.Type != gjson.String || name.String() == "" {
		return core.Call{}, &ParseError{Raw: raw, Reason: `missing required string field "name"`}
	}

	args := root.Get("arguments")
	if !args.Exists() || !args.IsArray() {
		return core.Call{}, &ParseError{Raw: raw, Reason: `missing required array field "arguments"`}
	}

	arguments, _ := args.Value().([]any)
	if arguments == nil {
		arguments = []any{}
	}

	return core.Call{
		Name:      name.String(),
		Reasoning: root.Get("reasoning").String(),
		Arguments: arguments,
	}, nil
}

// stripFences removes a surrounding Markdown code fence (``` or ```json) if
// present and trims whitespace.
func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		text = text[idx+1:] // drop the fence line including a language tag
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
