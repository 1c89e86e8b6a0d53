// Package decl loads and queries the declaration index produced by the
// out-of-process extraction step, and accumulates declaration text into scopes
// used to render the model-facing description of available capabilities. The
// runtime never parses program source itself; it only resolves previously
// indexed declarations by their stable identifier paths.
package decl
