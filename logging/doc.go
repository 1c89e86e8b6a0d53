// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing users to plug any
// structured logger. It also offers a richer RunLogger with run-scoped
// context and domain helpers for model exchanges and capability dispatches,
// plus the process-wide verbosity setting shared by all controllers.
package logging
