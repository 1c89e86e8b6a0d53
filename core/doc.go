// Package core defines the shared vocabulary of the agentick runtime: the
// parsed call shape, the append-only action history, the tick result variants
// (Pending / Exited) and the error taxonomy that drives retry and abort
// decisions in the controller. It has no dependencies on other agentick
// packages so every layer can speak these types without import cycles.
package core
