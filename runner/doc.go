// Package runner coordinates independent agent runs: it constructs one
// controller per run, drives it to completion on its own goroutine, tracks
// active runs and threads external cancellation through both of the loop's
// suspension points. Controllers never share mutable state, so any number of
// runs may execute concurrently.
package runner
