package runner

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/agentick/agent"
	"github.com/hupe1980/agentick/core"
	"github.com/hupe1980/agentick/decl"
	"github.com/hupe1980/agentick/logging"
	"github.com/hupe1980/agentick/model"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// MaxRetries bounds recoverable failures per run.
	MaxRetries int
	// Logger receives diagnostic events for all runs.
	Logger logging.Logger
}

// Result is the terminal outcome of one run.
type Result struct {
	RunID  string
	Output any
	Err    error
}

// Runner shares a declaration index and a model client across runs and keeps
// a cancel handle per active run. Public methods are safe for concurrent use.
type Runner struct {
	index  *decl.Index
	client model.Client

	maxRetries int
	logger     *logging.RunLogger

	activeRuns map[string]context.CancelFunc
	mu         sync.Mutex
}

// New constructs a Runner with optional overrides.
func New(index *decl.Index, client model.Client, optFns ...func(o *Options)) *Runner {
	opts := Options{
		MaxRetries: agent.DefaultMaxRetries,
		Logger:     logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Runner{
		index:      index,
		client:     client,
		maxRetries: opts.MaxRetries,
		logger:     logging.WrapRunLogger(opts.Logger),
		activeRuns: make(map[string]context.CancelFunc),
	}
}

// Start begins an asynchronous run of ag and returns its ID together with a
// single-result channel that is closed after delivery.
func (r *Runner) Start(ctx context.Context, ag *agent.Agent) (string, <-chan Result) {
	runID := core.NewID()
	resultCh := make(chan Result, 1)

	ctx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.activeRuns[runID] = cancel
	r.mu.Unlock()

	logger := r.logger.WithRun(runID)

	go func() {
		defer func() {
			cancel()
			r.mu.Lock()
			delete(r.activeRuns, runID)
			r.mu.Unlock()
			close(resultCh)
		}()

		ctrl := agent.NewController(ag, r.index, r.client, func(o *agent.ControllerOptions) {
			o.MaxRetries = r.maxRetries
			o.Logger = logger
		})

		logger.Info("run.started", "agent", ag.Name())
		output, err := ctrl.RunToCompletion(ctx)
		if err != nil {
			logger.Error("run.failed", "agent", ag.Name(), "error", err.Error())
		} else {
			logger.Info("run.completed", "agent", ag.Name())
		}

		resultCh <- Result{RunID: runID, Output: output, Err: err}
	}()

	return runID, resultCh
}

// Run drives ag to completion synchronously, returning its terminal output
// or the aborting error.
func (r *Runner) Run(ctx context.Context, ag *agent.Agent) (any, error) {
	_, resultCh := r.Start(ctx, ag)

	select {
	case <-ctx.Done():
		// The run goroutine observes the same cancellation; wait for its
		// result so the active-run entry is cleaned up.
		res := <-resultCh
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Output, nil
	case res := <-resultCh:
		return res.Output, res.Err
	}
}

// Cancel aborts a running run by ID.
func (r *Runner) Cancel(runID string) error {
	r.mu.Lock()
	cancel, exists := r.activeRuns[runID]
	r.mu.Unlock()

	if !exists {
		return fmt.Errorf("run %s not found", runID)
	}

	cancel()

	return nil
}

// ActiveRuns returns the IDs of runs that have not yet delivered a result.
func (r *Runner) ActiveRuns() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.activeRuns))
	for id := range r.activeRuns {
		ids = append(ids, id)
	}
	return ids
}
