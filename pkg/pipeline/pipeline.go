// Package pipeline runs streaming data flows as small stage graphs. Each
// stage is a goroutine under one errgroup; batches move between stages over
// bounded channels, which gives back-pressure, and the first stage error
// cancels the whole group exactly once.
package pipeline

import (
	"context"

	"github.com/apache/arrow/go/v12/arrow/memory"
	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
	"golang.org/x/sync/errgroup"
)

var mon = monkit.Package()

// Error is the default pipeline error class.
var Error = errs.Class("pipeline")

// ErrCancelled is reported by stages that were torn down before finishing.
var ErrCancelled = errs.Class("pipeline cancelled")

// ExecutionContext binds one pipeline run to an allocator and an error
// group. All stages of one run share both; the first stage failure cancels
// the run's context and Wait returns that error alone.
type ExecutionContext struct {
	group  *errgroup.Group
	ctx    context.Context
	cancel context.CancelFunc
	alloc  memory.Allocator
}

// NewExecutionContext creates an execution context for a single pipeline
// run. A nil allocator defaults to the process allocator.
func NewExecutionContext(ctx context.Context, alloc memory.Allocator) *ExecutionContext {
	if alloc == nil {
		alloc = memory.DefaultAllocator
	}
	ctx, cancel := context.WithCancel(ctx)
	group, ctx := errgroup.WithContext(ctx)
	return &ExecutionContext{group: group, ctx: ctx, cancel: cancel, alloc: alloc}
}

// Context returns the run context, cancelled on the first stage failure.
func (ec *ExecutionContext) Context() context.Context { return ec.ctx }

// Allocator returns the buffer allocator shared by the run's stages.
func (ec *ExecutionContext) Allocator() memory.Allocator { return ec.alloc }

// Go launches one stage.
func (ec *ExecutionContext) Go(stage func(ctx context.Context) error) {
	ec.group.Go(func() error {
		return stage(ec.ctx)
	})
}

// Cancel tears the run down. Stages observe the cancellation through the
// run context and must release their buffers on the way out.
func (ec *ExecutionContext) Cancel() { ec.cancel() }

// Wait blocks until every stage has returned and reports the first error.
func (ec *ExecutionContext) Wait() (err error) {
	defer mon.Task()(&ec.ctx)(&err)
	defer ec.cancel()
	return ec.group.Wait()
}
