// Package testcontext gives tests a scoped context, temp directories, and
// supervised goroutines that must finish before the test ends.
package testcontext

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultTimeout = 3 * time.Minute

// Context wraps a test with a deadline-bound context and scratch space.
type Context struct {
	context.Context

	test    testing.TB
	cancel  context.CancelFunc
	group   *errgroup.Group
	baseDir string
}

// New creates a test context that is cleaned up with the test.
func New(test testing.TB) *Context {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	group, ctx := errgroup.WithContext(ctx)

	tctx := &Context{
		Context: ctx,
		test:    test,
		cancel:  cancel,
		group:   group,
	}
	test.Cleanup(tctx.Cleanup)
	return tctx
}

// Go runs fn in a goroutine that must return nil before cleanup.
func (ctx *Context) Go(fn func() error) {
	ctx.test.Helper()
	ctx.group.Go(fn)
}

// Dir returns a scratch directory under the test's temp root, creating it
// together with any missing parents.
func (ctx *Context) Dir(elem ...string) string {
	ctx.test.Helper()
	if ctx.baseDir == "" {
		ctx.baseDir = ctx.test.TempDir()
	}
	dir := filepath.Join(append([]string{ctx.baseDir}, elem...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		ctx.test.Fatal(err)
	}
	return dir
}

// File returns a path inside a scratch directory.
func (ctx *Context) File(elem ...string) string {
	ctx.test.Helper()
	if len(elem) == 0 {
		ctx.test.Fatal("expected at least one path element")
	}
	dir := ctx.Dir(elem[:len(elem)-1]...)
	return filepath.Join(dir, elem[len(elem)-1])
}

// Cleanup waits for supervised goroutines and releases the context. It runs
// automatically at test end and is safe to call twice.
func (ctx *Context) Cleanup() {
	ctx.test.Helper()
	if err := ctx.group.Wait(); err != nil {
		ctx.test.Error(err)
	}
	ctx.cancel()
}
