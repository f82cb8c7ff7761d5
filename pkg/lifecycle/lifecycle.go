// Package lifecycle coordinates startup and shutdown of long-running subsystems.
//
// Subsystems register startup hooks that must finish before the service reports
// ready, and shutdown hooks that block on the coordinator context and release
// their resources once it is cancelled.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// ReadinessChecker reports whether all startup hooks have completed.
type ReadinessChecker interface {
	Ready() bool
}

type Coordinator struct {
	ctx    context.Context
	cancel context.CancelFunc

	startupWg  sync.WaitGroup
	shutdownWg sync.WaitGroup

	ready atomic.Bool
}

func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context is cancelled when Shutdown begins.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup runs fn in its own goroutine; WaitForStartup blocks until it returns.
func (c *Coordinator) OnStartup(fn func()) {
	c.startupWg.Add(1)
	go func() {
		defer c.startupWg.Done()
		fn()
	}()
}

// OnShutdown runs fn in its own goroutine. fn is expected to wait on
// Context().Done() before releasing resources; Shutdown blocks until it returns.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdownWg.Add(1)
	go func() {
		defer c.shutdownWg.Done()
		fn()
	}()
}

// WaitForStartup blocks until every startup hook has returned, then marks the
// coordinator ready.
func (c *Coordinator) WaitForStartup() {
	c.startupWg.Wait()
	c.ready.Store(true)
}

func (c *Coordinator) Ready() bool {
	return c.ready.Load()
}

// Shutdown cancels the coordinator context and waits up to timeout for all
// shutdown hooks to return.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.ready.Store(false)
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout after %s", timeout)
	}
}
