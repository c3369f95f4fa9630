package eventing

import (
	"runtime"
	"sync/atomic"
)

const spinBudget = 256 // consecutive empty polls before yielding the processor

// DrainPinned drains c on a dedicated OS thread until *stop becomes
// non-zero, then closes done exactly once. On Linux the thread is pinned to
// the given logical CPU (best effort; out-of-range cores and other targets
// run unpinned). hook sees each item in order, same contract as PollOne.
//
// The loop stays in a tight poll while items keep arriving and falls back
// to runtime.Gosched after spinBudget consecutive empty polls, so an idle
// feed does not monopolize the core.
func DrainPinned[T any](core int, c *Consumer[T], stop *atomic.Uint32, hook func(seq uint32, v *T), done chan<- struct{}) {
	go func() {
		runtime.LockOSThread()
		setAffinity(core) // stub on non-Linux
		defer func() {
			runtime.UnlockOSThread()
			close(done)
		}()

		miss := 0
		for {
			if c.PollOne(hook) {
				miss = 0
				continue
			}

			if stop.Load() != 0 {
				return
			}

			if miss++; miss >= spinBudget {
				miss = 0
				runtime.Gosched()
			}
		}
	}()
}
