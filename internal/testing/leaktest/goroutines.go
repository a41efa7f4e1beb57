// Package leaktest detects goroutines left running by concurrent code under test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker compares the goroutine count before and after a piece of work
type GoroutineChecker struct {
	before  int
	t       testing.TB
	timeout time.Duration
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	return &GoroutineChecker{
		before:  settledCount(),
		t:       t,
		timeout: settleTimeout,
	}
}

// Check fails the test if more than tolerance goroutines are still running once
// the count stops dropping. Workers that are merely slow to exit get until the
// timeout to finish.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after, ok := waitForCount(g.before+tolerance, g.timeout)
	if !ok {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, after-g.before, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to have exited
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// waitForCount polls until at most target goroutines run or the timeout passes
func waitForCount(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}

// settledCount waits briefly for the count to stop changing, so goroutines
// still winding down from earlier tests are not charged to the next one
func settledCount() int {
	prev := runtime.NumGoroutine()
	for i := 0; i < 5; i++ {
		time.Sleep(pollInterval)
		n := runtime.NumGoroutine()
		if n == prev {
			return n
		}
		prev = n
	}
	return prev
}
