// Package timer provides a coarse clock, good enough for setting I/O deadlines without calling
// time.Now on every accepted connection.
package timer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Resolution is how often the clock is updated.
const Resolution = 500 * time.Millisecond

var (
	millis = new(atomic.Int64)
	start  sync.Once
)

// Now returns the current time with at most Resolution error. The clock starts ticking on the
// first call.
func Now() time.Time {
	start.Do(func() {
		millis.Store(time.Now().UnixMilli())
		go tick()
	})

	return time.UnixMilli(millis.Load())
}

// Deadline returns the moment d from now.
func Deadline(d time.Duration) time.Time {
	return Now().Add(d)
}

func tick() {
	for {
		time.Sleep(Resolution)
		millis.Store(time.Now().UnixMilli())
	}
}
