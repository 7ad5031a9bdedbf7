// Package clock abstracts time so that debounced and periodic work can be
// driven deterministically in tests. Production code uses Real(); tests
// use Fake() and move time forward with Advance.
package clock

import "time"

type Clock interface {
	Now() time.Time

	// AfterFunc calls f once d has elapsed. The returned Timer can
	// cancel the call before it fires.
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	// Stop prevents the timer from firing. It reports false if the
	// timer already fired or was stopped.
	Stop() bool
}

type realClock struct{}

func Real() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
