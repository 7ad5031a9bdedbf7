package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/cti-tui/internal/clock"
)

func TestTriggerRunsAfterDelay(t *testing.T) {
	c := clock.Fake(time.Unix(0, 0))
	d := New(c, 400*time.Millisecond)

	calls := 0
	d.Trigger(func() { calls++ })
	assert.True(t, d.Pending())

	c.Advance(399 * time.Millisecond)
	assert.Equal(t, 0, calls)

	c.Advance(time.Millisecond)
	assert.Equal(t, 1, calls)
	assert.False(t, d.Pending())
}

func TestTriggerSupersedesPending(t *testing.T) {
	c := clock.Fake(time.Unix(0, 0))
	d := New(c, 400*time.Millisecond)

	var got []string
	d.Trigger(func() { got = append(got, "a") })
	c.Advance(100 * time.Millisecond)
	d.Trigger(func() { got = append(got, "ab") })
	c.Advance(100 * time.Millisecond)
	d.Trigger(func() { got = append(got, "abc") })

	// 400ms after the first keystroke nothing has fired yet.
	c.Advance(200 * time.Millisecond)
	assert.Empty(t, got)

	c.Advance(200 * time.Millisecond)
	require.Len(t, got, 1)
	assert.Equal(t, "abc", got[0])
	assert.Equal(t, 0, c.Pending())
}

func TestCancelDropsPending(t *testing.T) {
	c := clock.Fake(time.Unix(0, 0))
	d := New(c, 400*time.Millisecond)

	fired := false
	d.Trigger(func() { fired = true })
	d.Cancel()
	assert.False(t, d.Pending())

	c.Advance(time.Second)
	assert.False(t, fired)

	// Cancel with nothing pending is a no-op.
	d.Cancel()
}

func TestNewDefaults(t *testing.T) {
	d := New(nil, 0)
	assert.Equal(t, DefaultDelay, d.Delay())
}
