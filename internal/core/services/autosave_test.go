package services

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CollapsesBurstIntoOneRun(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var runs atomic.Int32
	for i := 0; i < 10; i++ {
		d.Schedule(func() { runs.Add(1) })
	}

	assert.Eventually(t, func() bool {
		return runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// No further runs after the burst fired.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestDebouncer_LastScheduledWins(t *testing.T) {
	d := NewDebouncer(time.Hour)

	var got atomic.Int32
	d.Schedule(func() { got.Store(1) })
	d.Schedule(func() { got.Store(2) })

	d.Flush()

	assert.Equal(t, int32(2), got.Load())
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(time.Hour)

	ran := false
	d.Schedule(func() { ran = true })
	assert.True(t, d.Pending())

	d.Cancel()

	assert.False(t, d.Pending())
	d.Flush()
	assert.False(t, ran)
}

func TestDebouncer_FlushRunsSynchronously(t *testing.T) {
	d := NewDebouncer(time.Hour)

	ran := false
	d.Schedule(func() { ran = true })
	d.Flush()

	assert.True(t, ran)
	assert.False(t, d.Pending())

	// A second flush has nothing to run.
	d.Flush()
}

func TestDebouncer_ZeroDelayRunsImmediately(t *testing.T) {
	d := NewDebouncer(0)

	ran := false
	d.Schedule(func() { ran = true })

	assert.True(t, ran)
	assert.False(t, d.Pending())
}
