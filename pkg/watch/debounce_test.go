package watch

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CoalescesBursts(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(30 * time.Millisecond)

	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("callback ran %d times, want 1", got)
	}
}

func TestDebouncer_OnlyLatestCallbackRuns(t *testing.T) {
	var got atomic.Int32
	d := NewDebouncer(20 * time.Millisecond)

	d.Trigger(func() { got.Store(1) })
	d.Trigger(func() { got.Store(2) })

	time.Sleep(80 * time.Millisecond)
	if got.Load() != 2 {
		t.Errorf("got %d, want the latest callback (2)", got.Load())
	}
}

func TestDebouncer_Stop(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20 * time.Millisecond)

	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	if calls.Load() != 0 {
		t.Errorf("callback ran after Stop")
	}
}

func TestDebouncer_StopWithoutTrigger(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	d.Stop() // must not panic
}
