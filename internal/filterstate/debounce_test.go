package filterstate

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_LastWriteWins(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32
	var last atomic.Int32

	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Trigger(func() {
			calls.Add(1)
			last.Store(n)
		})
	}
	if !d.Pending() {
		t.Error("Pending() = false right after Trigger")
	}

	time.Sleep(150 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
	if got := last.Load(); got != 5 {
		t.Errorf("ran trigger %d, want 5", got)
	}
	if d.Pending() {
		t.Error("Pending() = true after settle")
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Cancel()
	if d.Pending() {
		t.Error("Pending() = true after Cancel")
	}

	time.Sleep(80 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("calls = %d, want 0 after Cancel", got)
	}
}

func TestDebouncer_PendingUntilFunctionReturns(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	var pendingInside atomic.Bool
	done := make(chan struct{})

	d.Trigger(func() {
		pendingInside.Store(d.Pending())
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for trigger")
	}
	if !pendingInside.Load() {
		t.Error("Pending() = false while the function was running")
	}

	deadline := time.Now().Add(time.Second)
	for d.Pending() {
		if time.Now().After(deadline) {
			t.Fatal("Pending() still true after the function returned")
		}
		time.Sleep(time.Millisecond)
	}
}
