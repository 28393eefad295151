package ratelimiter

import (
	"testing"
	"time"
)

func TestFixedDelayPacer_FirstCallDoesNotWait(t *testing.T) {
	p := NewFixedDelayPacer(100 * time.Millisecond)

	var slept []time.Duration
	p.sleep = func(d time.Duration) { slept = append(slept, d) }

	p.WaitIfNeeded()
	if len(slept) != 0 {
		t.Errorf("first call must not sleep, slept %v", slept)
	}
}

func TestFixedDelayPacer_WaitsBetweenCalls(t *testing.T) {
	p := NewFixedDelayPacer(100 * time.Millisecond)

	var slept []time.Duration
	p.sleep = func(d time.Duration) { slept = append(slept, d) }

	p.WaitIfNeeded()
	p.WaitIfNeeded()

	if len(slept) != 1 {
		t.Fatalf("second immediate call should sleep once, slept %v", slept)
	}
	if slept[0] <= 0 || slept[0] > 100*time.Millisecond {
		t.Errorf("sleep duration out of range: %v", slept[0])
	}
}

func TestFixedDelayPacer_NoWaitAfterDelayElapsed(t *testing.T) {
	p := NewFixedDelayPacer(time.Millisecond)

	var slept []time.Duration
	p.sleep = func(d time.Duration) { slept = append(slept, d) }

	p.WaitIfNeeded()
	time.Sleep(5 * time.Millisecond)
	p.WaitIfNeeded()

	if len(slept) != 0 {
		t.Errorf("no sleep expected once the delay has elapsed, slept %v", slept)
	}
}

func TestFixedDelayPacer_ZeroDelay(t *testing.T) {
	p := NewFixedDelayPacer(0)

	var slept []time.Duration
	p.sleep = func(d time.Duration) { slept = append(slept, d) }

	p.WaitIfNeeded()
	p.WaitIfNeeded()
	if len(slept) != 0 {
		t.Errorf("zero delay must never sleep, slept %v", slept)
	}
}
