package game

import (
	"testing"
	"time"
)

func TestClockTick(t *testing.T) {
	var c Clock
	start := time.Unix(0, 0)

	if got := c.Tick(start); got != 0 {
		t.Errorf("first Tick() = %v, want 0", got)
	}
	if got := c.Tick(start.Add(16 * time.Millisecond)); got != 16 {
		t.Errorf("Tick() = %v, want 16", got)
	}
	if got := c.Tick(start.Add(16*time.Millisecond + 500*time.Microsecond)); got != 0.5 {
		t.Errorf("Tick() = %v, want 0.5", got)
	}
	if got := c.Tick(start); got != 0 {
		t.Errorf("Tick() going backwards = %v, want 0", got)
	}
}
