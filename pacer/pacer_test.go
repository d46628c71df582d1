package pacer

import (
	"testing"
	"time"
)

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	var p Pacer = r

	p.Pause(time.Second)
	p.Pause(500 * time.Millisecond)

	if len(r.Pauses) != 2 {
		t.Errorf("Expected 2 pauses, got %d", len(r.Pauses))
	}
	if r.Total() != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s total, got %v", r.Total())
	}
}

func TestRealtime_Blocks(t *testing.T) {
	start := time.Now()
	Realtime{}.Pause(20 * time.Millisecond)
	if time.Since(start) < 20*time.Millisecond {
		t.Errorf("Realtime pause returned early")
	}
}
