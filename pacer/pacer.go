// Package pacer paces simulated travel and countdowns.
package pacer

import "time"

type Pacer interface {
	Pause(d time.Duration)
}

// Realtime blocks the caller for the full duration.
type Realtime struct{}

func (Realtime) Pause(d time.Duration) {
	time.Sleep(d)
}

// Instant returns immediately. Used by -fast and by tests.
type Instant struct{}

func (Instant) Pause(time.Duration) {}

// Recorder returns immediately and remembers every requested pause.
type Recorder struct {
	Pauses []time.Duration
}

func (r *Recorder) Pause(d time.Duration) {
	r.Pauses = append(r.Pauses, d)
}

// Total is the simulated time spent pausing.
func (r *Recorder) Total() time.Duration {
	var total time.Duration
	for _, d := range r.Pauses {
		total += d
	}
	return total
}
