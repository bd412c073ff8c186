package notify

import (
	"context"
	"math/rand/v2"
	"time"
)

// Auto-save defaults.
const (
	DefaultAutoSaveInterval  = 5 * time.Second
	DefaultAutoSaveThreshold = 0.8
	AutoSaveMessage          = "Data auto-saved"
)

// AutoSaver periodically shows an "auto-saved" notification. It persists
// nothing; the message is suppressed unless a random draw exceeds Threshold.
type AutoSaver struct {
	Hub       *Hub
	Interval  time.Duration
	Threshold float64
	Rand      func() float64
}

// NewAutoSaver creates an AutoSaver with the default interval and threshold.
func NewAutoSaver(hub *Hub) *AutoSaver {
	return &AutoSaver{
		Hub:       hub,
		Interval:  DefaultAutoSaveInterval,
		Threshold: DefaultAutoSaveThreshold,
		Rand:      rand.Float64,
	}
}

// Run ticks until ctx is cancelled.
func (a *AutoSaver) Run(ctx context.Context) {
	ticker := time.NewTicker(a.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.Tick()
		}
	}
}

// Tick performs one draw and notifies when it passes the threshold.
func (a *AutoSaver) Tick() bool {
	if a.Rand() <= a.Threshold {
		return false
	}
	a.Hub.Success(AutoSaveMessage)
	return true
}
