package format

import (
	"fmt"
	"sync"
	"time"
)

// ProgressTracker tracks completion of a fixed number of cases and estimates
// the time remaining from the observed per-case rate. It is safe for
// concurrent use.
type ProgressTracker struct {
	mu        sync.Mutex
	total     int
	completed int
	startTime time.Time
}

// NewProgressTracker creates a tracker for the given number of cases.
func NewProgressTracker(total int) *ProgressTracker {
	return &ProgressTracker{total: total, startTime: time.Now()}
}

// Advance records one completed case and returns the overall fraction done.
func (p *ProgressTracker) Advance() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.completed < p.total {
		p.completed++
	}
	return p.fractionLocked()
}

// Fraction returns the completed fraction in [0, 1].
func (p *ProgressTracker) Fraction() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fractionLocked()
}

func (p *ProgressTracker) fractionLocked() float64 {
	if p.total == 0 {
		return 1
	}
	return float64(p.completed) / float64(p.total)
}

// Completed returns the number of recorded completions.
func (p *ProgressTracker) Completed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completed
}

// ETA estimates the remaining time from the average pace so far. It returns
// zero until the first case completes.
func (p *ProgressTracker) ETA() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.completed == 0 || p.total == 0 {
		return 0
	}
	remaining := p.total - p.completed
	if remaining <= 0 {
		return 0
	}
	perCase := time.Since(p.startTime) / time.Duration(p.completed)
	return perCase * time.Duration(remaining)
}

// FormatETA renders an ETA for display. A zero ETA renders as "--" since
// no estimate is available yet.
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "--"
	case eta < time.Second:
		return "<1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Round(time.Second).Seconds()))
	default:
		rounded := eta.Round(time.Second)
		return fmt.Sprintf("%dm%02ds", int(rounded.Minutes()), int(rounded.Seconds())%60)
	}
}
