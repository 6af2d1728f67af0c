package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/algoforge/katarun/internal/harness"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter implements harness.ProgressReporter.
// It drains the progress channel and forwards updates as bubbletea messages.
type TUIProgressReporter struct {
	ref        *programRef
	generation uint64
}

// Verify interface compliance.
var _ harness.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains the progress channel and sends CaseDoneMsg to the TUI.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan harness.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()

	for update := range updates {
		t.ref.Send(CaseDoneMsg{
			Name:       update.Name,
			Passed:     update.Passed,
			Duration:   update.Duration,
			Generation: t.generation,
		})
	}
}
