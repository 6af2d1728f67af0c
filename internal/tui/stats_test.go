package tui

import (
	"strings"
	"testing"

	"github.com/algoforge/katarun/internal/metrics"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input uint64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1 << 20, "3.0 MB"},
		{5 * 1 << 30, "5.0 GB"},
	}

	for _, tt := range tests {
		got := formatBytes(tt.input)
		if got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStatsModel_RecordCase(t *testing.T) {
	s := NewStatsModel(4)

	s.RecordCase(true)
	s.RecordCase(true)
	s.RecordCase(false)

	if s.passed != 2 {
		t.Errorf("expected 2 passed, got %d", s.passed)
	}
	if s.failed != 1 {
		t.Errorf("expected 1 failed, got %d", s.failed)
	}
	if s.Completed() != 3 {
		t.Errorf("expected 3 completed, got %d", s.Completed())
	}
}

func TestStatsModel_Fraction(t *testing.T) {
	s := NewStatsModel(4)
	if s.Fraction() != 0 {
		t.Errorf("expected fraction 0, got %v", s.Fraction())
	}

	s.RecordCase(true)
	s.RecordCase(false)
	if s.Fraction() != 0.5 {
		t.Errorf("expected fraction 0.5, got %v", s.Fraction())
	}

	empty := NewStatsModel(0)
	if empty.Fraction() != 1 {
		t.Errorf("expected fraction 1 for empty suite, got %v", empty.Fraction())
	}
}

func TestStatsModel_Reset(t *testing.T) {
	s := NewStatsModel(2)
	s.RecordCase(true)
	s.RecordCase(false)

	s.Reset()

	if s.Completed() != 0 {
		t.Errorf("expected 0 completed after reset, got %d", s.Completed())
	}
}

func TestStatsModel_UpdateMemStats(t *testing.T) {
	s := NewStatsModel(1)
	s.UpdateMemStats(metrics.MemorySnapshot{HeapAlloc: 50, HeapSys: 100}, 7)

	if s.numGoroutine != 7 {
		t.Errorf("expected 7 goroutines, got %d", s.numGoroutine)
	}
	if s.heapHistory.Len() != 1 {
		t.Fatalf("expected one heap sample, got %d", s.heapHistory.Len())
	}
	if got := s.heapHistory.Last(); got != 50 {
		t.Errorf("expected heap sample 50%%, got %v", got)
	}

	// A zero HeapSys reading must not divide by zero.
	s.UpdateMemStats(metrics.MemorySnapshot{}, 1)
	if s.heapHistory.Len() != 1 {
		t.Errorf("expected zero reading to be skipped, got %d samples", s.heapHistory.Len())
	}
}

func TestStatsModel_View(t *testing.T) {
	s := NewStatsModel(3)
	s.SetSize(40, 10)
	s.RecordCase(true)
	s.RecordCase(false)
	s.UpdateMemStats(metrics.MemorySnapshot{HeapAlloc: 1 << 20, HeapSys: 4 << 20, NumGC: 2}, 5)

	view := s.View()
	for _, want := range []string{"Cases:", "Pass:", "Fail:", "Heap:", "Goroutines:"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
