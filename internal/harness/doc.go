// Package harness coordinates the concurrent execution of exercise cases.
// It manages the lifecycle of worker goroutines, collects per-case results,
// and coordinates the display of progress updates, keeping the presentation
// layer behind small interfaces.
package harness
