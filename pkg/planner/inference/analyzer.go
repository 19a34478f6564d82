package inference

import (
	"context"
	"sync"
	"time"

	"ai-roomplanner-be/internal/entity"
)

// Analyzer runs the simulated analysis delay off the request path, at most
// one live run per session. Submitting again supersedes the in-flight run; a
// superseded or cancelled run never delivers its result, so a stale ranking
// cannot land after the user moved on.
type Analyzer struct {
	scorer *StyleScorer
	delay  time.Duration

	mu      sync.Mutex
	lastGen uint64
	runs    map[string]*analysisRun
}

type analysisRun struct {
	generation uint64
	cancel     context.CancelFunc
}

func NewAnalyzer(scorer *StyleScorer, delay time.Duration) *Analyzer {
	return &Analyzer{
		scorer: scorer,
		delay:  delay,
		runs:   make(map[string]*analysisRun),
	}
}

// Submit schedules an analysis for the session and returns immediately.
// deliver is invoked exactly once with the ranked styles, unless the run is
// cancelled or superseded first. deliver runs under the analyzer's lock and
// must not call back into the Analyzer.
func (a *Analyzer) Submit(sessionId string, colorHint []string, deliver func([]entity.StyleScore)) {
	runCtx, cancel := context.WithCancel(context.Background())

	a.mu.Lock()
	if prev := a.runs[sessionId]; prev != nil {
		prev.cancel()
	}
	a.lastGen++
	run := &analysisRun{generation: a.lastGen, cancel: cancel}
	a.runs[sessionId] = run
	a.mu.Unlock()

	go func() {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()

		select {
		case <-runCtx.Done():
			return
		case <-timer.C:
		}

		scores := a.scorer.Score(colorHint)

		// Re-check and deliver under the lock so Cancel and a superseding
		// Submit serialize with the delivery instead of racing it: once
		// either returns, this run has fully delivered or never will.
		a.mu.Lock()
		defer a.mu.Unlock()
		current := a.runs[sessionId]
		if current == nil || current.generation != run.generation {
			return
		}
		delete(a.runs, sessionId)
		deliver(scores)
	}()
}

// Cancel aborts the session's in-flight analysis, if any.
func (a *Analyzer) Cancel(sessionId string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if run, ok := a.runs[sessionId]; ok {
		run.cancel()
		delete(a.runs, sessionId)
	}
}

// Analyzing reports whether the session has an analysis in flight.
func (a *Analyzer) Analyzing(sessionId string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.runs[sessionId]
	return ok
}
