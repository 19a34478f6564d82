package inference

import (
	"sync"
	"testing"
	"time"

	"ai-roomplanner-be/internal/catalog"
	"ai-roomplanner-be/internal/entity"
)

type deliveryRecorder struct {
	mu    sync.Mutex
	calls int
}

func (r *deliveryRecorder) deliver([]entity.StyleScore) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
}

func (r *deliveryRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func TestAnalyzerDelivers(t *testing.T) {
	a := NewAnalyzer(NewStyleScorer(catalog.MustLoad()), 10*time.Millisecond)
	rec := &deliveryRecorder{}

	a.Submit("session-1", nil, rec.deliver)

	if !a.Analyzing("session-1") {
		t.Error("Analyzing should report true right after Submit")
	}

	waitFor(t, func() bool { return rec.count() == 1 })

	if a.Analyzing("session-1") {
		t.Error("Analyzing should report false after delivery")
	}
}

func TestAnalyzerCancelPreventsDelivery(t *testing.T) {
	a := NewAnalyzer(NewStyleScorer(catalog.MustLoad()), 20*time.Millisecond)
	rec := &deliveryRecorder{}

	a.Submit("session-1", nil, rec.deliver)
	a.Cancel("session-1")

	time.Sleep(60 * time.Millisecond)
	if got := rec.count(); got != 0 {
		t.Errorf("cancelled analysis delivered %d times, want 0", got)
	}
	if a.Analyzing("session-1") {
		t.Error("Analyzing should report false after Cancel")
	}
}

func TestAnalyzerSupersedes(t *testing.T) {
	a := NewAnalyzer(NewStyleScorer(catalog.MustLoad()), 20*time.Millisecond)
	first := &deliveryRecorder{}
	second := &deliveryRecorder{}

	a.Submit("session-1", nil, first.deliver)
	a.Submit("session-1", nil, second.deliver)

	waitFor(t, func() bool { return second.count() == 1 })

	time.Sleep(60 * time.Millisecond)
	if got := first.count(); got != 0 {
		t.Errorf("superseded analysis delivered %d times, want 0", got)
	}
}

func TestAnalyzerCancelSerializesWithDelivery(t *testing.T) {
	a := NewAnalyzer(NewStyleScorer(catalog.MustLoad()), 5*time.Millisecond)

	entered := make(chan struct{})
	release := make(chan struct{})
	delivered := make(chan int, 1)
	a.Submit("session-1", nil, func(scores []entity.StyleScore) {
		close(entered)
		<-release
		delivered <- len(scores)
	})

	<-entered

	// Cancel arriving mid-delivery must block until the delivery finishes;
	// it can never turn an in-progress delivery into a half-cancelled one.
	cancelDone := make(chan struct{})
	go func() {
		a.Cancel("session-1")
		close(cancelDone)
	}()

	select {
	case <-cancelDone:
		t.Fatal("Cancel returned while delivery was still in progress")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-cancelDone
	if got := <-delivered; got == 0 {
		t.Error("delivery completed with no styles")
	}
	if a.Analyzing("session-1") {
		t.Error("Analyzing should report false once delivery and Cancel are done")
	}
}

func TestAnalyzerSessionsAreIndependent(t *testing.T) {
	a := NewAnalyzer(NewStyleScorer(catalog.MustLoad()), 10*time.Millisecond)
	one := &deliveryRecorder{}
	two := &deliveryRecorder{}

	a.Submit("session-1", nil, one.deliver)
	a.Submit("session-2", nil, two.deliver)
	a.Cancel("session-1")

	waitFor(t, func() bool { return two.count() == 1 })

	if got := one.count(); got != 0 {
		t.Errorf("cancelled session delivered %d times, want 0", got)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
