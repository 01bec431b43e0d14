package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spectralsuite/peaks/pkg/internal/sensor"
	"github.com/spectralsuite/peaks/pkg/internal/spectrum"
	"github.com/spectralsuite/peaks/pkg/internal/types"
)

func makeTrace(t *testing.T, name string) types.Trace {
	t.Helper()
	s, err := spectrum.FromArrays([]float64{1, 2, 3}, []float64{4, 5, 6}, spectrum.WithName(name))
	if err != nil {
		t.Fatalf("FromArrays failed: %v", err)
	}
	return s
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s", timeout)
}

func TestPollAssignsMonotonicIDsInOrder(t *testing.T) {
	r := NewRegistry()

	for i := 0; i < 3; i++ {
		if err := r.Submit(makeTrace(t, fmt.Sprintf("trace-%d", i))); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
	}

	for want := 1; want <= 3; want++ {
		trace, ok := r.PollOnce()
		if !ok {
			t.Fatalf("PollOnce returned empty with %d pending", r.Pending())
		}
		if trace.ID() != want {
			t.Errorf("Expected id %d, got %d", want, trace.ID())
		}
		if wantName := fmt.Sprintf("trace-%d", want-1); trace.Label() != wantName {
			t.Errorf("Expected FIFO order, got %q at id %d", trace.Label(), trace.ID())
		}
	}

	if trace, ok := r.PollOnce(); ok {
		t.Errorf("Expected empty queue sentinel, got trace %d", trace.ID())
	}
}

func TestConcurrentSubmitKeepsIDsUnique(t *testing.T) {
	r := NewRegistry(WithQueueCapacity(8))

	const producers = 8
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				if err := r.Submit(makeTrace(t, fmt.Sprintf("p%d-%d", p, i))); err != nil {
					t.Errorf("Submit failed: %v", err)
					return
				}
			}
		}(p)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for {
		trace, ok := r.PollOnce()
		if !ok {
			break
		}
		if seen[trace.ID()] {
			t.Fatalf("id %d assigned twice", trace.ID())
		}
		seen[trace.ID()] = true
	}

	if len(seen) != producers*perProducer {
		t.Errorf("Expected %d registered traces, got %d", producers*perProducer, len(seen))
	}
	if r.Len() != producers*perProducer {
		t.Errorf("Expected Len %d, got %d", producers*perProducer, r.Len())
	}
}

func TestDeleteNotifiesBeforeRemoval(t *testing.T) {
	var resolvedDuringCallback bool

	r := NewRegistry()
	s := sensor.NewSensor(
		sensor.WithOnTraceRemovedFunc(func(c types.ComponentMetadata, id int) {
			_, err := r.GetByID(id)
			resolvedDuringCallback = err == nil
		}),
	)
	r.ConnectSensor(s)

	if err := r.Submit(makeTrace(t, "doomed")); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	trace, ok := r.PollOnce()
	if !ok {
		t.Fatalf("PollOnce returned empty")
	}

	if err := r.Delete(trace.ID()); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !resolvedDuringCallback {
		t.Errorf("Expected the trace to still resolve inside the removal callback")
	}
	if _, err := r.GetByID(trace.ID()); !errors.Is(err, ErrUnknownTrace) {
		t.Errorf("Expected ErrUnknownTrace after delete, got %v", err)
	}
	if err := r.Delete(trace.ID()); !errors.Is(err, ErrUnknownTrace) {
		t.Errorf("Expected ErrUnknownTrace on double delete, got %v", err)
	}
}

func TestDeletedIDsAreNeverReused(t *testing.T) {
	r := NewRegistry()

	r.Submit(makeTrace(t, "a"))
	first, _ := r.PollOnce()
	if err := r.Delete(first.ID()); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	r.Submit(makeTrace(t, "b"))
	second, ok := r.PollOnce()
	if !ok {
		t.Fatalf("PollOnce returned empty")
	}
	if second.ID() == first.ID() {
		t.Errorf("id %d was reused after deletion", first.ID())
	}
	if second.ID() != first.ID()+1 {
		t.Errorf("Expected id %d, got %d", first.ID()+1, second.ID())
	}
}

func TestUniqueName(t *testing.T) {
	r := NewRegistry()

	r.Submit(makeTrace(t, "sample"))
	r.PollOnce()

	if got := r.UniqueName("other"); got != "other" {
		t.Errorf("Expected unused base to pass through, got %q", got)
	}
	if got := r.UniqueName("sample"); got != "sample-1" {
		t.Errorf("Expected first suffix, got %q", got)
	}

	r.Submit(makeTrace(t, "sample-1"))
	r.PollOnce()
	if got := r.UniqueName("sample"); got != "sample-2" {
		t.Errorf("Expected next free suffix, got %q", got)
	}
}

func TestListByKind(t *testing.T) {
	r := NewRegistry()

	r.Submit(makeTrace(t, "one"))
	r.Submit(makeTrace(t, "two"))
	r.PollOnce()
	r.PollOnce()

	spectra := r.ListByKind(types.KindSpectrum)
	if len(spectra) != 2 {
		t.Fatalf("Expected 2 spectra, got %d", len(spectra))
	}
	if spectra[0].Label() != "one" || spectra[1].Label() != "two" {
		t.Errorf("Expected registration order, got %q, %q", spectra[0].Label(), spectra[1].Label())
	}
	if models := r.ListByKind(types.KindModel); len(models) != 0 {
		t.Errorf("Expected no models, got %d", len(models))
	}
}

func TestDrainLoopRegistersSubmissions(t *testing.T) {
	r := NewRegistry()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Start(ctx, 10*time.Millisecond); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !r.IsStarted() {
		t.Fatalf("Expected IsStarted after Start")
	}
	if err := r.Start(ctx, 10*time.Millisecond); err != nil {
		t.Errorf("Second Start must be a no-op, got %v", err)
	}

	for i := 0; i < 3; i++ {
		r.Submit(makeTrace(t, fmt.Sprintf("drained-%d", i)))
	}

	waitFor(t, 2*time.Second, func() bool {
		return r.Len() == 3 && r.Pending() == 0
	})

	if err := r.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if r.IsStarted() {
		t.Errorf("Expected IsStarted false after Stop")
	}
}

type captureLogger struct {
	mu       sync.Mutex
	level    types.LogLevel
	messages []string
}

func (l *captureLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func (l *captureLogger) captured() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.messages...)
}

func (l *captureLogger) GetLevel() types.LogLevel      { return l.level }
func (l *captureLogger) SetLevel(level types.LogLevel) { l.level = level }

func (l *captureLogger) Debug(msg string, keysAndValues ...interface{})  { l.record(msg) }
func (l *captureLogger) Info(msg string, keysAndValues ...interface{})   { l.record(msg) }
func (l *captureLogger) Warn(msg string, keysAndValues ...interface{})   { l.record(msg) }
func (l *captureLogger) Error(msg string, keysAndValues ...interface{})  { l.record(msg) }
func (l *captureLogger) DPanic(msg string, keysAndValues ...interface{}) { l.record(msg) }
func (l *captureLogger) Panic(msg string, keysAndValues ...interface{})  { l.record(msg) }
func (l *captureLogger) Fatal(msg string, keysAndValues ...interface{})  { l.record(msg) }

func (l *captureLogger) Flush() error { return nil }

func (l *captureLogger) AddSink(identifier string, config types.SinkConfig) error { return nil }
func (l *captureLogger) RemoveSink(identifier string) error                       { return nil }
func (l *captureLogger) ListSinks() ([]string, error)                             { return nil, nil }

func TestLogMessagesAreFormatted(t *testing.T) {
	logger := &captureLogger{}
	r := NewRegistry(WithLogger(logger))

	if err := r.Submit(makeTrace(t, "formatted")); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, ok := r.PollOnce(); !ok {
		t.Fatalf("PollOnce returned empty")
	}

	messages := logger.captured()
	if len(messages) == 0 {
		t.Fatalf("Expected log output from Submit and PollOnce")
	}
	for _, msg := range messages {
		if strings.Contains(msg, "%s") || strings.Contains(msg, "%d") {
			t.Errorf("Unformatted verb reached the logger: %q", msg)
		}
	}
	if !strings.Contains(messages[0], "trace: formatted") {
		t.Errorf("Expected the trace label in the message, got %q", messages[0])
	}
}
