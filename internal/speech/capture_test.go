package speech

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"aipolyglot/internal/infra"
)

type fakeEngine struct {
	mu      sync.Mutex
	langs   []string
	text    string
	err     error
	block   chan struct{}
	started chan struct{}
}

func (f *fakeEngine) StartOnce(ctx context.Context, lang string, _ io.Reader, _ string) (Transcript, error) {
	f.mu.Lock()
	f.langs = append(f.langs, lang)
	f.mu.Unlock()
	if f.started != nil {
		close(f.started)
		f.started = nil
	}
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return Transcript{}, ctx.Err()
		}
	}
	if f.err != nil {
		return Transcript{}, f.err
	}
	return Transcript{Text: f.text}, nil
}

func (f *fakeEngine) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.langs...)
}

func newTestAdapter(engine Capability) *Adapter {
	return NewAdapter(engine, infra.NewLogger("test"))
}

func capture(t *testing.T, a *Adapter, native string) (Transcript, error) {
	t.Helper()
	return a.Capture(context.Background(), native, strings.NewReader("audio"), "clip.webm")
}

func TestCaptureCyclesLanguagesAndWraps(t *testing.T) {
	engine := &fakeEngine{text: "hola"}
	adapter := newTestAdapter(engine)

	// Spanish rotation: the native tag first, then the shared fallbacks.
	want := []string{"es-ES", "en-US", "fil-PH", "zh-CN", "hi-IN", "ar-SA", "es-ES"}
	for i := 0; i < len(want); i++ {
		if _, err := capture(t, adapter, "Spanish"); err != nil {
			t.Fatalf("capture %d error: %v", i, err)
		}
	}
	got := engine.seen()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("capture %d lang = %q, want %q (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestCaptureCursorsAreIndependentPerNativeLanguage(t *testing.T) {
	engine := &fakeEngine{text: "ok"}
	adapter := newTestAdapter(engine)

	if _, err := capture(t, adapter, "Spanish"); err != nil {
		t.Fatalf("capture error: %v", err)
	}
	if _, err := capture(t, adapter, "French"); err != nil {
		t.Fatalf("capture error: %v", err)
	}
	got := engine.seen()
	if got[0] != "es-ES" || got[1] != "fr-FR" {
		t.Fatalf("langs = %v, want each native tag first", got)
	}
	if adapter.NextLanguage("Spanish") != "en-US" {
		t.Fatalf("NextLanguage(Spanish) = %q, want en-US", adapter.NextLanguage("Spanish"))
	}
}

func TestCaptureBusyGuard(t *testing.T) {
	engine := &fakeEngine{text: "ok", block: make(chan struct{}), started: make(chan struct{})}
	started := engine.started
	adapter := newTestAdapter(engine)

	done := make(chan error, 1)
	go func() {
		_, err := capture(t, adapter, "Spanish")
		done <- err
	}()
	<-started

	_, err := capture(t, adapter, "Spanish")
	if !errors.Is(err, ErrCaptureActive) {
		t.Fatalf("concurrent capture error = %v, want ErrCaptureActive", err)
	}

	close(engine.block)
	if err := <-done; err != nil {
		t.Fatalf("first capture error: %v", err)
	}

	// Adapter is free again once the first capture finishes.
	if _, err := capture(t, adapter, "Spanish"); err != nil {
		t.Fatalf("capture after release error: %v", err)
	}
}

func TestCaptureTimesOut(t *testing.T) {
	engine := &fakeEngine{text: "ok", block: make(chan struct{})}
	adapter := newTestAdapter(engine)
	adapter.window = 20 * time.Millisecond

	_, err := capture(t, adapter, "Spanish")
	if !errors.Is(err, ErrTimedOut) {
		t.Fatalf("error = %v, want ErrTimedOut", err)
	}
}

func TestCaptureEmptyTranscriptIsNoSpeech(t *testing.T) {
	engine := &fakeEngine{text: "   "}
	adapter := newTestAdapter(engine)

	_, err := capture(t, adapter, "Spanish")
	if !errors.Is(err, ErrNoSpeech) {
		t.Fatalf("error = %v, want ErrNoSpeech", err)
	}
}

func TestCaptureEnginePassthroughErrors(t *testing.T) {
	engine := &fakeEngine{err: ErrPermissionDenied}
	adapter := newTestAdapter(engine)

	_, err := capture(t, adapter, "Spanish")
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("error = %v, want ErrPermissionDenied", err)
	}
	if len(engine.seen()) != 1 {
		t.Fatalf("engine calls = %d, want 1 (no retry)", len(engine.seen()))
	}
}

func TestCaptureFillsLanguageWhenEngineOmitsIt(t *testing.T) {
	engine := &fakeEngine{text: "kumusta"}
	adapter := newTestAdapter(engine)

	transcript, err := capture(t, adapter, "Filipino/Tagalog")
	if err != nil {
		t.Fatalf("capture error: %v", err)
	}
	if transcript.Language != "fil-PH" {
		t.Fatalf("language = %q, want fil-PH", transcript.Language)
	}
}
