package speech

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"aipolyglot/internal/langs"

	"github.com/rs/zerolog"
)

var (
	// ErrCaptureActive means a capture is already running for this adapter.
	ErrCaptureActive = errors.New("voice capture already active")
	// ErrUnsupported means the engine cannot transcribe the requested language.
	ErrUnsupported = errors.New("speech recognition unsupported for language")
	// ErrPermissionDenied means the caller may not use the audio input.
	ErrPermissionDenied = errors.New("audio input permission denied")
	// ErrNoSpeech means the clip contained no recognizable speech.
	ErrNoSpeech = errors.New("no speech detected")
	// ErrTimedOut means the engine did not finish inside the capture window.
	ErrTimedOut = errors.New("voice capture timed out")
)

// DefaultCaptureWindow bounds a single transcription attempt. Long enough
// for a spoken sentence, short enough that a hung engine frees the adapter.
const DefaultCaptureWindow = 12 * time.Second

// Transcript is the outcome of one capture attempt.
type Transcript struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Capability transcribes one audio clip in one language. Implementations
// must honor ctx cancellation.
type Capability interface {
	StartOnce(ctx context.Context, lang string, audio io.Reader, filename string) (Transcript, error)
}

// Adapter runs captures against a Capability, cycling through the speech
// tags that make sense for each native language. Successive attempts for
// the same native language walk the candidate list round robin, so a user
// whose first attempt was decoded with the wrong language gets the next
// candidate on retry.
type Adapter struct {
	engine Capability
	window time.Duration
	logger zerolog.Logger

	mu      sync.Mutex
	busy    bool
	cursors map[string]int
}

func NewAdapter(engine Capability, logger zerolog.Logger) *Adapter {
	return &Adapter{
		engine:  engine,
		window:  DefaultCaptureWindow,
		logger:  logger,
		cursors: make(map[string]int),
	}
}

// Capture transcribes one clip for a session whose native language is
// nativeLanguage. Only one capture may run at a time; concurrent calls get
// ErrCaptureActive instead of queueing.
func (a *Adapter) Capture(ctx context.Context, nativeLanguage string, audio io.Reader, filename string) (Transcript, error) {
	lang, release, err := a.acquire(nativeLanguage)
	if err != nil {
		return Transcript{}, err
	}
	defer release()

	ctx, cancel := context.WithTimeout(ctx, a.window)
	defer cancel()

	transcript, err := a.engine.StartOnce(ctx, lang, audio, filename)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			a.logger.Warn().Str("lang", lang).Msg("voice capture timed out")
			return Transcript{}, ErrTimedOut
		}
		return Transcript{}, err
	}
	if strings.TrimSpace(transcript.Text) == "" {
		return Transcript{}, ErrNoSpeech
	}
	if transcript.Language == "" {
		transcript.Language = lang
	}
	return transcript, nil
}

// NextLanguage reports which speech tag the next capture for this native
// language will use, without consuming it.
func (a *Adapter) NextLanguage(nativeLanguage string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	candidates := langs.SpeechCandidates(nativeLanguage)
	return candidates[a.cursors[cursorKey(nativeLanguage)]%len(candidates)]
}

func (a *Adapter) acquire(nativeLanguage string) (string, func(), error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.busy {
		return "", nil, ErrCaptureActive
	}
	a.busy = true

	key := cursorKey(nativeLanguage)
	candidates := langs.SpeechCandidates(nativeLanguage)
	lang := candidates[a.cursors[key]%len(candidates)]
	a.cursors[key] = (a.cursors[key] + 1) % len(candidates)

	release := func() {
		a.mu.Lock()
		a.busy = false
		a.mu.Unlock()
	}
	return lang, release, nil
}

func cursorKey(nativeLanguage string) string {
	return strings.ToLower(strings.TrimSpace(nativeLanguage))
}
