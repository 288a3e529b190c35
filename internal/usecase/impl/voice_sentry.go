package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"guardian/config"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"
	"guardian/internal/infra/audio"
	"guardian/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultVoiceModel      = "gemini-2.5-flash-native-audio-preview-09-2025"
	defaultVoiceSampleRate = 16000
	defaultVoiceFrameSize  = 4096

	dangerSentinel = "[DANGER_DETECTED]"
)

// distressKeywords are matched case-insensitively anywhere in the input transcription.
var distressKeywords = []string{"help", "stop", "sos", "police"}

// guardianInstruction keeps the model silent unless it hears danger.
const guardianInstruction = `You are a dedicated Safety Guardian.
Your ONLY job is to listen for signs of physical distress or danger.
SIGNALS TO WATCH FOR:
- Keywords: "Help", "SOS", "Police", "Stop it", "Don't touch me", "Please no".
- Acoustic markers: Screaming, thuds, sounds of struggling, heavy hyperventilation.

BEHAVIOR:
- Remain silent unless danger is detected.
- If you detect high-probability danger, output exactly: "[DANGER_DETECTED]"
- Use the environment sounds to inform your decision.`

// VoiceParams holds the dependencies of the voice sentry, injected by Fx.
type VoiceParams struct {
	fx.In

	Config      *config.Config
	Dialer      service.LiveSessionDialer
	Capture     service.AudioCapture
	Dispatcher  usecase.DispatcherUsecase
	Broadcaster service.StateBroadcaster
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// voiceSentry implements the VoiceUsecase interface.
type voiceSentry struct {
	mu            sync.Mutex
	generation    uint64
	listening     bool
	transcription string
	session       service.LiveSession
	mic           service.Stream[[]float32]

	dialer      service.LiveSessionDialer
	capture     service.AudioCapture
	dispatcher  usecase.DispatcherUsecase
	broadcaster service.StateBroadcaster
	metrics     service.MetricsRecorder
	logger      *slog.Logger

	apiKey     string
	model      string
	sampleRate int
	frameSize  int
}

// NewVoiceSentry is the constructor for voiceSentry.
func NewVoiceSentry(params VoiceParams) usecase.VoiceUsecase {
	srv := &voiceSentry{
		dialer:      params.Dialer,
		capture:     params.Capture,
		dispatcher:  params.Dispatcher,
		broadcaster: params.Broadcaster,
		metrics:     params.Metrics,
		logger:      params.Logger,
		model:       defaultVoiceModel,
		sampleRate:  defaultVoiceSampleRate,
		frameSize:   defaultVoiceFrameSize,
	}

	if cfg := params.Config.Voice; cfg != nil {
		srv.apiKey = cfg.APIKey
		if cfg.Model != "" {
			srv.model = cfg.Model
		}
		if cfg.SampleRate > 0 {
			srv.sampleRate = cfg.SampleRate
		}
		if cfg.FrameSize > 0 {
			srv.frameSize = cfg.FrameSize
		}
	}

	return srv
}

// Start opens the live session and the microphone. It is a no-op while already listening.
func (srv *voiceSentry) Start(ctx context.Context) error {
	if srv.apiKey == "" {
		srv.metrics.VoiceSession(service.VoiceSessionUnavailable)

		return domainerrors.ErrVoiceUnavailable
	}

	srv.mu.Lock()
	if srv.listening {
		srv.mu.Unlock()

		return nil
	}
	srv.generation++
	gen := srv.generation
	srv.listening = true
	srv.mu.Unlock()
	srv.broadcast()

	bg := context.WithoutCancel(ctx)

	session, err := srv.dialer.Dial(ctx, service.LiveSessionConfig{
		Model:                   srv.model,
		SystemInstruction:       guardianInstruction,
		ResponseModalities:      []string{"AUDIO"},
		InputAudioTranscription: true,
	})
	if err != nil {
		srv.metrics.VoiceSession(service.VoiceSessionFailed)
		srv.release(gen)

		return errors.Wrap(err, "failed to open live session")
	}

	mic, err := srv.capture.Open(bg, srv.sampleRate, srv.frameSize)
	if err != nil {
		_ = session.Close()
		srv.metrics.VoiceSession(service.VoiceSessionFailed)
		srv.release(gen)

		return errors.Wrap(err, "failed to open microphone")
	}

	srv.mu.Lock()
	if srv.generation != gen {
		// Stopped while connecting.
		srv.mu.Unlock()
		_ = mic.Close()
		_ = session.Close()

		return nil
	}
	srv.session = session
	srv.mic = mic
	srv.mu.Unlock()

	srv.metrics.VoiceSession(service.VoiceSessionStarted)
	srv.logger.Info("Voice sentry listening", slog.String("model", srv.model))

	go srv.pumpAudio(session, mic)
	go srv.watch(bg, gen, session)

	return nil
}

// pumpAudio submits every captured frame without waiting for earlier sends.
func (srv *voiceSentry) pumpAudio(session service.LiveSession, mic service.Stream[[]float32]) {
	for frame := range mic.C() {
		err := session.SendAudio(audio.Chunk(frame, srv.sampleRate))
		switch {
		case err == nil:
		case errors.Is(err, service.ErrSendQueueFull):
			srv.logger.Debug("Dropping audio frame, send queue full")
		case errors.Is(err, service.ErrSessionClosed):
			return
		default:
			srv.logger.Warn("Failed to send audio frame", slog.Any("error", err))
		}
	}
}

// watch inspects server messages until the session ends, then takes the sentry offline.
func (srv *voiceSentry) watch(ctx context.Context, gen uint64, session service.LiveSession) {
	for msg := range session.Messages() {
		srv.inspect(ctx, gen, msg)
	}

	if err := session.Err(); err != nil {
		srv.logger.Error("Voice sentry session ended", slog.Any("error", err))
	}
	srv.release(gen)
}

func (srv *voiceSentry) inspect(ctx context.Context, gen uint64, msg service.LiveMessage) {
	srv.mu.Lock()
	current := srv.generation == gen
	if current && msg.InputTranscription != "" {
		srv.transcription = msg.InputTranscription
	}
	srv.mu.Unlock()

	if !current {
		return
	}

	if msg.InputTranscription != "" {
		srv.broadcast()

		if containsDistressKeyword(msg.InputTranscription) {
			srv.logger.Warn("Distress keyword heard", slog.String("transcription", msg.InputTranscription))
			srv.dispatcher.TriggerSOS(ctx, entity.AlertTypeVoice)
		}
	}

	if strings.Contains(msg.ModelText, dangerSentinel) {
		srv.logger.Warn("Model reported danger")
		srv.dispatcher.TriggerSOS(ctx, entity.AlertTypeVoice)
	}
}

func containsDistressKeyword(transcription string) bool {
	lower := strings.ToLower(transcription)
	for _, keyword := range distressKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}

// Stop closes the session and the microphone. It is safe to call at any time.
func (srv *voiceSentry) Stop() {
	srv.mu.Lock()
	gen := srv.generation
	srv.mu.Unlock()

	srv.release(gen)
}

// release tears down generation gen. A newer generation is left alone.
func (srv *voiceSentry) release(gen uint64) {
	srv.mu.Lock()
	if srv.generation != gen {
		srv.mu.Unlock()

		return
	}
	srv.generation++
	session, mic := srv.session, srv.mic
	wasListening := srv.listening
	srv.session, srv.mic = nil, nil
	srv.listening = false
	srv.transcription = ""
	srv.mu.Unlock()

	if mic != nil {
		_ = mic.Close()
	}
	if session != nil {
		_ = session.Close()
	}

	if wasListening {
		srv.logger.Info("Voice sentry offline")
		srv.broadcast()
	}
}

func (srv *voiceSentry) Snapshot() entity.VoiceSnapshot {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return entity.VoiceSnapshot{
		Listening:     srv.listening,
		Transcription: srv.transcription,
	}
}

func (srv *voiceSentry) broadcast() {
	srv.broadcaster.Broadcast(entity.StateEvent{Type: entity.StateEventVoice, Payload: srv.Snapshot()})
}
