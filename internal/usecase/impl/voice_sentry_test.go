package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"
	mockSvc "guardian/internal/mocks/service"
	mockUC "guardian/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type voiceMocks struct {
	dialer     *mockSvc.MockLiveSessionDialer
	capture    *mockSvc.MockAudioCapture
	dispatcher *mockUC.MockDispatcherUsecase
	metrics    *mockSvc.MockMetricsRecorder
}

func newTestVoiceSentry(t *testing.T, apiKey string) (*voiceSentry, *voiceMocks) {
	m := &voiceMocks{
		dialer:     mockSvc.NewMockLiveSessionDialer(t),
		capture:    mockSvc.NewMockAudioCapture(t),
		dispatcher: mockUC.NewMockDispatcherUsecase(t),
		metrics:    mockSvc.NewMockMetricsRecorder(t),
	}

	srv := NewVoiceSentry(VoiceParams{
		Config:      &config.Config{Voice: &config.VoiceConfig{APIKey: apiKey}},
		Dialer:      m.dialer,
		Capture:     m.capture,
		Dispatcher:  m.dispatcher,
		Broadcaster: quietBroadcaster(t),
		Metrics:     m.metrics,
		Logger:      testLogger(),
	}).(*voiceSentry)

	return srv, m
}

// startListening opens a session backed by fakes.
func startListening(t *testing.T, srv *voiceSentry, m *voiceMocks) (*fakeLiveSession, *fakeStream[[]float32]) {
	t.Helper()

	session := newFakeLiveSession()
	mic := newFakeStream[[]float32](4)

	m.dialer.EXPECT().Dial(mock.Anything, service.LiveSessionConfig{
		Model:                   defaultVoiceModel,
		SystemInstruction:       guardianInstruction,
		ResponseModalities:      []string{"AUDIO"},
		InputAudioTranscription: true,
	}).Return(session, nil).Once()
	m.capture.EXPECT().Open(mock.Anything, 16000, 4096).Return(mic, nil).Once()
	m.metrics.EXPECT().VoiceSession(service.VoiceSessionStarted).Once()

	require.NoError(t, srv.Start(context.Background()))

	return session, mic
}

func TestVoiceSentry_Start_WithoutAPIKey(t *testing.T) {
	srv, m := newTestVoiceSentry(t, "")
	m.metrics.EXPECT().VoiceSession(service.VoiceSessionUnavailable).Once()

	err := srv.Start(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrVoiceUnavailable)
	assert.False(t, srv.Snapshot().Listening)
}

func TestVoiceSentry_StreamsAudio(t *testing.T) {
	srv, m := newTestVoiceSentry(t, "key")
	session, mic := startListening(t, srv, m)

	assert.True(t, srv.Snapshot().Listening)

	mic.ch <- []float32{0, 0.5, -0.5}

	eventually(t, func() bool { return len(session.sentChunks()) == 1 }, "frame was not sent")
	chunk := session.sentChunks()[0]
	assert.Equal(t, "audio/pcm;rate=16000", chunk.MimeType)
	assert.NotEmpty(t, chunk.Data)

	srv.Stop()
}

func TestVoiceSentry_Start_AlreadyListening(t *testing.T) {
	srv, m := newTestVoiceSentry(t, "key")
	startListening(t, srv, m)

	require.NoError(t, srv.Start(context.Background()))

	srv.Stop()
}

func TestVoiceSentry_DistressKeywordTriggersVoiceAlert(t *testing.T) {
	tests := []struct {
		name          string
		transcription string
		trigger       bool
	}{
		{name: "help", transcription: "please help me", trigger: true},
		{name: "uppercase sos", transcription: "SOS", trigger: true},
		{name: "police inside a sentence", transcription: "call the Police now", trigger: true},
		{name: "stop as substring", transcription: "don't stop believing", trigger: true},
		{name: "calm speech", transcription: "what a nice day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestVoiceSentry(t, "key")
			session, _ := startListening(t, srv, m)

			triggered := make(chan struct{}, 1)
			if tt.trigger {
				m.dispatcher.EXPECT().TriggerSOS(mock.Anything, entity.AlertTypeVoice).
					Run(func(context.Context, entity.AlertType) { triggered <- struct{}{} }).
					Return(&entity.AlertLogEntry{}, true).Once()
			}

			session.messages <- service.LiveMessage{InputTranscription: tt.transcription}

			eventually(t, func() bool { return srv.Snapshot().Transcription == tt.transcription }, "transcription not recorded")
			if tt.trigger {
				select {
				case <-triggered:
				case <-time.After(2 * time.Second):
					t.Fatal("voice alert was not requested")
				}
			}

			srv.Stop()
		})
	}
}

func TestVoiceSentry_ModelDangerSentinelTriggers(t *testing.T) {
	srv, m := newTestVoiceSentry(t, "key")
	session, _ := startListening(t, srv, m)

	triggered := make(chan struct{}, 1)
	m.dispatcher.EXPECT().TriggerSOS(mock.Anything, entity.AlertTypeVoice).
		Run(func(context.Context, entity.AlertType) { triggered <- struct{}{} }).
		Return(&entity.AlertLogEntry{}, true).Once()

	session.messages <- service.LiveMessage{ModelText: "[DANGER_DETECTED]", TurnComplete: true}

	select {
	case <-triggered:
	case <-time.After(2 * time.Second):
		t.Fatal("voice alert was not requested")
	}

	srv.Stop()
}

func TestVoiceSentry_Stop(t *testing.T) {
	srv, m := newTestVoiceSentry(t, "key")
	session, mic := startListening(t, srv, m)

	srv.Stop()

	snapshot := srv.Snapshot()
	assert.False(t, snapshot.Listening)
	assert.Empty(t, snapshot.Transcription)
	assert.True(t, session.isClosed())
	assert.True(t, mic.isClosed())

	srv.Stop()
}

func TestVoiceSentry_SessionDropGoesOffline(t *testing.T) {
	srv, m := newTestVoiceSentry(t, "key")
	session, mic := startListening(t, srv, m)

	session.drop(errors.New("connection reset"))

	eventually(t, func() bool { return !srv.Snapshot().Listening }, "sentry stayed online")
	assert.True(t, mic.isClosed())
}

func TestVoiceSentry_Start_DialFailure(t *testing.T) {
	srv, m := newTestVoiceSentry(t, "key")
	m.dialer.EXPECT().Dial(mock.Anything, mock.Anything).Return(nil, errors.New("handshake failed"))
	m.metrics.EXPECT().VoiceSession(service.VoiceSessionFailed).Once()

	err := srv.Start(context.Background())

	assert.ErrorContains(t, err, "handshake failed")
	assert.False(t, srv.Snapshot().Listening)
}

func TestVoiceSentry_Start_MicrophoneFailureClosesSession(t *testing.T) {
	srv, m := newTestVoiceSentry(t, "key")
	session := newFakeLiveSession()
	m.dialer.EXPECT().Dial(mock.Anything, mock.Anything).Return(session, nil)
	m.capture.EXPECT().Open(mock.Anything, 16000, 4096).Return(nil, errors.New("permission denied"))
	m.metrics.EXPECT().VoiceSession(service.VoiceSessionFailed).Once()

	err := srv.Start(context.Background())

	assert.ErrorContains(t, err, "permission denied")
	assert.True(t, session.isClosed())
	assert.False(t, srv.Snapshot().Listening)
}

func TestVoiceSentry_StopWhileConnecting(t *testing.T) {
	srv, m := newTestVoiceSentry(t, "key")
	session := newFakeLiveSession()
	mic := newFakeStream[[]float32](1)

	m.dialer.EXPECT().Dial(mock.Anything, mock.Anything).
		Run(func(context.Context, service.LiveSessionConfig) { srv.Stop() }).
		Return(session, nil)
	m.capture.EXPECT().Open(mock.Anything, 16000, 4096).Return(mic, nil)

	require.NoError(t, srv.Start(context.Background()))

	assert.False(t, srv.Snapshot().Listening)
	assert.True(t, session.isClosed())
	assert.True(t, mic.isClosed())
}

func TestContainsDistressKeyword(t *testing.T) {
	assert.True(t, containsDistressKeyword("HeLp"))
	assert.False(t, containsDistressKeyword(""))
	assert.False(t, containsDistressKeyword("hello there"))
}
