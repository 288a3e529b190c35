package live

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"guardian/config"
	"guardian/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	setup  chan clientSetup
	apiKey chan string
}

func newFakeServer(t *testing.T, ack bool, script func(conn *websocket.Conn)) (*fakeServer, *httptest.Server) {
	fs := &fakeServer{
		setup:  make(chan clientSetup, 1),
		apiKey: make(chan string, 1),
	}

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.apiKey <- r.URL.Query().Get("key")

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var setup clientSetup
		if err := conn.ReadJSON(&setup); err != nil {
			return
		}
		fs.setup <- setup

		if !ack {
			time.Sleep(time.Second)

			return
		}

		if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"setupComplete":{}}`)); err != nil {
			return
		}

		script(conn)
	}))
	t.Cleanup(srv.Close)

	return fs, srv
}

func newTestDialer(endpoint, apiKey string) service.LiveSessionDialer {
	cfg := &config.Config{Voice: &config.VoiceConfig{
		APIKey:        apiKey,
		Endpoint:      endpoint,
		SendQueueSize: 4,
		SetupTimeout:  200 * time.Millisecond,
	}}

	return NewDialer(Params{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestDialer_Dial_StreamsAudioAndMessages(t *testing.T) {
	received := make(chan clientRealtimeInput, 1)
	fs, srv := newFakeServer(t, true, func(conn *websocket.Conn) {
		var in clientRealtimeInput
		if err := conn.ReadJSON(&in); err != nil {
			return
		}
		received <- in

		_ = conn.WriteMessage(websocket.BinaryMessage, []byte(`{"serverContent":{"inputTranscription":{"text":"please help me"}}}`))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"serverContent":{"modelTurn":{"parts":[{"text":"[DANGER_"},{"text":"DETECTED]"}]},"turnComplete":true}}`))

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	dialer := newTestDialer(wsURL(srv), "secret")
	session, err := dialer.Dial(context.Background(), service.LiveSessionConfig{
		Model:                   "gemini-test",
		SystemInstruction:       "stay silent",
		ResponseModalities:      []string{"AUDIO"},
		InputAudioTranscription: true,
	})
	require.NoError(t, err)
	defer session.Close()

	assert.Equal(t, "secret", <-fs.apiKey)

	setup := <-fs.setup
	assert.Equal(t, "models/gemini-test", setup.Setup.Model)
	require.NotNil(t, setup.Setup.GenerationConfig)
	assert.Equal(t, []string{"AUDIO"}, setup.Setup.GenerationConfig.ResponseModalities)
	require.NotNil(t, setup.Setup.SystemInstruction)
	assert.Equal(t, "stay silent", setup.Setup.SystemInstruction.Parts[0].Text)
	assert.NotNil(t, setup.Setup.InputAudioTranscription)

	require.NoError(t, session.SendAudio(service.AudioChunk{Data: "AAA=", MimeType: "audio/pcm;rate=16000"}))

	select {
	case in := <-received:
		require.NotNil(t, in.RealtimeInput.Audio)
		assert.Equal(t, "AAA=", in.RealtimeInput.Audio.Data)
		assert.Equal(t, "audio/pcm;rate=16000", in.RealtimeInput.Audio.MimeType)
	case <-time.After(2 * time.Second):
		t.Fatal("audio chunk not received")
	}

	first := receive(t, session.Messages())
	assert.Equal(t, "please help me", first.InputTranscription)

	second := receive(t, session.Messages())
	assert.Equal(t, "[DANGER_DETECTED]", second.ModelText)
	assert.True(t, second.TurnComplete)

	require.NoError(t, session.Close())
	require.NoError(t, session.Close())

	drain(t, session.Messages())
	assert.NoError(t, session.Err())
	assert.ErrorIs(t, session.SendAudio(service.AudioChunk{}), service.ErrSessionClosed)
}

func TestDialer_Dial_ServerDropEndsSession(t *testing.T) {
	_, srv := newFakeServer(t, true, func(conn *websocket.Conn) {
		_ = conn.Close()
	})

	session, err := newTestDialer(wsURL(srv), "secret").Dial(context.Background(), service.LiveSessionConfig{Model: "m"})
	require.NoError(t, err)

	drain(t, session.Messages())
	assert.Error(t, session.Err())
}

func TestDialer_Dial_SetupTimeout(t *testing.T) {
	_, srv := newFakeServer(t, false, nil)

	_, err := newTestDialer(wsURL(srv), "secret").Dial(context.Background(), service.LiveSessionConfig{Model: "m"})
	assert.ErrorContains(t, err, "setup not acknowledged")
}

func TestDialer_Dial_MissingAPIKey(t *testing.T) {
	_, err := newTestDialer("ws://127.0.0.1:1", "").Dial(context.Background(), service.LiveSessionConfig{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestToLiveMessage_SkipsEmptyContent(t *testing.T) {
	_, ok := toLiveMessage(nil)
	assert.False(t, ok)

	_, ok = toLiveMessage(&serverContent{Interrupted: true})
	assert.False(t, ok)

	var sc serverContent
	require.NoError(t, json.Unmarshal([]byte(`{"inputTranscription":{"text":"SOS"}}`), &sc))
	msg, ok := toLiveMessage(&sc)
	assert.True(t, ok)
	assert.Equal(t, "SOS", msg.InputTranscription)
}

func receive(t *testing.T, ch <-chan service.LiveMessage) service.LiveMessage {
	t.Helper()

	select {
	case msg, ok := <-ch:
		require.True(t, ok, "messages channel closed early")

		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for live message")
	}

	return service.LiveMessage{}
}

func drain(t *testing.T, ch <-chan service.LiveMessage) {
	t.Helper()

	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("messages channel was not closed")
		}
	}
}
