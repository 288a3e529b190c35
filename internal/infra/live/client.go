// Package live is a client for the Gemini Live bidirectional audio API.
package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"guardian/config"
	"guardian/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultEndpoint      = "wss://generativelanguage.googleapis.com/ws/google.ai.generativelanguage.v1beta.GenerativeService.BidiGenerateContent"
	defaultSendQueueSize = 64
	defaultSetupTimeout  = 10 * time.Second
	writeWait            = 10 * time.Second
	closeGracePeriod     = time.Second
	messageBufferSize    = 16
)

// ErrMissingAPIKey is returned by Dial when no API key is configured.
var ErrMissingAPIKey = errors.New("live session api key is not configured")

// Params defines the dependencies of the live session dialer.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Dialer opens live sessions over a websocket.
type Dialer struct {
	endpoint      string
	apiKey        string
	sendQueueSize int
	setupTimeout  time.Duration
	ws            *websocket.Dialer
	logger        *slog.Logger
}

// NewDialer creates a new live session dialer.
func NewDialer(params Params) service.LiveSessionDialer {
	d := &Dialer{
		endpoint:      defaultEndpoint,
		sendQueueSize: defaultSendQueueSize,
		setupTimeout:  defaultSetupTimeout,
		ws:            websocket.DefaultDialer,
		logger:        params.Logger,
	}

	if cfg := params.Config.Voice; cfg != nil {
		d.apiKey = cfg.APIKey
		if cfg.Endpoint != "" {
			d.endpoint = cfg.Endpoint
		}
		if cfg.SendQueueSize > 0 {
			d.sendQueueSize = cfg.SendQueueSize
		}
		if cfg.SetupTimeout > 0 {
			d.setupTimeout = cfg.SetupTimeout
		}
	}

	return d
}

// Dial connects, sends the setup message and waits for the server to acknowledge it.
func (d *Dialer) Dial(ctx context.Context, cfg service.LiveSessionConfig) (service.LiveSession, error) {
	if d.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	endpoint, err := url.Parse(d.endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "invalid live endpoint")
	}
	query := endpoint.Query()
	query.Set("key", d.apiKey)
	endpoint.RawQuery = query.Encode()

	conn, resp, err := d.ws.DialContext(ctx, endpoint.String(), nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if resp != nil && resp.StatusCode != http.StatusSwitchingProtocols {
			return nil, errors.Wrapf(err, "live session handshake failed with status %d", resp.StatusCode)
		}

		return nil, errors.Wrap(err, "failed to dial live session")
	}

	if err := d.handshake(ctx, conn, cfg); err != nil {
		_ = conn.Close()

		return nil, err
	}

	s := &session{
		conn:     conn,
		send:     make(chan []byte, d.sendQueueSize),
		messages: make(chan service.LiveMessage, messageBufferSize),
		done:     make(chan struct{}),
		logger:   d.logger,
	}

	go s.writePump()
	go s.readPump()

	return s, nil
}

func (d *Dialer) handshake(ctx context.Context, conn *websocket.Conn, cfg service.LiveSessionConfig) error {
	model := cfg.Model
	if !strings.HasPrefix(model, "models/") {
		model = "models/" + model
	}

	setup := clientSetup{Setup: setupPayload{Model: model}}
	if len(cfg.ResponseModalities) > 0 {
		setup.Setup.GenerationConfig = &generationConfig{ResponseModalities: cfg.ResponseModalities}
	}
	if cfg.SystemInstruction != "" {
		setup.Setup.SystemInstruction = &content{Parts: []part{{Text: cfg.SystemInstruction}}}
	}
	if cfg.InputAudioTranscription {
		setup.Setup.InputAudioTranscription = &struct{}{}
	}

	deadline := time.Now().Add(d.setupTimeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	_ = conn.SetWriteDeadline(deadline)
	if err := conn.WriteJSON(setup); err != nil {
		return errors.Wrap(err, "failed to send live session setup")
	}

	_ = conn.SetReadDeadline(deadline)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return errors.Wrap(err, "live session setup not acknowledged")
		}

		var msg serverMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return errors.Wrap(err, "malformed live session setup reply")
		}
		if msg.SetupComplete != nil {
			break
		}
	}

	_ = conn.SetReadDeadline(time.Time{})
	_ = conn.SetWriteDeadline(time.Time{})

	return nil
}

// session implements service.LiveSession.
type session struct {
	conn     *websocket.Conn
	send     chan []byte
	messages chan service.LiveMessage
	done     chan struct{}
	logger   *slog.Logger

	closeOnce sync.Once
	mu        sync.Mutex
	err       error
}

func (s *session) SendAudio(chunk service.AudioChunk) error {
	data, err := json.Marshal(clientRealtimeInput{
		RealtimeInput: realtimeInput{Audio: &inlineBlob{Data: chunk.Data, MimeType: chunk.MimeType}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode audio chunk")
	}

	select {
	case <-s.done:
		return service.ErrSessionClosed
	default:
	}

	select {
	case s.send <- data:
		return nil
	case <-s.done:
		return service.ErrSessionClosed
	default:
		return service.ErrSendQueueFull
	}
}

func (s *session) Messages() <-chan service.LiveMessage {
	return s.messages
}

func (s *session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

func (s *session) Close() error {
	s.shutdown()

	return nil
}

func (s *session) shutdown() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

func (s *session) fail(err error) {
	select {
	case <-s.done:
		return
	default:
	}

	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.mu.Unlock()

	s.shutdown()
}

// writePump is the only writer of the connection, so frames leave in submission order.
func (s *session) writePump() {
	defer s.conn.Close()

	for {
		select {
		case <-s.done:
			_ = s.conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(closeGracePeriod),
			)

			return
		case data := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				s.fail(errors.Wrap(err, "failed to write to live session"))

				return
			}
		}
	}
}

func (s *session) readPump() {
	defer close(s.messages)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				s.fail(errors.New("live session closed by server"))
			} else {
				s.fail(errors.Wrap(err, "live session read failed"))
			}

			return
		}

		var msg serverMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Warn("Ignoring malformed live message", slog.Any("error", err))

			continue
		}

		if msg.GoAway != nil {
			s.logger.Warn("Live session going away", slog.String("timeLeft", msg.GoAway.TimeLeft))
		}

		out, ok := toLiveMessage(msg.ServerContent)
		if !ok {
			continue
		}

		select {
		case s.messages <- out:
		case <-s.done:
			return
		}
	}
}

func toLiveMessage(sc *serverContent) (service.LiveMessage, bool) {
	if sc == nil {
		return service.LiveMessage{}, false
	}

	var out service.LiveMessage
	if sc.InputTranscription != nil {
		out.InputTranscription = sc.InputTranscription.Text
	}
	if sc.ModelTurn != nil {
		var text strings.Builder
		for _, p := range sc.ModelTurn.Parts {
			text.WriteString(p.Text)
		}
		out.ModelText = text.String()
	}
	out.TurnComplete = sc.TurnComplete

	if out.InputTranscription == "" && out.ModelText == "" && !out.TurnComplete {
		return service.LiveMessage{}, false
	}

	return out, true
}
