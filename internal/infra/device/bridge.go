// Package device bridges the phone's sensors and actuators over a websocket.
// The phone connects once it is logged in and the bridge exposes it through the domain service ports.
package device

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"
	"guardian/internal/infra/audio"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxMessageSize = 256 * 1024
	defaultPingInterval   = 25 * time.Second
	defaultPongWait       = 60 * time.Second
	defaultSendBufferSize = 64
	writeWait             = 10 * time.Second

	watchBufferSize  = 8
	motionBufferSize = 64
	audioBufferSize  = 16
)

// Params defines the dependencies of the device bridge.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type positionResult struct {
	fix *entity.LocationFix
	err error
}

type pendingRequest struct {
	peer *peer
	ch   chan positionResult
}

type watch struct {
	sub  *subscription[service.PositionUpdate]
	opts service.PositionOptions
}

type audioTap struct {
	sub        *subscription[[]float32]
	sampleRate int
	frameSize  int
}

// Bridge multiplexes the connected phone between the sentries.
// Subscriptions outlive connections: they are replayed whenever a phone attaches.
type Bridge struct {
	maxMessageSize int64
	pingInterval   time.Duration
	pongWait       time.Duration
	sendBufferSize int
	logger         *slog.Logger

	mu      sync.Mutex
	active  *peer
	pending map[string]*pendingRequest
	watches map[string]*watch
	motions map[string]*subscription[entity.MotionSample]
	audios  map[string]*audioTap
}

// NewBridge creates the device bridge.
func NewBridge(params Params) *Bridge {
	b := &Bridge{
		maxMessageSize: defaultMaxMessageSize,
		pingInterval:   defaultPingInterval,
		pongWait:       defaultPongWait,
		sendBufferSize: defaultSendBufferSize,
		logger:         params.Logger,
		pending:        make(map[string]*pendingRequest),
		watches:        make(map[string]*watch),
		motions:        make(map[string]*subscription[entity.MotionSample]),
		audios:         make(map[string]*audioTap),
	}

	if cfg := params.Config.Device; cfg != nil {
		if cfg.MaxMessageSize > 0 {
			b.maxMessageSize = cfg.MaxMessageSize
		}
		if cfg.PingInterval > 0 {
			b.pingInterval = cfg.PingInterval
		}
		if cfg.PongWait > 0 {
			b.pongWait = cfg.PongWait
		}
		if cfg.SendBufferSize > 0 {
			b.sendBufferSize = cfg.SendBufferSize
		}
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				b.Shutdown()

				return nil
			},
		})
	}

	return b
}

// Connected reports whether a phone is attached.
func (b *Bridge) Connected() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.active != nil
}

// Attach serves conn until it disconnects or ctx is cancelled. A newer connection replaces an older one.
func (b *Bridge) Attach(ctx context.Context, conn *websocket.Conn) error {
	p := newPeer(conn, b.sendBufferSize)

	b.mu.Lock()
	prev := b.active
	b.active = p
	replay := b.replayLocked()
	b.mu.Unlock()

	if prev != nil {
		b.logger.Info("Replacing device connection")
		prev.stop()
	}

	for _, cmd := range replay {
		b.sendTo(p, cmd)
	}

	go b.writePump(p)
	go func() {
		select {
		case <-ctx.Done():
			p.stop()
		case <-p.done:
		}
	}()

	err := b.readPump(p)

	p.stop()
	b.detach(p)

	return err
}

// Shutdown drops the connection and ends every open subscription.
func (b *Bridge) Shutdown() {
	b.mu.Lock()
	p := b.active
	b.active = nil
	watches, motions, audios := b.watches, b.motions, b.audios
	b.watches = make(map[string]*watch)
	b.motions = make(map[string]*subscription[entity.MotionSample])
	b.audios = make(map[string]*audioTap)
	b.mu.Unlock()

	if p != nil {
		p.stop()
	}
	for _, w := range watches {
		w.sub.end()
	}
	for _, m := range motions {
		m.end()
	}
	for _, a := range audios {
		a.sub.end()
	}
}

func (b *Bridge) detach(p *peer) {
	b.mu.Lock()
	if b.active == p {
		b.active = nil
	}
	var orphaned []*pendingRequest
	for id, req := range b.pending {
		if req.peer == p {
			orphaned = append(orphaned, req)
			delete(b.pending, id)
		}
	}
	b.mu.Unlock()

	for _, req := range orphaned {
		req.ch <- positionResult{err: service.ErrLocationUnavailable}
	}

	b.logger.Info("Device disconnected")
}

func (b *Bridge) replayLocked() []command {
	cmds := make([]command, 0, len(b.watches)+len(b.motions)+len(b.audios))
	for id, w := range b.watches {
		cmds = append(cmds, positionCommand(msgWatchStart, "", id, w.opts))
	}
	for id := range b.motions {
		cmds = append(cmds, command{Type: msgMotionStart, ID: id})
	}
	for id, a := range b.audios {
		cmds = append(cmds, command{Type: msgAudioStart, ID: id, SampleRate: a.sampleRate, FrameSize: a.frameSize})
	}

	return cmds
}

func (b *Bridge) current() *peer {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.active
}

// broadcast sends cmd to the attached phone, if any.
func (b *Bridge) broadcast(cmd command) bool {
	p := b.current()
	if p == nil {
		return false
	}

	return b.sendTo(p, cmd)
}

func (b *Bridge) sendTo(p *peer, cmd command) bool {
	data, err := json.Marshal(cmd)
	if err != nil {
		b.logger.Error("Failed to encode device command", slog.String("type", cmd.Type), slog.Any("error", err))

		return false
	}

	if !p.enqueue(data) {
		b.logger.Warn("Dropping device command", slog.String("type", cmd.Type))

		return false
	}

	return true
}

func (b *Bridge) readPump(p *peer) error {
	p.conn.SetReadLimit(b.maxMessageSize)
	_ = p.conn.SetReadDeadline(time.Now().Add(b.pongWait))
	p.conn.SetPongHandler(func(string) error {
		return p.conn.SetReadDeadline(time.Now().Add(b.pongWait))
	})

	for {
		messageType, data, err := p.conn.ReadMessage()
		if err != nil {
			if p.stopped() || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			return errors.Wrap(err, "device read failed")
		}
		_ = p.conn.SetReadDeadline(time.Now().Add(b.pongWait))

		switch messageType {
		case websocket.BinaryMessage:
			b.dispatchAudio(audio.DecodeFloat32LE(data))
		case websocket.TextMessage:
			b.handleReading(data)
		}
	}
}

func (b *Bridge) writePump(p *peer) {
	ticker := time.NewTicker(b.pingInterval)
	defer func() {
		ticker.Stop()
		_ = p.conn.Close()
	}()

	for {
		select {
		case <-p.done:
			_ = p.conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second),
			)

			return
		case data := <-p.send:
			_ = p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				p.stop()

				return
			}
		case <-ticker.C:
			if err := p.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				p.stop()

				return
			}
		}
	}
}

func (b *Bridge) handleReading(data []byte) {
	var r reading
	if err := json.Unmarshal(data, &r); err != nil {
		b.logger.Warn("Ignoring malformed device message", slog.Any("error", err))

		return
	}

	switch r.Type {
	case msgPosition:
		b.dispatchPosition(&r, positionResult{fix: r.fix()})
	case msgPositionError:
		b.dispatchPosition(&r, positionResult{err: r.positionErr()})
	case msgMotion:
		b.dispatchMotion(r.motionSample())
	case msgHello:
		b.logger.Info("Device attached", slog.String("platform", r.Platform))
	default:
		b.logger.Debug("Ignoring device message", slog.String("type", r.Type))
	}
}

func (b *Bridge) dispatchPosition(r *reading, res positionResult) {
	if r.RequestID != "" {
		b.mu.Lock()
		req, ok := b.pending[r.RequestID]
		delete(b.pending, r.RequestID)
		b.mu.Unlock()

		if ok {
			req.ch <- res
		}

		return
	}

	update := service.PositionUpdate{Fix: res.fix, Err: res.err}

	b.mu.Lock()
	targets := make([]*watch, 0, len(b.watches))
	if w, ok := b.watches[r.ID]; ok {
		targets = append(targets, w)
	} else if r.ID == "" {
		for _, w := range b.watches {
			targets = append(targets, w)
		}
	}
	b.mu.Unlock()

	for _, w := range targets {
		w.sub.deliver(update)
	}
}

func (b *Bridge) dispatchMotion(sample entity.MotionSample) {
	b.mu.Lock()
	targets := make([]*subscription[entity.MotionSample], 0, len(b.motions))
	for _, m := range b.motions {
		targets = append(targets, m)
	}
	b.mu.Unlock()

	for _, m := range targets {
		m.deliver(sample)
	}
}

func (b *Bridge) dispatchAudio(frame []float32) {
	if len(frame) == 0 {
		return
	}

	b.mu.Lock()
	targets := make([]*audioTap, 0, len(b.audios))
	for _, a := range b.audios {
		targets = append(targets, a)
	}
	b.mu.Unlock()

	for _, a := range targets {
		if !a.sub.deliver(frame) {
			b.logger.Debug("Dropping audio frame", slog.Int("samples", len(frame)))
		}
	}
}

// peer is one websocket connection from the phone.
type peer struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func newPeer(conn *websocket.Conn, buffer int) *peer {
	return &peer{
		conn: conn,
		send: make(chan []byte, buffer),
		done: make(chan struct{}),
	}
}

func (p *peer) enqueue(data []byte) bool {
	select {
	case <-p.done:
		return false
	default:
	}

	select {
	case p.send <- data:
		return true
	default:
		return false
	}
}

func (p *peer) stop() {
	p.once.Do(func() { close(p.done) })
}

func (p *peer) stopped() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}
