package handler

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"guardian/internal/domain/entity"
	"guardian/internal/infra/events"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeviceLink struct {
	received chan string
}

func (f *fakeDeviceLink) Attach(_ context.Context, conn *websocket.Conn) error {
	_, data, err := conn.ReadMessage()
	if err != nil {
		return err
	}
	f.received <- string(data)

	return conn.WriteMessage(websocket.TextMessage, []byte("ack"))
}

func newStreamTestServer(t *testing.T) (*events.Hub, *fakeDeviceLink, *httptest.Server) {
	hub := events.NewHub(testLogger())
	link := &fakeDeviceLink{received: make(chan string, 1)}
	h := NewStreamHandler(StreamHandlerParams{Events: hub, Device: link, Logger: testLogger()})

	e := newTestEcho()
	e.GET("/events", h.Events)
	e.GET("/device/ws", h.DeviceSocket)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return hub, link, srv
}

func readEvent(t *testing.T, reader *bufio.Reader) []string {
	t.Helper()

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)

		line = strings.TrimRight(line, "\n")
		if line == "" {
			return lines
		}
		lines = append(lines, line)
	}
}

func TestStreamHandler_Events(t *testing.T) {
	hub, _, srv := newStreamTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, 2*time.Second, 5*time.Millisecond)

	hub.Broadcast(entity.StateEvent{Type: entity.StateEventStatus, Payload: entity.SafetyStatusMonitoring})
	hub.Broadcast(entity.StateEvent{Type: entity.StateEventVoice, Payload: entity.VoiceSnapshot{Listening: true}})

	reader := bufio.NewReader(resp.Body)
	assert.Equal(t, []string{"event: status", `data: "MONITORING"`}, readEvent(t, reader))
	assert.Equal(t, []string{"event: voice", `data: {"listening":true,"transcription":""}`}, readEvent(t, reader))

	cancel()
	assert.Eventually(t, func() bool { return hub.Subscribers() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestStreamHandler_DeviceSocket(t *testing.T) {
	_, link, srv := newStreamTestServer(t)

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/device/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"hello"}`)))

	select {
	case got := <-link.received:
		assert.Equal(t, `{"type":"hello"}`, got)
	case <-time.After(2 * time.Second):
		t.Fatal("device bridge did not receive the message")
	}

	_, ack, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "ack", string(ack))
}

func TestStreamHandler_DeviceSocket_PlainRequest(t *testing.T) {
	_, _, srv := newStreamTestServer(t)

	resp, err := http.Get(srv.URL + "/device/ws")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
