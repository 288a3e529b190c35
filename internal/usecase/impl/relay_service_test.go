package impl

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"guardian/config"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/service"
	mockSvc "guardian/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRelayService(t *testing.T, tokens []string) (*relayService, *mockSvc.MockNotificationService) {
	notifier := mockSvc.NewMockNotificationService(t)
	cfg := &config.Config{Relay: &config.RelayConfig{CaregiverTokens: tokens}}

	return NewRelayService(cfg, notifier, testLogger()).(*relayService), notifier
}

func testAlertEvent() *service.AlertEvent {
	lat, lng := 40.7128, -74.006

	return &service.AlertEvent{
		AlertID:   "abc123xyz",
		Type:      "FALL",
		Details:   "Alert manually initiated via fall",
		Name:      "Jane Doe",
		Phone:     "5551234567",
		Latitude:  &lat,
		Longitude: &lng,
		RaisedAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRelayService_RelayAlert(t *testing.T) {
	srv, notifier := newTestRelayService(t, []string{"a", "", "b"})

	notifier.EXPECT().PushAlert(
		mock.Anything,
		[]string{"a", "b"},
		&service.CaregiverAlert{
			Title: "SOS: Jane Doe needs help",
			Body:  "Alert manually initiated via fall. Last known location: https://maps.google.com/?q=40.712800,-74.006000",
			Data: map[string]string{
				"alert_id":   "abc123xyz",
				"alert_type": "FALL",
				"raised_at":  "2025-03-01T12:00:00Z",
				"phone":      "5551234567",
				"latitude":   "40.712800",
				"longitude":  "-74.006000",
			},
		},
	).Return(&service.DeliveryReport{Delivered: 1, Failed: 1, InvalidTokens: []string{"b"}}, nil).Once()

	result, err := srv.RelayAlert(context.Background(), testAlertEvent())

	require.NoError(t, err)
	assert.Equal(t, 1, result.Delivered)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []string{"b"}, result.InvalidTokens)
}

func TestRelayService_RelayAlert_Batches(t *testing.T) {
	tokens := make([]string, 0, 1200)
	for i := 0; i < 1200; i++ {
		tokens = append(tokens, fmt.Sprintf("token-%d", i))
	}
	srv, notifier := newTestRelayService(t, tokens)

	for _, size := range []int{500, 500, 200} {
		notifier.EXPECT().PushAlert(
			mock.Anything,
			mock.MatchedBy(func(batch []string) bool { return len(batch) == size }),
			mock.Anything,
		).Return(&service.DeliveryReport{Delivered: size}, nil).Once()
	}

	result, err := srv.RelayAlert(context.Background(), testAlertEvent())

	require.NoError(t, err)
	assert.Equal(t, 1200, result.Delivered)
}

func TestRelayService_RelayAlert_SendFailure(t *testing.T) {
	srv, notifier := newTestRelayService(t, []string{"a"})
	notifier.EXPECT().PushAlert(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("fcm unavailable"))

	result, err := srv.RelayAlert(context.Background(), testAlertEvent())

	assert.ErrorContains(t, err, "fcm unavailable")
	assert.NotNil(t, result)
}

func TestRelayService_RelayAlert_NoTokens(t *testing.T) {
	srv, _ := newTestRelayService(t, nil)

	result, err := srv.RelayAlert(context.Background(), testAlertEvent())

	require.NoError(t, err)
	assert.Zero(t, result.Delivered)
}

func TestRelayService_RelayAlert_InvalidEvent(t *testing.T) {
	srv, _ := newTestRelayService(t, []string{"a"})

	for _, event := range []*service.AlertEvent{nil, {Type: "FALL"}, {AlertID: "x"}} {
		_, err := srv.RelayAlert(context.Background(), event)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAlertEvent)
	}
}

func TestCaregiverAlert_WithoutLocation(t *testing.T) {
	alert := caregiverAlert(&service.AlertEvent{AlertID: "x", Type: "VOICE", Details: "d"})

	assert.Equal(t, "SOS: Your contact needs help", alert.Title)
	assert.Equal(t, "d", alert.Body)
	assert.NotContains(t, alert.Data, "latitude")
	assert.NotContains(t, alert.Data, "phone")
}
