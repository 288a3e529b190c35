package archive

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"guardian/config"
	"guardian/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testReport() *entity.IncidentReport {
	return &entity.IncidentReport{
		Alert: &entity.AlertLogEntry{
			ID:        "k3j9x0abc",
			Type:      entity.AlertTypeFall,
			Timestamp: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC),
			Status:    entity.AlertStatusSent,
			Details:   entity.AlertTypeFall.AlertDetails(),
		},
		Profile:  entity.DefaultProfile(),
		Contacts: entity.DefaultContacts(),
	}
}

func TestKey(t *testing.T) {
	alert := testReport().Alert

	assert.Equal(t, "incidents/20240506T070809Z-k3j9x0abc.json", Key("incidents", alert))
	assert.Equal(t, "20240506T070809Z-k3j9x0abc.json", Key("", alert))
}

func TestBlobArchive_Store_FileBucket(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	archive, err := Open(ctx, "file://"+filepath.ToSlash(dir), "incidents", testLogger())
	require.NoError(t, err)
	defer archive.Close()

	key, err := archive.Store(ctx, testReport())
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)

	var stored entity.IncidentReport
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Equal(t, "k3j9x0abc", stored.Alert.ID)
	assert.Equal(t, "Jane Doe", stored.Profile.Name)
	assert.Len(t, stored.Contacts, 2)
}

func TestBlobArchive_Store_RejectsEmptyReport(t *testing.T) {
	archive, err := Open(context.Background(), "mem://", "", testLogger())
	require.NoError(t, err)
	defer archive.Close()

	_, err = archive.Store(context.Background(), &entity.IncidentReport{})
	assert.Error(t, err)
}

func TestNew_NotConfigured(t *testing.T) {
	archive, err := New(Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: testLogger(),
	})
	require.NoError(t, err)

	key, err := archive.Store(context.Background(), testReport())
	require.NoError(t, err)
	assert.Empty(t, key)
}

func TestNew_BadURL(t *testing.T) {
	_, err := New(Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{Archive: &config.ArchiveConfig{BucketURL: "nosuchscheme://x"}},
		Logger: testLogger(),
	})
	assert.Error(t, err)
}
