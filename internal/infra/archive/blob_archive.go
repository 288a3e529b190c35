// Package archive writes incident reports to a gocloud blob bucket.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"

	"guardian/config"
	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

const keyTimeLayout = "20060102T150405Z"

type blobArchive struct {
	bucket *blob.Bucket
	prefix string
	logger *slog.Logger
}

// Params holds dependencies for the incident archive, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket, or returns a no-op archive when none is configured
func New(params Params) (service.IncidentArchive, error) {
	cfg := params.Config.Archive
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Incident archive not configured, reports will not be stored")

		return noopArchive{}, nil
	}

	archive, err := Open(params.Ctx, cfg.BucketURL, cfg.Prefix, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return archive.Close()
		},
	})

	return archive, nil
}

// Open opens a bucket by URL such as "file:///var/lib/guardian" or "mem://"
func Open(ctx context.Context, bucketURL, prefix string, logger *slog.Logger) (service.IncidentArchive, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	logger.Info("Incident archive opened", slog.String("bucket", bucketURL), slog.String("prefix", prefix))

	return &blobArchive{bucket: bucket, prefix: prefix, logger: logger}, nil
}

// Store writes the report as JSON under <prefix>/<raised-at>-<alert id>.json
func (a *blobArchive) Store(ctx context.Context, report *entity.IncidentReport) (string, error) {
	if report == nil || report.Alert == nil {
		return "", errors.New("incident report without alert")
	}

	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	key := Key(a.prefix, report.Alert)
	if err := a.bucket.WriteAll(ctx, key, body, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	a.logger.Debug("Incident report archived", slog.String("key", key))

	return key, nil
}

func (a *blobArchive) Close() error {
	return errors.WithStack(a.bucket.Close())
}

// Key returns the object key of the report for an alert
func Key(prefix string, alert *entity.AlertLogEntry) string {
	name := fmt.Sprintf("%s-%s.json", alert.Timestamp.UTC().Format(keyTimeLayout), alert.ID)
	if prefix == "" {
		return name
	}

	return path.Join(prefix, name)
}

type noopArchive struct{}

func (noopArchive) Store(context.Context, *entity.IncidentReport) (string, error) {
	return "", nil
}

func (noopArchive) Close() error {
	return nil
}

