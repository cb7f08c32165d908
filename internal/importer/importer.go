// Package importer drives the import of Miniserver statistics files into
// the destination store, one file at a time, in listing order.
package importer

import (
	"context"
	"errors"
	"time"

	"github.com/Programie/LoxoneStats2InfluxDB/internal/stats"
	"github.com/Programie/LoxoneStats2InfluxDB/pkg/miniserver"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-logr/logr"
)

const DefaultRetryInterval = 10 * time.Second

// Fetcher downloads one statistics file from the controller.
type Fetcher interface {
	FetchStats(ctx context.Context, path string) ([]byte, error)
}

// Writer writes one file's points as a single atomic batch.
type Writer interface {
	WritePoints(ctx context.Context, points []stats.Point) error
}

type Importer struct {
	Log      logr.Logger
	Fetcher  Fetcher
	Writer   Writer
	StatsMap map[string]stats.MappingEntry

	// RetryInterval overrides the delay between attempts for one file.
	// Zero means DefaultRetryInterval.
	RetryInterval time.Duration
}

// ImportAll imports every listed file in order. Unmapped sensors and
// malformed files are logged and skipped; transient fetch or write failures
// are retried until they succeed. Only cancellation stops the run early.
func (i *Importer) ImportAll(ctx context.Context, files []miniserver.HistoryFile) error {
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		i.Log.Info("Next file", "file", file.Path)

		id, err := miniserver.ExtractIdentifier(file.Path)
		if err != nil {
			i.Log.Error(err, "Skipping file without sensor identifier", "file", file.Path)
			continue
		}

		entry, ok := stats.Resolve(id, i.StatsMap)
		if !ok {
			i.Log.Info("Sensor not mapped, skipping", "id", id)
			continue
		}

		i.Log.Info("Writing values", "measurement", entry.Measurement, "tags", entry.Tags)

		if err := i.importFile(ctx, file, entry); err != nil {
			var malformed *stats.MalformedRecordError
			if errors.As(err, &malformed) {
				i.Log.Error(err, "Skipping malformed file", "file", file.Path)
				continue
			}
			return err
		}
	}

	return nil
}

// importFile runs fetch, transform and write for one file, retrying the
// whole unit on any transient failure at a fixed interval, forever.
// Malformed content is permanent and skips the retry loop; cancellation
// interrupts an in-flight request or a pending delay.
func (i *Importer) importFile(ctx context.Context, file miniserver.HistoryFile, entry stats.MappingEntry) error {
	interval := i.RetryInterval
	if interval <= 0 {
		interval = DefaultRetryInterval
	}

	operation := func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}

		content, err := i.Fetcher.FetchStats(ctx, file.Path)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}

		points, err := stats.Transform(content, entry, i.Log)
		if err != nil {
			return backoff.Permanent(err)
		}

		if err := i.Writer.WritePoints(ctx, points); err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}

		i.Log.Info("Data written", "file", file.Path, "points", len(points))
		return nil
	}

	notify := func(err error, _ time.Duration) {
		i.Log.Error(err, "Import failed, retrying", "file", file.Path, "delay", interval.String())
	}

	policy := backoff.WithContext(backoff.NewConstantBackOff(interval), ctx)

	return backoff.RetryNotify(operation, policy, notify)
}
