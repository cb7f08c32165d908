// Package influx writes points into InfluxDB 1.x.
package influx

import (
	"context"
	"fmt"
	"time"

	"github.com/Programie/LoxoneStats2InfluxDB/internal/stats"

	client "github.com/influxdata/influxdb1-client/v2"
)

// writeTimeout bounds a single write attempt so a wedged connection cannot
// stall the importer past the retry interval for long.
const writeTimeout = 30 * time.Second

type Config struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

type Writer struct {
	client   client.Client
	database string
}

func NewWriter(config Config) (*Writer, error) {
	c, err := client.NewHTTPClient(client.HTTPConfig{
		Addr:     fmt.Sprintf("http://%s:%d", config.Host, config.Port),
		Username: config.Username,
		Password: config.Password,
		Timeout:  writeTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create influxdb client: %w", err)
	}

	return &Writer{client: c, database: config.Database}, nil
}

// WritePoints writes one file's points as a single batch: either the whole
// batch lands or the call fails and the file is retried.
func (w *Writer) WritePoints(ctx context.Context, points []stats.Point) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	batch, err := client.NewBatchPoints(client.BatchPointsConfig{
		Database:  w.database,
		Precision: "s",
	})
	if err != nil {
		return fmt.Errorf("failed to create batch: %w", err)
	}

	for _, p := range points {
		fields := make(map[string]interface{}, len(p.Fields))
		for name, value := range p.Fields {
			fields[name] = value
		}

		point, err := client.NewPoint(p.Measurement, p.Tags, fields, p.Time)
		if err != nil {
			return fmt.Errorf("failed to build point: %w", err)
		}
		batch.AddPoint(point)
	}

	// The client's Write has no context parameter, so it runs on its own
	// goroutine and cancellation returns early. The client timeout bounds
	// the abandoned attempt.
	done := make(chan error, 1)
	go func() {
		done <- w.client.Write(batch)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to write points: %w", err)
		}
	}

	return nil
}

func (w *Writer) Close() error {
	return w.client.Close()
}
