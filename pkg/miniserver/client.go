// Package miniserver talks to the Loxone Miniserver's HTTP interface to
// discover and download per-sensor statistics files.
package miniserver

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Programie/LoxoneStats2InfluxDB/internal/global"
)

// StatusError is returned when the Miniserver answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("miniserver returned status %d for %q", e.StatusCode, e.Path)
}

type Config struct {
	Host     string `mapstructure:"host"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type Client struct {
	config Config
	http   *http.Client
}

func NewClient(config Config) *Client {
	return &Client{
		config: config,
		http:   http.DefaultClient,
	}
}

// Fetch issues an authenticated GET for a server-relative path and returns
// the response body. Cancelling ctx aborts an in-flight request.
func (c *Client) Fetch(ctx context.Context, path string) ([]byte, error) {
	log := global.Logger(ctx)

	requestURL := fmt.Sprintf("http://%s/%s", c.config.Host, path)
	log.V(1).Info("Calling", "method", http.MethodGet, "url", requestURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %q: %w", path, err)
	}
	req.SetBasicAuth(c.config.Username, c.config.Password)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("miniserver request for %q failed: %w", path, err)
	}
	defer res.Body.Close()

	log.V(1).Info("Status code", "code", res.StatusCode, "path", path)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{StatusCode: res.StatusCode, Path: path}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response for %q: %w", path, err)
	}

	return body, nil
}

// FetchStats downloads one statistics file from the stats directory.
func (c *Client) FetchStats(ctx context.Context, path string) ([]byte, error) {
	return c.Fetch(ctx, statsDirectory+path)
}
