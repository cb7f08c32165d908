package influx

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Programie/LoxoneStats2InfluxDB/internal/stats"
)

func newTestWriter(t *testing.T, handler http.Handler) *Writer {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	host, portString, err := net.SplitHostPort(strings.TrimPrefix(server.URL, "http://"))
	if err != nil {
		t.Fatal(err)
	}
	port, err := strconv.Atoi(portString)
	if err != nil {
		t.Fatal(err)
	}

	writer, err := NewWriter(Config{Host: host, Port: port, Database: "loxone"})
	if err != nil {
		t.Fatalf("NewWriter returned error: %v", err)
	}
	t.Cleanup(func() { writer.Close() })

	return writer
}

func samplePoints() []stats.Point {
	return []stats.Point{{
		Measurement: "temperature",
		Tags:        map[string]string{"room": "living"},
		Time:        time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC),
		Fields:      map[string]float64{"value": 21.5},
	}}
}

func TestWritePoints(t *testing.T) {
	var body string
	writer := newTestWriter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := writer.WritePoints(context.Background(), samplePoints()); err != nil {
		t.Fatalf("WritePoints returned error: %v", err)
	}
	if !strings.Contains(body, "temperature,room=living value=21.5") {
		t.Errorf("body = %q", body)
	}
}

func TestWritePointsServerError(t *testing.T) {
	writer := newTestWriter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "database not found"}`, http.StatusNotFound)
	}))

	if err := writer.WritePoints(context.Background(), samplePoints()); err == nil {
		t.Fatal("expected error for rejected batch")
	}
}

func TestWritePointsCancelledMidWrite(t *testing.T) {
	release := make(chan struct{})
	writer := newTestWriter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := writer.WritePoints(ctx, samplePoints())

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("cancellation took %v, should interrupt the in-flight write", elapsed)
	}
}
