package miniserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const listingBody = `<html>
<a href="abcd-1234.xml">Living Room 1</a>
<a href="abcd-1234.xml">Living Room 1</a>
<a href="ffff-0000.xml">Kitchen 2</a>
no anchor on this line
</html>`

func newTestServer(t *testing.T, body string, status int) (*httptest.Server, *Client) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok || username != "admin" || password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{
		Host:     strings.TrimPrefix(server.URL, "http://"),
		Username: "admin",
		Password: "secret",
	})

	return server, client
}

func TestListFiles(t *testing.T) {
	_, client := newTestServer(t, listingBody, http.StatusOK)

	files, err := client.ListFiles(context.Background())
	if err != nil {
		t.Fatalf("ListFiles returned error: %v", err)
	}

	want := []HistoryFile{
		{Path: "abcd-1234.xml", Title: "Living Room 1"},
		{Path: "abcd-1234.xml", Title: "Living Room 1"},
		{Path: "ffff-0000.xml", Title: "Kitchen 2"},
	}

	if len(files) != len(want) {
		t.Fatalf("got %d files, want %d", len(files), len(want))
	}
	for i, file := range files {
		if file != want[i] {
			t.Errorf("file %d = %+v, want %+v", i, file, want[i])
		}
	}
}

func TestListFilesBadCredentials(t *testing.T) {
	server, _ := newTestServer(t, listingBody, http.StatusOK)

	client := NewClient(Config{
		Host:     strings.TrimPrefix(server.URL, "http://"),
		Username: "admin",
		Password: "wrong",
	})

	_, err := client.ListFiles(context.Background())
	if err == nil {
		t.Fatal("expected error for bad credentials")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", statusErr.StatusCode, http.StatusUnauthorized)
	}
}

func TestListFilesServerError(t *testing.T) {
	_, client := newTestServer(t, "", http.StatusServiceUnavailable)

	_, err := client.ListFiles(context.Background())

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
}

func TestFetchStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats/abcd-1234.xml" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte("<Statistics/>"))
	}))
	defer server.Close()

	client := NewClient(Config{Host: strings.TrimPrefix(server.URL, "http://")})

	body, err := client.FetchStats(context.Background(), "abcd-1234.xml")
	if err != nil {
		t.Fatalf("FetchStats returned error: %v", err)
	}
	if string(body) != "<Statistics/>" {
		t.Errorf("body = %q", body)
	}
}

func TestSensorName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Living Room 1", "Living Room"},
		{"Kitchen", "Kitchen"},
		{"Office 12", "Office"},
	}

	for _, tt := range tests {
		got := HistoryFile{Title: tt.title}.SensorName()
		if got != tt.want {
			t.Errorf("SensorName(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestSensorsDeduplicates(t *testing.T) {
	files := []HistoryFile{
		{Path: "abcd-1234.xml", Title: "Living Room 1"},
		{Path: "abcd-1234.xml", Title: "Living Room 1"},
		{Path: "ffff-0000.xml", Title: "Kitchen 2"},
		{Path: "STATS.XML", Title: "Skipped"},
	}

	sensors := Sensors(files)

	want := []Sensor{
		{Id: "abcd-1234", Name: "Living Room"},
		{Id: "ffff-0000", Name: "Kitchen"},
	}

	if len(sensors) != len(want) {
		t.Fatalf("got %d sensors, want %d", len(sensors), len(want))
	}
	for i, sensor := range sensors {
		if sensor != want[i] {
			t.Errorf("sensor %d = %+v, want %+v", i, sensor, want[i])
		}
	}
}
