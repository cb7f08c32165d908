package miniserver

import (
	"context"
	"regexp"
	"strings"
)

const statsDirectory = "stats/"

// The stats directory listing is line-oriented pseudo-HTML with one anchor
// per file, e.g. <a href="abcd-1234.xml">Living Room 1</a>.
var (
	anchorPattern = regexp.MustCompile(`<a href="(.*)">(.*)</a>`)
	suffixPattern = regexp.MustCompile(`\s*\d+$`)
)

// HistoryFile is one entry of the stats directory listing.
type HistoryFile struct {
	Path  string
	Title string
}

// SensorName is the file's display name: the title with its trailing
// numeric suffix stripped.
func (f HistoryFile) SensorName() string {
	return suffixPattern.ReplaceAllString(f.Title, "")
}

// Sensor is one deduplicated listing entry.
type Sensor struct {
	Id   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Sensors deduplicates a listing by sensor identifier, keeping the first
// entry's display name, in listing order. Files whose path holds no
// identifier are left out.
func Sensors(files []HistoryFile) []Sensor {
	seen := make(map[string]bool, len(files))
	var sensors []Sensor

	for _, file := range files {
		id, err := ExtractIdentifier(file.Path)
		if err != nil || seen[id] {
			continue
		}
		seen[id] = true
		sensors = append(sensors, Sensor{Id: id, Name: file.SensorName()})
	}

	return sensors
}

// ListFiles fetches the stats directory listing and returns its entries in
// server order. A listing failure is not retried; it points at a
// connectivity problem the operator has to look at.
func (c *Client) ListFiles(ctx context.Context) ([]HistoryFile, error) {
	body, err := c.Fetch(ctx, statsDirectory)
	if err != nil {
		return nil, err
	}

	var files []HistoryFile

	for _, line := range strings.Split(string(body), "\n") {
		match := anchorPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		files = append(files, HistoryFile{Path: match[1], Title: match[2]})
	}

	return files, nil
}
