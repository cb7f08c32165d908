package miniserver

import (
	"errors"
	"fmt"
	"regexp"
)

// Statistics file names start with the sensor's UUID, e.g.
// "0f86a2fe-0378-3912-ffff504f94a03d6e.202306.xml".
var identifierPattern = regexp.MustCompile(`[a-f0-9-]+`)

// ErrNoIdentifier is returned when a file path holds no sensor identifier.
var ErrNoIdentifier = errors.New("no sensor identifier in path")

// ExtractIdentifier returns the sensor identifier embedded in a statistics
// file path: the first run of hex digits and hyphens.
func ExtractIdentifier(path string) (string, error) {
	id := identifierPattern.FindString(path)
	if id == "" {
		return "", fmt.Errorf("%w: %q", ErrNoIdentifier, path)
	}
	return id, nil
}
