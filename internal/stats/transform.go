package stats

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

// Statistics files hold one S element per sample, e.g.
// <S T="2023-06-01 12:00:00" V="21.5"/>.
const (
	sampleElement    = "S"
	timeAttribute    = "T"
	sampleTimeLayout = "2006-01-02 15:04:05"
)

// MalformedRecordError reports a statistics file whose records do not have
// the expected shape. One bad record fails the whole file.
type MalformedRecordError struct {
	Attr string
	Err  error
}

func (e *MalformedRecordError) Error() string {
	if e.Attr != "" {
		return fmt.Sprintf("malformed record: attribute %q: %v", e.Attr, e.Err)
	}
	return fmt.Sprintf("malformed record: %v", e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// ParseSampleTime parses a Miniserver sample timestamp. The Miniserver
// emits local wall-clock time with no timezone; the value is taken as UTC
// verbatim, with no DST or zone correction. This is a known approximation
// kept for compatibility with previously imported data.
func ParseSampleTime(s string) (time.Time, error) {
	return time.Parse(sampleTimeLayout, s)
}

// Transform parses a statistics file and converts every sample into a Point
// using the given mapping. The whole file is parsed before anything is
// returned; any missing or non-numeric mapped attribute fails the file.
func Transform(content []byte, mapping MappingEntry, log logr.Logger) ([]Point, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))

	values := mapping.Values
	if len(values) == 0 {
		values = DefaultValues
	}

	var points []Point

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedRecordError{Err: err}
		}

		element, ok := token.(xml.StartElement)
		if !ok || element.Name.Local != sampleElement {
			continue
		}

		// Attribute codes are matched case-insensitively: the config
		// loader folds map keys to lower case while the Miniserver
		// emits them upper case (T, V, ...).
		attrs := make(map[string]string, len(element.Attr))
		for _, attr := range element.Attr {
			attrs[strings.ToUpper(attr.Name.Local)] = attr.Value
		}

		timeString, ok := attrs[timeAttribute]
		if !ok {
			return nil, &MalformedRecordError{Attr: timeAttribute, Err: fmt.Errorf("attribute missing")}
		}
		sampleTime, err := ParseSampleTime(timeString)
		if err != nil {
			return nil, &MalformedRecordError{Attr: timeAttribute, Err: err}
		}

		fields := make(map[string]float64, len(values))
		for attr, field := range values {
			raw, ok := attrs[strings.ToUpper(attr)]
			if !ok {
				return nil, &MalformedRecordError{Attr: attr, Err: fmt.Errorf("attribute missing")}
			}
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, &MalformedRecordError{Attr: attr, Err: err}
			}
			fields[field] = value
		}

		log.V(1).Info("Adding sample", "time", sampleTime.Format(time.RFC3339), "fields", fields)

		points = append(points, Point{
			Measurement: mapping.Measurement,
			Tags:        mapping.Tags,
			Time:        sampleTime,
			Fields:      fields,
		})
	}

	return points, nil
}
