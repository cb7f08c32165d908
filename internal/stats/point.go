// Package stats maps raw Miniserver statistics records onto time-series
// points using the operator-supplied stats map.
package stats

import "time"

// Point is one time-series sample ready to be written to the destination
// store. Tags is nil when the mapping declares none.
type Point struct {
	Measurement string
	Tags        map[string]string
	Time        time.Time
	Fields      map[string]float64
}
