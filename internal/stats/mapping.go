package stats

// MappingEntry describes where the samples of one sensor go: the destination
// measurement, an optional tag set, and an optional raw-attribute to
// field-name mapping.
type MappingEntry struct {
	Measurement string            `mapstructure:"measurement" json:"measurement"`
	Tags        map[string]string `mapstructure:"tags" json:"tags,omitempty"`
	Values      map[string]string `mapstructure:"values" json:"values,omitempty"`
}

// DefaultValues is the attribute mapping used when an entry declares none:
// the Miniserver's single value attribute V lands in the "value" field.
var DefaultValues = map[string]string{"V": "value"}

// Resolve looks up the mapping for a sensor identifier. The second return
// is false when the identifier is not mapped, which is a routine condition
// (sensor not yet configured), not an error. The returned entry always has
// a non-empty Values mapping.
func Resolve(id string, table map[string]MappingEntry) (MappingEntry, bool) {
	entry, ok := table[id]
	if !ok {
		return MappingEntry{}, false
	}
	if len(entry.Values) == 0 {
		entry.Values = DefaultValues
	}
	return entry, true
}
