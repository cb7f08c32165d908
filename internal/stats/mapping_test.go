package stats

import "testing"

func TestResolveNotMapped(t *testing.T) {
	table := map[string]MappingEntry{
		"abcd-1234": {Measurement: "temperature"},
	}

	_, ok := Resolve("ffff-0000", table)
	if ok {
		t.Fatal("expected unmapped identifier to miss")
	}
}

func TestResolveDefaultValues(t *testing.T) {
	table := map[string]MappingEntry{
		"abcd-1234": {Measurement: "temperature"},
	}

	entry, ok := Resolve("abcd-1234", table)
	if !ok {
		t.Fatal("expected identifier to resolve")
	}
	if len(entry.Values) != 1 || entry.Values["V"] != "value" {
		t.Errorf("Values = %v, want default {V: value}", entry.Values)
	}
	if entry.Tags != nil {
		t.Errorf("Tags = %v, want nil", entry.Tags)
	}
}

func TestResolveKeepsExplicitValues(t *testing.T) {
	table := map[string]MappingEntry{
		"abcd-1234": {
			Measurement: "energy",
			Tags:        map[string]string{"room": "kitchen"},
			Values:      map[string]string{"V": "power", "V2": "total"},
		},
	}

	entry, _ := Resolve("abcd-1234", table)
	if entry.Values["V"] != "power" || entry.Values["V2"] != "total" {
		t.Errorf("Values = %v", entry.Values)
	}
	if entry.Tags["room"] != "kitchen" {
		t.Errorf("Tags = %v", entry.Tags)
	}
}
