package stock

import (
	"slices"
	"strings"
)

// Specification keys used by the schema.
const (
	SpecScreenSize = "screenSize"
	SpecTonnage    = "tonnage"
	SpecCapacity   = "capacity"
	SpecType       = "type"
	SpecLoadType   = "loadType"
)

// SpecField describes one specification attribute asked for a category.
type SpecField struct {
	Key       string   // Key in the item Specs.
	Label     string   // Label is a human readable name.
	Suggested []string // Suggested values, in display order.
	FreeText  bool     // FreeText is true when values outside Suggested are expected.
	// When, if set, restricts the field to items where the spec When[0] has
	// the value When[1].
	When *[2]string
}

// categorySchema is the declarative form of which attributes an item of a
// category carries. The first field is the primary one, when primary is true.
type categorySchema struct {
	primary bool
	fields  []SpecField
}

var schema = map[Category]categorySchema{
	TV: {primary: true, fields: []SpecField{
		{Key: SpecScreenSize, Label: "Screen Size", Suggested: []string{`32"`, `43"`, `50"`, `55"`, `65"`}},
	}},
	AC: {primary: true, fields: []SpecField{
		{Key: SpecTonnage, Label: "Tonnage", Suggested: []string{"0.8 Ton", "1.0 Ton", "1.5 Ton", "2.0 Ton"}},
	}},
	Fridge: {primary: true, fields: []SpecField{
		{Key: SpecCapacity, Label: "Capacity", Suggested: []string{"190 L", "253 L", "300 L", "500 L"}, FreeText: true},
	}},
	WashingMachine: {primary: true, fields: []SpecField{
		{Key: SpecType, Label: "Type", Suggested: []string{"Semi-Automatic", "Fully-Automatic"}},
		{Key: SpecLoadType, Label: "Load Type", Suggested: []string{"Top Load", "Front Load"}, When: &[2]string{SpecType, "Fully-Automatic"}},
		{Key: SpecCapacity, Label: "Capacity", FreeText: true},
	}},
	Inverter: {primary: true, fields: []SpecField{
		{Key: SpecCapacity, Label: "Capacity", Suggested: []string{"900 VA", "1100 VA", "1500 VA"}, FreeText: true},
	}},
	Battery: {primary: true, fields: []SpecField{
		{Key: SpecCapacity, Label: "Capacity", Suggested: []string{"150 Ah", "200 Ah", "220 Ah"}, FreeText: true},
	}},
	Transformer: {primary: true, fields: []SpecField{
		{Key: SpecCapacity, Label: "Capacity", Suggested: []string{"4 KVA (1.5 Ton AC)", "5 KVA (2 Ton AC)", "Mainline"}, FreeText: true},
	}},
}

// PrimarySpecKey returns the attribute that distinguishes variants of a
// category, or false when the category has none.
func PrimarySpecKey(c Category) (string, bool) {
	s, ok := schema[c]
	if !ok || !s.primary || len(s.fields) == 0 {
		return "", false
	}
	return s.fields[0].Key, true
}

// SuggestedValues returns the candidate values of the primary attribute of c.
// It is empty for categories without a primary attribute.
func SuggestedValues(c Category) []string {
	s, ok := schema[c]
	if !ok || !s.primary || len(s.fields) == 0 {
		return nil
	}
	return slices.Clone(s.fields[0].Suggested)
}

// Fields returns every specification attribute of c, primary first.
func Fields(c Category) []SpecField {
	return slices.Clone(schema[c].fields)
}

// NormalizeSpecs returns a cleaned copy of specs for category c: values are
// trimmed, empty values are dropped and conditional fields whose condition
// does not hold are removed. Keys unknown to the schema are kept.
func NormalizeSpecs(c Category, specs Specs) Specs {
	out := make(Specs, len(specs))
	for k, v := range specs {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	for _, f := range schema[c].fields {
		if f.When != nil && out[f.When[0]] != f.When[1] {
			delete(out, f.Key)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
