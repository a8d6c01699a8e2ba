package stock

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"TV", TV, false},
		{"tv", TV, false},
		{" washing machine ", WashingMachine, false},
		{"Microwave Oven", Microwave, false},
		{"other", OtherCategory, false},
		{"Drone", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, %v, want %q", tt.input, got, err, tt.want)
		}
		if err != nil && !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("ParseCategory(%q) error = %v, want ErrUnknownCategory", tt.input, err)
		}
	}
}

func TestParseCompany(t *testing.T) {
	for _, c := range Companies() {
		if got, err := ParseCompany(string(c)); err != nil || got != c {
			t.Errorf("ParseCompany(%q) = %q, %v", c, got, err)
		}
	}
	if got, err := ParseCompany("lg"); err != nil || got != LG {
		t.Errorf("ParseCompany(lg) = %q, %v, want LG", got, err)
	}
	if _, err := ParseCompany("Acme"); !errors.Is(err, ErrUnknownCompany) {
		t.Errorf("ParseCompany(Acme) error = %v, want ErrUnknownCompany", err)
	}
}

func TestEnumerations(t *testing.T) {
	if n := len(Categories()); n != 12 {
		t.Errorf("there are %d categories, want 12", n)
	}
	if n := len(Companies()); n != 12 {
		t.Errorf("there are %d companies, want 12", n)
	}
	if Categories()[0] != TV || Companies()[0] != Samsung {
		t.Error("enumeration order changed")
	}
	if Category("tv").Valid() || !Transformer.Valid() {
		t.Error("Category.Valid() is not exact")
	}
}

func TestIdentityKey(t *testing.T) {
	base := NewIdentityKey(Samsung, TV, "Crystal 4K", Specs{SpecScreenSize: `43"`})
	tests := []struct {
		name string
		key  IdentityKey
		same bool
	}{
		{"name case", NewIdentityKey(Samsung, TV, "CRYSTAL 4k", Specs{SpecScreenSize: `43"`}), true},
		{"other spec value", NewIdentityKey(Samsung, TV, "Crystal 4K", Specs{SpecScreenSize: `55"`}), false},
		{"extra spec", NewIdentityKey(Samsung, TV, "Crystal 4K", Specs{SpecScreenSize: `43"`, "panel": "QLED"}), false},
		{"no spec", NewIdentityKey(Samsung, TV, "Crystal 4K", nil), false},
		{"other company", NewIdentityKey(LG, TV, "Crystal 4K", Specs{SpecScreenSize: `43"`}), false},
	}
	for _, tt := range tests {
		if got := tt.key == base; got != tt.same {
			t.Errorf("%s: same identity = %v, want %v", tt.name, got, tt.same)
		}
	}

	// Printable values cannot forge another set of specs.
	a := NewIdentityKey(Kent, WaterFilter, "RO", Specs{"a": "1", "b": "2"})
	b := NewIdentityKey(Kent, WaterFilter, "RO", Specs{"a": "1, b: 2"})
	if a == b {
		t.Error("forged specs share an identity")
	}
	if NewIdentityKey(Kent, WaterFilter, "RO", nil) != NewIdentityKey(Kent, WaterFilter, "RO", Specs{}) {
		t.Error("nil and empty specs should share an identity")
	}
}

func TestSpecs(t *testing.T) {
	s := Specs{SpecType: "Fully-Automatic", SpecCapacity: "8 Kg"}
	if got, want := s.String(), "capacity: 8 Kg, type: Fully-Automatic"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !s.Equal(s.Clone()) || Specs(nil).Clone() != nil || !Specs(nil).Equal(Specs{}) {
		t.Error("Clone() and Equal() disagree")
	}
}

func TestStockItem_Value(t *testing.T) {
	it := StockItem{Company: Sony, Name: "Bravia", Price: P(61990), Stock: 3}
	if !it.Value().Equal(P(185970)) {
		t.Errorf("Value() = %s, want 185970", it.Value())
	}
	if it.Title() != "Sony Bravia" {
		t.Errorf("Title() = %q", it.Title())
	}
}
