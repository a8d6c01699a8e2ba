package stock

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestCatalog(t *testing.T, items ...StockItem) *Catalog {
	t.Helper()
	c := NewCatalog(sequence("item"), ticker())
	for _, it := range items {
		if _, err := c.Create(it); err != nil {
			t.Fatalf("Create(%q) failed: %v", it.Title(), err)
		}
	}
	return c
}

func TestCatalog_Create(t *testing.T) {
	c := newTestCatalog(t)
	got, err := c.Create(StockItem{
		ID:       "ignored",
		Company:  Sony,
		Category: TV,
		Name:     "Bravia X75L",
		Specs:    Specs{SpecScreenSize: `55"`},
		Price:    P(61990),
		Stock:    3,
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if got.ID != "item-1" {
		t.Errorf("Create() id = %q, want the generated item-1", got.ID)
	}
	if !got.LastUpdated.Equal(t0) {
		t.Errorf("Create() LastUpdated = %v, want %v", got.LastUpdated, t0)
	}
	stored, err := c.Item("item-1")
	if err != nil {
		t.Fatalf("Item() failed: %v", err)
	}
	if diff := cmp.Diff(got, stored); diff != "" {
		t.Errorf("stored item mismatch (-created +stored):\n%s", diff)
	}

	// Returned items never share their specs with the catalog.
	got.Specs[SpecScreenSize] = `65"`
	if stored, _ := c.Item("item-1"); stored.Specs[SpecScreenSize] != `55"` {
		t.Errorf("catalog specs changed through a returned item: %v", stored.Specs)
	}
}

func TestCatalog_CreateErrors(t *testing.T) {
	valid := StockItem{Company: LG, Category: Fridge, Name: "GL-T292", Price: P(25000), Stock: 1}
	tests := []struct {
		name string
		edit func(*StockItem)
		want error
	}{
		{"unknown company", func(it *StockItem) { it.Company = "Acme" }, ErrInvalidItem},
		{"unknown category", func(it *StockItem) { it.Category = "Drone" }, ErrInvalidItem},
		{"blank name", func(it *StockItem) { it.Name = "  " }, ErrInvalidItem},
		{"negative price", func(it *StockItem) { it.Price = P(-1) }, ErrInvalidPrice},
		{"negative stock", func(it *StockItem) { it.Stock = -1 }, ErrInvalidQuantity},
		{"same identity", func(it *StockItem) { it.Name = "gl-t292" }, ErrIdentityConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCatalog(t, valid)
			it := valid
			tt.edit(&it)
			if _, err := c.Create(it); !errors.Is(err, tt.want) {
				t.Errorf("Create() error = %v, want %v", err, tt.want)
			}
			if c.Len() != 1 {
				t.Errorf("failed Create() changed the catalog, Len() = %d", c.Len())
			}
		})
	}
}

func TestCatalog_FindByIdentity(t *testing.T) {
	c := newTestCatalog(t, StockItem{
		Company:  Whirlpool,
		Category: WashingMachine,
		Name:     "Ace Supreme",
		Specs:    Specs{SpecType: "Semi-Automatic", SpecCapacity: "7 Kg"},
	})
	tests := []struct {
		name     string
		company  Company
		category Category
		model    string
		specs    Specs
		want     bool
	}{
		{"exact", Whirlpool, WashingMachine, "Ace Supreme", Specs{SpecType: "Semi-Automatic", SpecCapacity: "7 Kg"}, true},
		{"name case", Whirlpool, WashingMachine, "ACE supreme", Specs{SpecCapacity: "7 Kg", SpecType: "Semi-Automatic"}, true},
		{"other company", LG, WashingMachine, "Ace Supreme", Specs{SpecType: "Semi-Automatic", SpecCapacity: "7 Kg"}, false},
		{"other category", Whirlpool, Fridge, "Ace Supreme", Specs{SpecType: "Semi-Automatic", SpecCapacity: "7 Kg"}, false},
		{"spec value case", Whirlpool, WashingMachine, "Ace Supreme", Specs{SpecType: "semi-automatic", SpecCapacity: "7 Kg"}, false},
		{"missing spec", Whirlpool, WashingMachine, "Ace Supreme", Specs{SpecType: "Semi-Automatic"}, false},
		{"no specs", Whirlpool, WashingMachine, "Ace Supreme", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := c.FindByIdentity(tt.company, tt.category, tt.model, tt.specs)
			if got != tt.want {
				t.Errorf("FindByIdentity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatalog_AdjustStock(t *testing.T) {
	c := newTestCatalog(t, StockItem{Company: Kent, Category: WaterFilter, Name: "Grand Plus RO", Stock: 4})
	tests := []struct {
		delta int
		want  int
	}{
		{delta: 3, want: 7},
		{delta: -2, want: 5},
		{delta: -10, want: 0}, // clamped
		{delta: 1, want: 1},
	}
	for _, tt := range tests {
		got, err := c.AdjustStock("item-1", tt.delta)
		if err != nil {
			t.Fatalf("AdjustStock(%d) failed: %v", tt.delta, err)
		}
		if got.Stock != tt.want {
			t.Errorf("AdjustStock(%d) stock = %d, want %d", tt.delta, got.Stock, tt.want)
		}
	}
	if _, err := c.AdjustStock("unknown", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("AdjustStock(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestCatalog_SetPrice(t *testing.T) {
	c := newTestCatalog(t, StockItem{Company: Bajaj, Category: JuicerMixer, Name: "Rex 500W", Price: P(2499)})
	if _, err := c.SetPrice("item-1", P(-1)); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("SetPrice(-1) error = %v, want ErrInvalidPrice", err)
	}
	got, err := c.SetPrice("item-1", P(2299))
	if err != nil {
		t.Fatalf("SetPrice() failed: %v", err)
	}
	if !got.Price.Equal(P(2299)) {
		t.Errorf("SetPrice() price = %s, want 2299", got.Price)
	}
	if !got.LastUpdated.After(t0) {
		t.Errorf("SetPrice() did not refresh LastUpdated: %v", got.LastUpdated)
	}
}

func TestCatalog_Edit(t *testing.T) {
	small := StockItem{Company: Samsung, Category: TV, Name: "Crystal 4K", Specs: Specs{SpecScreenSize: `43"`}, Price: P(32990), Stock: 8}
	large := StockItem{Company: Samsung, Category: TV, Name: "Crystal 4K", Specs: Specs{SpecScreenSize: `55"`}, Price: P(45990), Stock: 2}

	t.Run("attributes", func(t *testing.T) {
		c := newTestCatalog(t, small, large)
		name, desc := "Crystal 4K Vision", "Slim design"
		got, err := c.Edit("item-1", ItemPatch{Name: &name, Description: &desc})
		if err != nil {
			t.Fatalf("Edit() failed: %v", err)
		}
		if got.Name != name || got.Description != desc || got.Stock != 8 || !got.Price.Equal(P(32990)) {
			t.Errorf("Edit() = %+v", got)
		}
		if _, found := c.FindByIdentity(Samsung, TV, "crystal 4k vision", Specs{SpecScreenSize: `43"`}); !found {
			t.Error("edited identity is not indexed")
		}
		if _, found := c.FindByIdentity(Samsung, TV, "Crystal 4K", Specs{SpecScreenSize: `43"`}); found {
			t.Error("previous identity is still indexed")
		}
	})

	t.Run("into another item", func(t *testing.T) {
		c := newTestCatalog(t, small, large)
		specs := Specs{SpecScreenSize: `55"`}
		if _, err := c.Edit("item-1", ItemPatch{Specs: &specs}); !errors.Is(err, ErrIdentityConflict) {
			t.Errorf("Edit() error = %v, want ErrIdentityConflict", err)
		}
		if diff := cmp.Diff([]int{8, 2}, []int{c.Items()[0].Stock, c.Items()[1].Stock}); diff != "" {
			t.Errorf("failed Edit() changed stock (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		c := newTestCatalog(t, small)
		blank := ""
		if _, err := c.Edit("item-1", ItemPatch{Name: &blank}); !errors.Is(err, ErrInvalidItem) {
			t.Errorf("Edit() error = %v, want ErrInvalidItem", err)
		}
		if _, err := c.Edit("unknown", ItemPatch{Name: &blank}); !errors.Is(err, ErrNotFound) {
			t.Errorf("Edit(unknown) error = %v, want ErrNotFound", err)
		}
	})
}

func TestCatalog_Remove(t *testing.T) {
	c := newTestCatalog(t,
		StockItem{Company: Voltas, Category: AC, Name: "Vectra", Specs: Specs{SpecTonnage: "1.5 Ton"}},
		StockItem{Company: Daikin, Category: AC, Name: "FTKM", Specs: Specs{SpecTonnage: "1.0 Ton"}},
		StockItem{Company: Usha, Category: WaterHeater, Name: "Misty"},
	)
	if err := c.Remove("item-2"); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	var ids []string
	for it := range c.All() {
		ids = append(ids, it.ID)
	}
	if diff := cmp.Diff([]string{"item-1", "item-3"}, ids); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	if _, err := c.Item("item-3"); err != nil {
		t.Errorf("Item(item-3) after a removal failed: %v", err)
	}
	if err := c.Remove("item-2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove() error = %v, want ErrNotFound", err)
	}
	// The identity is free again.
	if _, err := c.Create(StockItem{Company: Daikin, Category: AC, Name: "FTKM", Specs: Specs{SpecTonnage: "1.0 Ton"}}); err != nil {
		t.Errorf("Create() of a removed identity failed: %v", err)
	}
}

func TestCatalog_Load(t *testing.T) {
	item := StockItem{ID: "a", Company: Philips, Category: OtherCategory, Name: "Iron", Price: P(999), Stock: 1, LastUpdated: t0}
	tests := []struct {
		name  string
		items []StockItem
		want  error
	}{
		{"duplicated id", []StockItem{item, item}, ErrIdentityConflict},
		{"shared identity", []StockItem{item, func() StockItem { it := item; it.ID = "b"; return it }()}, ErrIdentityConflict},
		{"missing id", []StockItem{func() StockItem { it := item; it.ID = ""; return it }()}, ErrInvalidItem},
		{"negative stock", []StockItem{func() StockItem { it := item; it.Stock = -2; return it }()}, ErrInvalidQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewCatalog(nil, nil).load(tt.items...); !errors.Is(err, tt.want) {
				t.Errorf("load() error = %v, want %v", err, tt.want)
			}
		})
	}

	c := NewCatalog(nil, nil)
	if err := c.load(item); err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	got, _ := c.Item("a")
	if diff := cmp.Diff(item, got); diff != "" {
		t.Errorf("loaded item mismatch (-want +got):\n%s", diff)
	}
}
