package stock

import (
	"fmt"
	"slices"
	"strings"
)

// Category classifies stocked items. The value is the display name.
type Category string

// Known categories, in their natural enumeration order.
const (
	TV             Category = "TV"
	Fridge         Category = "Fridge"
	WashingMachine Category = "Washing Machine"
	AC             Category = "AC"
	Inverter       Category = "Inverter"
	Battery        Category = "Battery"
	WaterFilter    Category = "Water Filter"
	JuicerMixer    Category = "Juicer Mixer"
	Transformer    Category = "Transformer"
	Microwave      Category = "Microwave Oven"
	WaterHeater    Category = "Water Heater"
	OtherCategory  Category = "Other"
)

var categories = []Category{
	TV, Fridge, WashingMachine, AC, Inverter, Battery, WaterFilter,
	JuicerMixer, Transformer, Microwave, WaterHeater, OtherCategory,
}

// Categories returns all known categories in enumeration order.
func Categories() []Category { return slices.Clone(categories) }

// Valid reports whether c is a known category.
func (c Category) Valid() bool { return slices.Contains(categories, c) }

func (c Category) String() string { return string(c) }

// ParseCategory parses a category display name, ignoring case.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Company is the brand of a stocked item. The value is the display name.
type Company string

// Known companies, in their natural enumeration order.
const (
	Samsung      Company = "Samsung"
	Voltas       Company = "Voltas"
	Whirlpool    Company = "Whirlpool"
	LG           Company = "LG"
	Daikin       Company = "Daikin"
	Bajaj        Company = "Bajaj"
	Usha         Company = "Usha"
	Sony         Company = "Sony"
	Kent         Company = "Kent"
	Philips      Company = "Philips"
	Luminous     Company = "Luminous"
	OtherCompany Company = "Other"
)

var companies = []Company{
	Samsung, Voltas, Whirlpool, LG, Daikin, Bajaj, Usha, Sony, Kent,
	Philips, Luminous, OtherCompany,
}

// Companies returns all known companies in enumeration order.
func Companies() []Company { return slices.Clone(companies) }

// Valid reports whether c is a known company.
func (c Company) Valid() bool { return slices.Contains(companies, c) }

func (c Company) String() string { return string(c) }

// ParseCompany parses a company display name, ignoring case.
func ParseCompany(s string) (Company, error) {
	s = strings.TrimSpace(s)
	for _, c := range companies {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCompany, s)
}
