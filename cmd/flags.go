package cmd

import (
	"fmt"
	"strings"

	"github.com/etnz/stock"
	"github.com/shopspring/decimal"
)

// specsFlag collects repeated "-spec key=value" flags.
type specsFlag stock.Specs

func (s *specsFlag) String() string { return stock.Specs(*s).String() }

func (s *specsFlag) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("invalid spec %q, want key=value", v)
	}
	if *s == nil {
		*s = make(specsFlag)
	}
	(*s)[key] = strings.TrimSpace(value)
	return nil
}

// parsePrice parses a non negative amount. An empty string is zero.
func parsePrice(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", stock.ErrInvalidPrice, s)
	}
	return d, nil
}
