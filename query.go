package stock

import (
	"slices"
	"strings"
)

// MaxSuggestedModels is the number of model names returned by SuggestModels.
const MaxSuggestedModels = 5

// CategoryCounts returns the number of items of every known category,
// including those with no item.
func CategoryCounts(items []StockItem) map[Category]int {
	counts := make(map[Category]int, len(categories))
	for _, c := range categories {
		counts[c] = 0
	}
	for _, it := range items {
		counts[it.Category]++
	}
	return counts
}

// SpecValues returns the distinct values of the primary specification of c
// found in items, sorted.
func SpecValues(items []StockItem, c Category) []string {
	key, ok := PrimarySpecKey(c)
	if !ok {
		return nil
	}
	var values []string
	for _, it := range items {
		if it.Category != c {
			continue
		}
		if v := it.Specs[key]; v != "" && !slices.Contains(values, v) {
			values = append(values, v)
		}
	}
	slices.Sort(values)
	return values
}

// Filter selects catalog items.
type Filter struct {
	Category Category // Category, if not empty, keeps only items of this category.
	Spec     string   // Spec, if not empty, keeps only items whose primary spec has this value.
	Search   string   // Search matches name or company, ignoring case.
}

// Match reports whether it passes the filter.
func (f Filter) Match(it StockItem) bool {
	if f.Category != "" && it.Category != f.Category {
		return false
	}
	if f.Spec != "" {
		key, ok := PrimarySpecKey(it.Category)
		if !ok || it.Specs[key] != f.Spec {
			return false
		}
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(it.Name), q) && !strings.Contains(strings.ToLower(string(it.Company)), q) {
			return false
		}
	}
	return true
}

// Apply returns the items matching f, in catalog order.
func (f Filter) Apply(items []StockItem) []StockItem {
	var out []StockItem
	for _, it := range items {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// CompanyGroup is the set of items of one company.
type CompanyGroup struct {
	Company    Company
	Items      []StockItem
	TotalStock int
}

// GroupByCompany groups items by company, companies sorted by name and items
// in catalog order.
func GroupByCompany(items []StockItem) []CompanyGroup {
	var groups []CompanyGroup
	for _, it := range items {
		i := slices.IndexFunc(groups, func(g CompanyGroup) bool { return g.Company == it.Company })
		if i < 0 {
			groups = append(groups, CompanyGroup{Company: it.Company})
			i = len(groups) - 1
		}
		groups[i].Items = append(groups[i].Items, it)
		groups[i].TotalStock += it.Stock
	}
	slices.SortFunc(groups, func(a, b CompanyGroup) int { return strings.Compare(string(a.Company), string(b.Company)) })
	return groups
}

// SuggestModels returns up to MaxSuggestedModels distinct model names already
// stocked for this company and category, in catalog order.
func SuggestModels(items []StockItem, company Company, category Category) []string {
	var names []string
	for _, it := range items {
		if it.Company != company || it.Category != category || slices.Contains(names, it.Name) {
			continue
		}
		names = append(names, it.Name)
		if len(names) == MaxSuggestedModels {
			break
		}
	}
	return names
}
