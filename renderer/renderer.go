// Package renderer renders inventory reports as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/stock"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templates embed.FS

var funcs = template.FuncMap{
	"price": func(d decimal.Decimal) string { return stock.FormatPrice(d) },
	"date":  func(t time.Time) string { return t.Local().Format("2006-01-02 15:04") },
	"specs": func(s stock.Specs) string {
		if len(s) == 0 {
			return "-"
		}
		return s.String()
	},
	"label": specLabel,
	"join":  strings.Join,
	"cell":  cell,
}

// specLabel returns the display label of a spec key of category c.
func specLabel(c stock.Category, key string) string {
	for _, f := range stock.Fields(c) {
		if f.Key == key {
			return f.Label
		}
	}
	return key
}

// cell escapes the characters that would break a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// renderTemplate renders the main template mainFile with data. Partials are
// loaded under their alias so the main template can include them.
func renderTemplate(mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(mainFile).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, mainFile, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", mainFile, err)
	}
	return b.String()
}

var ledgerTable = map[string]string{"ledger_table": "ledger_table.md"}

// Catalog is the data of the catalog report.
type Catalog struct {
	Filter     stock.Filter
	SpecValues []string // SpecValues are the values available for the spec filter.
	Count      int
	Groups     []stock.CompanyGroup
}

// NewCatalog filters items and groups them by company.
func NewCatalog(items []stock.StockItem, f stock.Filter) *Catalog {
	selected := f.Apply(items)
	c := &Catalog{Filter: f, Count: len(selected), Groups: stock.GroupByCompany(selected)}
	if f.Category != "" {
		c.SpecValues = stock.SpecValues(items, f.Category)
	}
	return c
}

// CatalogMarkdown renders the catalog grouped by company.
func CatalogMarkdown(c *Catalog) string {
	return renderTemplate("catalog.md", nil, c)
}

// CategoriesMarkdown renders the item count of every category.
func CategoriesMarkdown(items []stock.StockItem) string {
	type row struct {
		Category stock.Category
		Count    int
	}
	counts := stock.CategoryCounts(items)
	rows := make([]row, 0, len(counts))
	for _, c := range stock.Categories() {
		rows = append(rows, row{c, counts[c]})
	}
	return renderTemplate("categories.md", nil, rows)
}

// ItemMarkdown renders an item with its transactions, most recent first.
func ItemMarkdown(item stock.StockItem, entries []stock.LedgerEntry) string {
	return renderTemplate("item.md", ledgerTable, struct {
		Item    stock.StockItem
		Entries []stock.LedgerEntry
	}{item, entries})
}

// LedgerMarkdown renders ledger entries in the given order.
func LedgerMarkdown(entries []stock.LedgerEntry) string {
	return renderTemplate("ledger.md", ledgerTable, entries)
}

// DashboardMarkdown renders the dashboard.
func DashboardMarkdown(d stock.Dashboard) string {
	return renderTemplate("dashboard.md", nil, d)
}

// SchemaMarkdown renders the specification fields of each category.
func SchemaMarkdown(categories ...stock.Category) string {
	type fieldRow struct {
		stock.SpecField
		Primary bool
		Values  string
		Cond    string
	}
	type section struct {
		Category stock.Category
		Fields   []fieldRow
	}
	var sections []section
	for _, c := range categories {
		primary, _ := stock.PrimarySpecKey(c)
		s := section{Category: c}
		for _, f := range stock.Fields(c) {
			row := fieldRow{SpecField: f, Primary: f.Key == primary, Values: strings.Join(f.Suggested, ", ")}
			if f.FreeText {
				row.Values = strings.TrimPrefix(row.Values+", any value", ", ")
			}
			if f.When != nil {
				row.Cond = fmt.Sprintf("%s is %s", specLabel(c, f.When[0]), f.When[1])
			}
			s.Fields = append(s.Fields, row)
		}
		sections = append(sections, s)
	}
	return renderTemplate("schema.md", nil, sections)
}
