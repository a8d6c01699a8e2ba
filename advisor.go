package stock

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

// Fixed messages substituted to advisory answers when the advisor fails.
const (
	FallbackInsights    = "Failed to analyze inventory. Please try again later."
	FallbackAnswer      = "Sorry, I'm having trouble processing that right now."
	FallbackDescription = "Could not generate description at this time."
	UnavailableInsights = "API Key missing. Please check your settings."
	UnavailableAnswer   = "API Key missing."
	UnavailableDescribe = "AI generation unavailable (Missing API Key)."
	EmptyInsights       = "No insights generated."
	EmptyAnswer         = "I couldn't understand that."
	EmptyDescription    = FallbackDescription
)

// ItemSummary is the reduced projection of an item sent to the advisor.
// Specifications and the ledger are never sent.
type ItemSummary struct {
	Name     string          `json:"name"`
	Company  Company         `json:"company"`
	Category Category        `json:"category"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
}

// Summaries projects items for the advisor.
func Summaries(items []StockItem) []ItemSummary {
	out := make([]ItemSummary, len(items))
	for i, it := range items {
		out[i] = ItemSummary{
			Name:     it.Name,
			Company:  it.Company,
			Category: it.Category,
			Stock:    it.Stock,
			Price:    it.Price,
		}
	}
	return out
}

// Advisor is a remote advisory service. Its answers are markdown text,
// treated as opaque. Implementations return an error wrapping
// ErrAdvisoryUnavailable when they are not configured.
type Advisor interface {
	// Summarize returns a few actionable business insights on the inventory.
	Summarize(ctx context.Context, items []ItemSummary) (string, error)
	// Answer answers a free form question about the inventory.
	Answer(ctx context.Context, query string, items []ItemSummary) (string, error)
	// Describe writes a short marketing description of a product.
	Describe(ctx context.Context, name string, category Category) (string, error)
}

// Insights asks the advisor for insights on the current catalog. It never
// fails: any advisor failure is logged and replaced by a fixed message. The
// inventory lock is not held during the call.
func (inv *Inventory) Insights(ctx context.Context) string {
	items := Summaries(inv.Items())
	return advise(inv.advisor, UnavailableInsights, FallbackInsights, EmptyInsights, func(a Advisor) (string, error) {
		return a.Summarize(ctx, items)
	})
}

// Ask answers a question about the current catalog. It never fails, see
// Insights.
func (inv *Inventory) Ask(ctx context.Context, query string) string {
	items := Summaries(inv.Items())
	return advise(inv.advisor, UnavailableAnswer, FallbackAnswer, EmptyAnswer, func(a Advisor) (string, error) {
		return a.Answer(ctx, query, items)
	})
}

// DescribeProduct asks the advisor for a product description. It never
// fails, see Insights.
func (inv *Inventory) DescribeProduct(ctx context.Context, name string, category Category) string {
	return advise(inv.advisor, UnavailableDescribe, FallbackDescription, EmptyDescription, func(a Advisor) (string, error) {
		return a.Describe(ctx, name, category)
	})
}

func advise(a Advisor, unavailable, fallback, empty string, call func(Advisor) (string, error)) string {
	if a == nil {
		return unavailable
	}
	text, err := call(a)
	switch {
	case errors.Is(err, ErrAdvisoryUnavailable):
		log.Printf("warning, advisor unavailable: %v", err)
		return unavailable
	case err != nil:
		log.Printf("warning, advisor failed: %v", err)
		return fallback
	case strings.TrimSpace(text) == "":
		return empty
	}
	return text
}
