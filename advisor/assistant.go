package advisor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/stock"
	"github.com/etnz/stock/renderer"
	"google.golang.org/genai"
)

// Source is the read-only view of the inventory given to the assistant.
type Source interface {
	Items() []stock.StockItem
	Entries() []stock.LedgerEntry
}

// Assistant is an interactive chat about the inventory.
type Assistant struct {
	w      io.Writer
	r      *bufio.Reader
	expert *Expert
	// Print writes an answer to w, plain text by default.
	Print func(w io.Writer, markdown string)
}

const prompt = "assist> "

// NewAssistant creates an assistant answering questions from r on w. Its
// tools read src at each call, so answers reflect the current state.
func NewAssistant(w io.Writer, r io.Reader, src Source, lowStock int) *Assistant {
	lib := Tools(src, lowStock)
	return &Assistant{
		w: w,
		r: bufio.NewReader(r),
		expert: &Expert{
			Name:      "Shopkeeper",
			ModelName: DefaultModel,
			MaxCalls:  10,
			Config: &genai.GenerateContentConfig{
				Tools: []*genai.Tool{
					{FunctionDeclarations: NewDeclaration(lib)},
				},
				SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an intelligent inventory assistant for an electronics shop.
				Use the Tools to read the current inventory and the transaction history,
				never guess stock levels or prices.
				Answer based strictly on the data returned by the Tools. Be helpful and brief.
				Use '₹' for currency and format the answers in Markdown.
				`}}},
			},
			Library: NewLibrary(lib),
		},
		Print: func(w io.Writer, markdown string) { fmt.Fprintln(w, markdown) },
	}
}

// Run starts the interactive session. Prompts are asked first, as if typed by
// the user. The session ends on "bye" or at the end of r.
func (a *Assistant) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.expert.chat == nil {
		if err := a.expert.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to stk assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}

		content, err := a.expert.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		a.Print(a.w, Text(content))
	}
}

// Tools returns the functions the assistant can call on src.
func Tools(src Source, lowStock int) []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Inventory",
				Description: "Inventory lists the stocked items with their company, category, stock and unit price.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"category": {Type: genai.TypeString, Description: "Only list items of this category, e.g. TV or AC."},
						"search":   {Type: genai.TypeString, Description: "Only list items whose name or company contains this text."},
					},
				},
			},
			Func: func(ctx context.Context, args map[string]any) (any, error) {
				var f stock.Filter
				if s, _ := args["category"].(string); s != "" {
					c, err := stock.ParseCategory(s)
					if err != nil {
						return nil, fmt.Errorf("%w, valid categories are %v", err, stock.Categories())
					}
					f.Category = c
				}
				f.Search, _ = args["search"].(string)
				return stock.Summaries(f.Apply(src.Items())), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Dashboard",
				Description: "Dashboard returns the total units, the total stock value, the low stock items and the stock per category, as markdown.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"threshold": {Type: genai.TypeInteger, Description: fmt.Sprintf("Items with a stock at or below this level are low on stock. Default is %d.", lowStock)},
					},
				},
			},
			Func: func(ctx context.Context, args map[string]any) (any, error) {
				threshold := lowStock
				if v, ok := args["threshold"].(float64); ok {
					threshold = int(v)
				}
				return renderer.DashboardMarkdown(stock.NewDashboard(src.Items(), threshold)), nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Transactions",
				Description: "Transactions lists the stock movements, most recent first. IN is stock received, OUT is stock sold.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"itemId": {Type: genai.TypeString, Description: "Only list the movements of this item id."},
						"limit":  {Type: genai.TypeInteger, Description: "Maximum number of movements. Default is 20."},
					},
				},
			},
			Func: func(ctx context.Context, args map[string]any) (any, error) {
				limit := 20
				if v, ok := args["limit"].(float64); ok && v > 0 {
					limit = int(v)
				}
				id, _ := args["itemId"].(string)
				var out []stock.LedgerEntry
				for _, e := range src.Entries() {
					if id != "" && e.ItemID != id {
						continue
					}
					out = append(out, e)
					if len(out) == limit {
						break
					}
				}
				return out, nil
			},
		},
	}
}
