// Package advisor implements the stock advisory port on Gemini, and an
// interactive assistant that answers questions with function calls on the
// inventory.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/stock"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// APIKey returns the Gemini API key from the environment, GEMINI_API_KEY
// first then GOOGLE_API_KEY.
func APIKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GOOGLE_API_KEY")
}

// NewClient creates a Gemini client. It fails with an error wrapping
// stock.ErrAdvisoryUnavailable when no API key is configured.
func NewClient(ctx context.Context) (*genai.Client, error) {
	key := APIKey()
	if key == "" {
		return nil, fmt.Errorf("%w: neither GEMINI_API_KEY nor GOOGLE_API_KEY is set", stock.ErrAdvisoryUnavailable)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: key, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("could not create gemini client: %w", err)
	}
	return client, nil
}

// Gemini is a stock.Advisor on the Gemini API.
type Gemini struct {
	client *genai.Client
	Model  string
}

// NewGemini creates an Advisor on client. A nil client is accepted: every call
// then fails with stock.ErrAdvisoryUnavailable.
func NewGemini(client *genai.Client) *Gemini {
	return &Gemini{client: client, Model: DefaultModel}
}

// Summarize implements stock.Advisor.
func (g *Gemini) Summarize(ctx context.Context, items []stock.ItemSummary) (string, error) {
	prompt, err := summarizePrompt(items)
	if err != nil {
		return "", err
	}
	return g.generate(ctx, prompt, nil)
}

// Answer implements stock.Advisor.
func (g *Gemini) Answer(ctx context.Context, query string, items []stock.ItemSummary) (string, error) {
	prompt, err := answerPrompt(query, items)
	if err != nil {
		return "", err
	}
	return g.generate(ctx, prompt, nil)
}

// Describe implements stock.Advisor. The model is asked for a JSON object
// holding the description.
func (g *Gemini) Describe(ctx context.Context, name string, category stock.Category) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"description": {Type: genai.TypeString},
			},
			Required: []string{"description"},
		},
	}
	text, err := g.generate(ctx, describePrompt(name, category), config)
	if err != nil {
		return "", err
	}
	return parseDescription(text)
}

func (g *Gemini) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("%w: no gemini client", stock.ErrAdvisoryUnavailable)
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.Model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", g.Model, err)
	}
	return resp.Text(), nil
}

func summarizePrompt(items []stock.ItemSummary) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("could not encode inventory: %w", err)
	}
	return `Analyze the following electronics inventory list and provide 3 key actionable business insights.
Focus on:
1. Brand dominance (which companies have most stock/value).
2. Category stock levels (critical low stock alerts).
3. Missing opportunities (categories or brands underrepresented).

Inventory Data:
` + string(data) + `

Keep the response professional, concise, and formatted in Markdown bullet points. Use '₹' for currency.`, nil
}

func answerPrompt(query string, items []stock.ItemSummary) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("could not encode inventory: %w", err)
	}
	return `You are an intelligent inventory assistant for an electronics shop.
Here is the current inventory data: ` + string(data) + `

User Query: ` + fmt.Sprintf("%q", query) + `

Answer the user's query based strictly on the provided data. Be helpful and brief.
Use '₹' for currency.`, nil
}

func describePrompt(name string, category stock.Category) string {
	return fmt.Sprintf(`I am adding a product to my electronics shop inventory.
Product Details: %q
Category: %q

Please generate a concise, attractive 2-sentence marketing description suitable for an inventory app or e-commerce listing.

Return in JSON format.`, name, category)
}

// parseDescription extracts the description from the JSON answer of the
// model.
func parseDescription(text string) (string, error) {
	var jobj any
	if err := json.Unmarshal([]byte(text), &jobj); err != nil {
		return "", fmt.Errorf("invalid description response %q: %w", text, err)
	}
	path := "$.description"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing description %q: %w", path, err)
	}
	// jsonpath may return a list of one answer.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	desc, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("description is not a string: %v", jval)
	}
	return strings.TrimSpace(desc), nil
}
