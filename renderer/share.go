package renderer

import (
	"net/url"
	"strings"

	"github.com/etnz/stock"
)

// ShareText renders the WhatsApp message presenting an item to a customer.
func ShareText(item stock.StockItem) string {
	return strings.TrimRight(renderTemplate("share.md", nil, item), "\n")
}

// ShareURL returns the wa.me link that opens WhatsApp with the share text.
func ShareURL(item stock.StockItem) string {
	// QueryEscape encodes spaces as '+', WhatsApp expects %20.
	text := strings.ReplaceAll(url.QueryEscape(ShareText(item)), "+", "%20")
	return "https://wa.me/?text=" + text
}
