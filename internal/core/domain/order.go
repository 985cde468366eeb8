package domain

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

const whatsAppBaseURL = "https://wa.me/"

type (
	OrderLine struct {
		Product  Product
		Color    string
		Size     string
		Quantity int
	}

	OrderRequest struct {
		ProductID string
		Color     string
		Size      string
		Quantity  int
	}

	// OrderLink is a chat deep link that opens a prefilled order message.
	OrderLink struct {
		URL     string
		Message string
	}
)

// DirectOrderMessage formats a single-product order.
func DirectOrderMessage(shopURL string, l OrderLine) string {
	var b strings.Builder
	b.WriteString("I'm interested in ordering:\n\n")
	writeOrderLine(&b, shopURL, l)
	b.WriteString("\nPlease assist me with this order.")
	return b.String()
}

// CartOrderMessage formats every line followed by the order total.
func CartOrderMessage(shopURL string, ls []OrderLine) string {
	var b strings.Builder
	b.WriteString("I'm interested in ordering:\n\n")

	total := decimal.Zero
	for _, l := range ls {
		writeOrderLine(&b, shopURL, l)
		b.WriteString("\n")
		total = total.Add(
			decimal.NewFromFloat(l.Product.Price).Mul(decimal.NewFromInt(int64(l.Quantity))),
		)
	}

	fmt.Fprintf(&b, "*Total:* $%s\n\n", total.StringFixed(2))
	b.WriteString("Please assist me with this order.")
	return b.String()
}

func writeOrderLine(b *strings.Builder, shopURL string, l OrderLine) {
	price := decimal.NewFromFloat(l.Product.Price)
	fmt.Fprintf(b, "*Product:* %s\n", l.Product.Name)
	fmt.Fprintf(b, "*Link:* %s/product/%s\n", strings.TrimRight(shopURL, "/"), l.Product.ID)
	fmt.Fprintf(b, "*Price:* $%s\n", price.StringFixed(2))
	fmt.Fprintf(b, "*Color:* %s\n", l.Color)
	fmt.Fprintf(b, "*Size:* %s\n", l.Size)
	fmt.Fprintf(b, "*Quantity:* %d\n", l.Quantity)
}

// NewOrderLink builds a wa.me link for the phone number.
func NewOrderLink(phone, message string) OrderLink {
	phone = strings.TrimLeft(phone, "+")
	return OrderLink{
		URL:     whatsAppBaseURL + phone + "?text=" + escapeText(message),
		Message: message,
	}
}

// escapeText percent-encodes spaces as %20 rather than '+'.
func escapeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
