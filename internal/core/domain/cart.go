package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

type (
	Cart struct {
		UserID string
		Lines  []CartLine
	}

	CartLine struct {
		ProductID string
		Size      string
		Color     string
		Quantity  int
	}

	// CartItem is a cart line resolved against the current catalog.
	CartItem struct {
		CartLine
		Product Product
	}

	CartSummary struct {
		Items []CartItem
		Count int
		Total decimal.Decimal
	}
)

func (l CartLine) sameVariant(o CartLine) bool {
	return l.ProductID == o.ProductID && l.Size == o.Size && l.Color == o.Color
}

// Add merges l into an existing line of the same variant or appends it.
// The resulting quantity must fit into stock.
func (c *Cart) Add(l CartLine, stock int) error {
	if l.Quantity < 1 {
		return ErrInvalidQuantity
	}

	i := c.index(l)
	if i == -1 {
		if l.Quantity > stock {
			return ErrInsufficientStock
		}
		c.Lines = append(c.Lines, l)
		return nil
	}

	q := c.Lines[i].Quantity + l.Quantity
	if q > stock {
		return ErrInsufficientStock
	}
	c.Lines[i].Quantity = q
	return nil
}

// SetQuantity replaces the line quantity. Zero removes the line.
func (c *Cart) SetQuantity(l CartLine, stock int) error {
	if l.Quantity < 0 {
		return ErrInvalidQuantity
	}

	i := c.index(l)
	if i == -1 {
		return ErrNotFound
	}

	if l.Quantity == 0 {
		c.Lines = slices.Delete(c.Lines, i, i+1)
		return nil
	}
	if l.Quantity > stock {
		return ErrInsufficientStock
	}
	c.Lines[i].Quantity = l.Quantity
	return nil
}

func (c *Cart) Remove(l CartLine) {
	if i := c.index(l); i != -1 {
		c.Lines = slices.Delete(c.Lines, i, i+1)
	}
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c Cart) Count() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c Cart) index(l CartLine) int {
	return slices.IndexFunc(c.Lines, l.sameVariant)
}

func (it CartItem) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(it.Product.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Summarize computes count and total from resolved items.
func Summarize(items []CartItem) CartSummary {
	s := CartSummary{Items: items, Total: decimal.Zero}
	for _, it := range items {
		s.Count += it.Quantity
		s.Total = s.Total.Add(it.LineTotal())
	}
	return s
}

type Wishlist struct {
	UserID     string
	ProductIDs []string
}

// Add appends productID unless it is already present.
func (w *Wishlist) Add(productID string) {
	if w.Contains(productID) {
		return
	}
	w.ProductIDs = append(w.ProductIDs, productID)
}

func (w *Wishlist) Remove(productID string) {
	w.ProductIDs = slices.DeleteFunc(w.ProductIDs, func(id string) bool {
		return id == productID
	})
}

func (w Wishlist) Contains(productID string) bool {
	return slices.Contains(w.ProductIDs, productID)
}

func (w *Wishlist) Clear() {
	w.ProductIDs = nil
}
