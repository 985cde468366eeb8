package domain

import "slices"

// A Selection is the color -> size -> quantity choice a shopper makes on a
// product page. Every step re-reads the underlying [VariationSet].
type Selection struct {
	vs       VariationSet
	color    string
	size     string
	quantity int
}

// NewSelection picks the first available color and the first available
// size of that color.
func NewSelection(vs VariationSet) *Selection {
	s := &Selection{vs: vs}
	if colors := vs.AvailableColors(); len(colors) != 0 {
		s.color = colors[0]
	}
	s.resetSize()
	s.quantity = 1
	s.clampQuantity()
	return s
}

func (s *Selection) SelectColor(color string) error {
	if !slices.Contains(s.vs.AvailableColors(), color) {
		return ErrVariationNotFound
	}
	s.color = color
	s.resetSize()
	s.clampQuantity()
	return nil
}

func (s *Selection) SelectSize(size string) error {
	if !slices.Contains(s.vs.AvailableSizes(s.color), size) {
		return ErrVariationNotFound
	}
	s.size = size
	s.clampQuantity()
	return nil
}

// SetQuantity stores q clamped to the stock ceiling of the current pair.
func (s *Selection) SetQuantity(q int) {
	s.quantity = q
	s.clampQuantity()
}

func (s *Selection) Colors() []string {
	return s.vs.AvailableColors()
}

func (s *Selection) Sizes() []string {
	if s.color == "" {
		return []string{}
	}
	return s.vs.AvailableSizes(s.color)
}

func (s *Selection) Color() string {
	return s.color
}

func (s *Selection) Size() string {
	return s.size
}

func (s *Selection) Stock() int {
	if s.color == "" || s.size == "" {
		return 0
	}
	return s.vs.StockOf(s.size, s.color)
}

func (s *Selection) Quantity() int {
	return s.quantity
}

func (s *Selection) resetSize() {
	s.size = ""
	if sizes := s.Sizes(); len(sizes) != 0 {
		s.size = sizes[0]
	}
}

func (s *Selection) clampQuantity() {
	stock := s.Stock()
	switch {
	case stock == 0:
		s.quantity = 0
	case s.quantity > stock:
		s.quantity = stock
	case s.quantity < 1:
		s.quantity = 1
	}
}
