package domain

import (
	"fmt"
	"slices"
)

type Variation struct {
	Size  string
	Color string
	Stock int
}

type variationKey struct {
	size  string
	color string
}

// A VariationSet holds the size/color/stock tuples of one product.
//
// The (size, color) pair is the map key, so at most one stock count can
// exist per combination. Insertion order is kept for first-seen ordering
// of derived colors and sizes. The zero value is an empty set.
type VariationSet struct {
	order []variationKey
	stock map[variationKey]int
}

// NewVariationSet builds a set from the persisted ordered list.
func NewVariationSet(raw []Variation) (VariationSet, error) {
	const op = "NewVariationSet"

	var vs VariationSet
	for _, v := range raw {
		if err := vs.Add(v.Size, v.Color, v.Stock); err != nil {
			return VariationSet{}, fmt.Errorf(
				"%s: size=%q color=%q: %w", op, v.Size, v.Color, err,
			)
		}
	}
	return vs, nil
}

func (vs *VariationSet) Add(size, color string, stock int) error {
	if err := validateVariation(size, color, stock); err != nil {
		return err
	}

	k := variationKey{size, color}
	if _, ok := vs.stock[k]; ok {
		return ErrDuplicateVariation
	}

	if vs.stock == nil {
		vs.stock = make(map[variationKey]int)
	}
	vs.stock[k] = stock
	vs.order = append(vs.order, k)
	return nil
}

func (vs *VariationSet) Update(size, color string, stock int) error {
	if stock < 0 {
		return ErrInvalidStock
	}

	k := variationKey{size, color}
	if _, ok := vs.stock[k]; !ok {
		return ErrVariationNotFound
	}
	vs.stock[k] = stock
	return nil
}

// Remove deletes the tuple. Absence is not an error.
func (vs *VariationSet) Remove(size, color string) {
	k := variationKey{size, color}
	if _, ok := vs.stock[k]; !ok {
		return
	}
	delete(vs.stock, k)

	if i := slices.Index(vs.order, k); i != -1 {
		vs.order = slices.Delete(vs.order, i, i+1)
	}
}

// AvailableColors returns distinct colors having at least one tuple with
// positive stock, in first-seen order.
func (vs VariationSet) AvailableColors() []string {
	colors := make([]string, 0)
	seen := make(map[string]struct{})
	for _, k := range vs.order {
		if vs.stock[k] <= 0 {
			continue
		}
		if _, ok := seen[k.color]; ok {
			continue
		}
		seen[k.color] = struct{}{}
		colors = append(colors, k.color)
	}
	return colors
}

// AvailableSizes returns distinct sizes of the color with positive stock,
// in first-seen order.
func (vs VariationSet) AvailableSizes(color string) []string {
	sizes := make([]string, 0)
	seen := make(map[string]struct{})
	for _, k := range vs.order {
		if k.color != color || vs.stock[k] <= 0 {
			continue
		}
		if _, ok := seen[k.size]; ok {
			continue
		}
		seen[k.size] = struct{}{}
		sizes = append(sizes, k.size)
	}
	return sizes
}

// StockOf returns 0 for a missing pair, same as an exhausted one.
// Use [VariationSet.Lookup] to tell them apart.
func (vs VariationSet) StockOf(size, color string) int {
	return vs.stock[variationKey{size, color}]
}

func (vs VariationSet) Lookup(size, color string) (stock int, ok bool) {
	stock, ok = vs.stock[variationKey{size, color}]
	return
}

func (vs VariationSet) TotalStock() int {
	var total int
	for _, n := range vs.stock {
		total += n
	}
	return total
}

// Sizes returns every configured size regardless of stock.
func (vs VariationSet) Sizes() []string {
	return vs.distinct(func(k variationKey) string { return k.size })
}

// Colors returns every configured color regardless of stock.
func (vs VariationSet) Colors() []string {
	return vs.distinct(func(k variationKey) string { return k.color })
}

func (vs VariationSet) Len() int {
	return len(vs.order)
}

// Variations returns the ordered raw list for persistence.
func (vs VariationSet) Variations() []Variation {
	out := make([]Variation, len(vs.order))
	for i, k := range vs.order {
		out[i] = Variation{Size: k.size, Color: k.color, Stock: vs.stock[k]}
	}
	return out
}

func (vs VariationSet) Clone() VariationSet {
	c := VariationSet{
		order: make([]variationKey, len(vs.order)),
		stock: make(map[variationKey]int, len(vs.stock)),
	}
	copy(c.order, vs.order)
	for k, n := range vs.stock {
		c.stock[k] = n
	}
	return c
}

func (vs VariationSet) distinct(label func(variationKey) string) []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})
	for _, k := range vs.order {
		l := label(k)
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

func validateVariation(size, color string, stock int) error {
	if size == "" || color == "" {
		return ErrInvalidVariation
	}
	if stock < 0 {
		return ErrInvalidStock
	}
	return nil
}
