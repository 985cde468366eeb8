package domain

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type (
	Product struct {
		ID            string
		Name          string
		Description   string
		Price         float64
		OriginalPrice float64
		Images        []string
		Category      string
		IsNew         bool
		IsFeatured    bool
		Color         string // legacy single color, superseded by Variations
		Variations    VariationSet
	}

	ProductFilter struct {
		Category string
		Query    string
		Sort     ProductSort
	}

	ProductSort string
)

const (
	SortNone      ProductSort = ""
	SortPriceAsc  ProductSort = "price-asc"
	SortPriceDesc ProductSort = "price-desc"
	SortNameAsc   ProductSort = "name-asc"
	SortNameDesc  ProductSort = "name-desc"
)

// AllCategories matches products of any category.
const AllCategories = "All"

func (s ProductSort) Valid() bool {
	switch s {
	case SortNone, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return true
	}
	return false
}

// Sizes lists the distinct variation sizes in first-seen order.
func (p Product) Sizes() []string {
	return p.Variations.Sizes()
}

func (p Product) TotalStock() int {
	return p.Variations.TotalStock()
}

// Discount returns the whole-percent markdown from OriginalPrice.
func (p Product) Discount() int {
	if p.OriginalPrice <= 0 || p.OriginalPrice <= p.Price {
		return 0
	}
	orig := decimal.NewFromFloat(p.OriginalPrice)
	price := decimal.NewFromFloat(p.Price)
	return int(orig.Sub(price).Div(orig).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

func (f ProductFilter) Match(p Product) bool {
	if f.Category != "" && f.Category != AllCategories && p.Category != f.Category {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// Apply filters and sorts ps. The input slice is not modified.
func (f ProductFilter) Apply(ps []Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		if f.Match(p) {
			out = append(out, p)
		}
	}

	switch f.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortNameAsc:
		slices.SortStableFunc(out, func(a, b Product) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	case SortNameDesc:
		slices.SortStableFunc(out, func(a, b Product) int {
			return strings.Compare(strings.ToLower(b.Name), strings.ToLower(a.Name))
		})
	}
	return out
}

type ProductEventType string

const (
	ProductCreated ProductEventType = "created"
	ProductUpdated ProductEventType = "updated"
	ProductDeleted ProductEventType = "deleted"
)

type ProductEvent struct {
	Type       ProductEventType
	Product    Product
	OccurredAt time.Time
}
