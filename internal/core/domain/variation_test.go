package domain_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustVariationSet(t *testing.T, raw ...domain.Variation) domain.VariationSet {
	t.Helper()
	vs, err := domain.NewVariationSet(raw)
	require.NoError(t, err)
	return vs
}

func TestVariationSetScenario(t *testing.T) {
	vs := mustVariationSet(t,
		domain.Variation{Size: "S", Color: "Black", Stock: 2},
		domain.Variation{Size: "M", Color: "Black", Stock: 0},
		domain.Variation{Size: "S", Color: "White", Stock: 5},
	)

	assert.Equal(t, []string{"Black", "White"}, vs.AvailableColors())
	assert.Equal(t, []string{"S"}, vs.AvailableSizes("Black"))
	assert.Equal(t, 5, vs.StockOf("S", "White"))
	assert.Equal(t, 7, vs.TotalStock())
}

func TestNewVariationSet(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		vs := mustVariationSet(t)
		assert.Zero(t, vs.Len())
		assert.Zero(t, vs.TotalStock())
		assert.Empty(t, vs.AvailableColors())
		assert.NotNil(t, vs.AvailableColors())
	})

	t.Run("Duplicate", func(t *testing.T) {
		_, err := domain.NewVariationSet([]domain.Variation{
			{Size: "S", Color: "Red", Stock: 1},
			{Size: "S", Color: "Red", Stock: 2},
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateVariation)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := domain.NewVariationSet([]domain.Variation{{Size: "", Color: "Red"}})
		assert.ErrorIs(t, err, domain.ErrInvalidVariation)

		_, err = domain.NewVariationSet([]domain.Variation{{Size: "S", Color: "Red", Stock: -1}})
		assert.ErrorIs(t, err, domain.ErrInvalidStock)
	})

	t.Run("KeepsOrder", func(t *testing.T) {
		raw := []domain.Variation{
			{Size: "L", Color: "Navy", Stock: 1},
			{Size: "S", Color: "Black", Stock: 0},
			{Size: "M", Color: "Navy", Stock: 4},
		}
		vs := mustVariationSet(t, raw...)
		assert.Equal(t, raw, vs.Variations())
		assert.Equal(t, []string{"L", "S", "M"}, vs.Sizes())
		assert.Equal(t, []string{"Navy", "Black"}, vs.Colors())
	})
}

func TestVariationSetAdd(t *testing.T) {
	t.Run("StockOfAfterAdd", func(t *testing.T) {
		var vs domain.VariationSet
		require.NoError(t, vs.Add("M", "Red", 4))
		assert.Equal(t, 4, vs.StockOf("M", "Red"))
	})

	t.Run("ZeroStockAllowed", func(t *testing.T) {
		var vs domain.VariationSet
		require.NoError(t, vs.Add("M", "Red", 0))

		stock, ok := vs.Lookup("M", "Red")
		assert.True(t, ok)
		assert.Zero(t, stock)
	})

	t.Run("DuplicateLeavesStoreUnchanged", func(t *testing.T) {
		vs := mustVariationSet(t, domain.Variation{Size: "M", Color: "Red", Stock: 4})
		before := vs.Variations()

		err := vs.Add("M", "Red", 9)
		assert.ErrorIs(t, err, domain.ErrDuplicateVariation)
		assert.Equal(t, before, vs.Variations())
	})

	t.Run("Invalid", func(t *testing.T) {
		var vs domain.VariationSet
		assert.ErrorIs(t, vs.Add("M", "", 1), domain.ErrInvalidVariation)
		assert.ErrorIs(t, vs.Add("M", "Red", -2), domain.ErrInvalidStock)
		assert.Zero(t, vs.Len())
	})
}

func TestVariationSetUpdate(t *testing.T) {
	t.Run("ReplacesStock", func(t *testing.T) {
		vs := mustVariationSet(t,
			domain.Variation{Size: "M", Color: "Red", Stock: 4},
			domain.Variation{Size: "L", Color: "Red", Stock: 1},
		)
		require.NoError(t, vs.Update("M", "Red", 7))
		assert.Equal(t, 7, vs.StockOf("M", "Red"))
		assert.Equal(t, 8, vs.TotalStock())
	})

	t.Run("SameStockKeepsTotal", func(t *testing.T) {
		vs := mustVariationSet(t,
			domain.Variation{Size: "M", Color: "Red", Stock: 4},
			domain.Variation{Size: "L", Color: "Blue", Stock: 3},
		)
		total := vs.TotalStock()
		require.NoError(t, vs.Update("L", "Blue", 3))
		assert.Equal(t, total, vs.TotalStock())
	})

	t.Run("NotFoundLeavesStoreUnchanged", func(t *testing.T) {
		vs := mustVariationSet(t, domain.Variation{Size: "M", Color: "Red", Stock: 4})
		before := vs.Variations()

		err := vs.Update("XL", "Red", 1)
		assert.ErrorIs(t, err, domain.ErrVariationNotFound)
		assert.Equal(t, before, vs.Variations())
	})

	t.Run("NegativeStock", func(t *testing.T) {
		vs := mustVariationSet(t, domain.Variation{Size: "M", Color: "Red", Stock: 4})
		assert.ErrorIs(t, vs.Update("M", "Red", -1), domain.ErrInvalidStock)
		assert.Equal(t, 4, vs.StockOf("M", "Red"))
	})
}

func TestVariationSetRemove(t *testing.T) {
	vs := mustVariationSet(t,
		domain.Variation{Size: "M", Color: "Red", Stock: 4},
		domain.Variation{Size: "L", Color: "Red", Stock: 1},
	)

	vs.Remove("M", "Red")
	assert.Zero(t, vs.StockOf("M", "Red"))
	_, ok := vs.Lookup("M", "Red")
	assert.False(t, ok)
	assert.Equal(t, 1, vs.Len())

	vs.Remove("M", "Red")
	vs.Remove("XXL", "Green")
	assert.Equal(t, 1, vs.Len())
	assert.Equal(t, 1, vs.TotalStock())
}

func TestVariationSetDeriver(t *testing.T) {
	t.Run("ExhaustedColorExcluded", func(t *testing.T) {
		vs := mustVariationSet(t,
			domain.Variation{Size: "S", Color: "Red", Stock: 0},
			domain.Variation{Size: "M", Color: "Red", Stock: 0},
			domain.Variation{Size: "S", Color: "Blue", Stock: 3},
		)
		assert.Equal(t, []string{"Blue"}, vs.AvailableColors())
		assert.Empty(t, vs.AvailableSizes("Red"))
	})

	t.Run("UnknownColor", func(t *testing.T) {
		vs := mustVariationSet(t, domain.Variation{Size: "S", Color: "Blue", Stock: 3})
		sizes := vs.AvailableSizes("Purple")
		assert.NotNil(t, sizes)
		assert.Empty(t, sizes)
	})

	t.Run("MissingEqualsZero", func(t *testing.T) {
		vs := mustVariationSet(t, domain.Variation{Size: "S", Color: "Blue", Stock: 0})
		assert.Equal(t, vs.StockOf("S", "Blue"), vs.StockOf("S", "Green"))

		_, configured := vs.Lookup("S", "Blue")
		_, missing := vs.Lookup("S", "Green")
		assert.True(t, configured)
		assert.False(t, missing)
	})

	t.Run("OrderInsensitive", func(t *testing.T) {
		raw := []domain.Variation{
			{Size: "S", Color: "Black", Stock: 2},
			{Size: "M", Color: "White", Stock: 1},
			{Size: "M", Color: "Black", Stock: 4},
			{Size: "L", Color: "Black", Stock: 0},
			{Size: "S", Color: "White", Stock: 5},
		}
		reversed := make([]domain.Variation, len(raw))
		for i, v := range raw {
			reversed[len(raw)-1-i] = v
		}

		a := mustVariationSet(t, raw...)
		b := mustVariationSet(t, reversed...)

		assert.ElementsMatch(t, a.AvailableColors(), b.AvailableColors())
		assert.ElementsMatch(t, a.AvailableSizes("Black"), b.AvailableSizes("Black"))
		assert.ElementsMatch(t, a.AvailableSizes("White"), b.AvailableSizes("White"))
		assert.Equal(t, a.TotalStock(), b.TotalStock())

		assertDistinct(t, a.AvailableColors())
		assertDistinct(t, a.AvailableSizes("Black"))
		assertDistinct(t, b.AvailableColors())
	})

	t.Run("TotalStockIsSum", func(t *testing.T) {
		raw := []domain.Variation{
			{Size: "30", Color: "Navy", Stock: 3},
			{Size: "32", Color: "Navy", Stock: 0},
			{Size: "34", Color: "Navy", Stock: 11},
		}
		vs := mustVariationSet(t, raw...)

		var sum int
		for _, v := range raw {
			sum += v.Stock
		}
		assert.Equal(t, sum, vs.TotalStock())
	})
}

func TestVariationSetClone(t *testing.T) {
	vs := mustVariationSet(t, domain.Variation{Size: "M", Color: "Red", Stock: 4})
	c := vs.Clone()

	require.NoError(t, c.Update("M", "Red", 1))
	require.NoError(t, c.Add("L", "Red", 2))

	assert.Equal(t, 4, vs.StockOf("M", "Red"))
	assert.Equal(t, 1, vs.Len())
	assert.Equal(t, 2, c.Len())
}

func assertDistinct(t *testing.T, ss []string) {
	t.Helper()
	seen := make(map[string]bool)
	for _, s := range ss {
		assert.False(t, seen[s], "duplicate %q", s)
		seen[s] = true
	}
}
