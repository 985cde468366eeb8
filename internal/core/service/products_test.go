package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T) domain.Product {
	t.Helper()
	vs, err := domain.NewVariationSet([]domain.Variation{
		{Size: "S", Color: "Black", Stock: 2},
		{Size: "M", Color: "Black", Stock: 0},
		{Size: "S", Color: "White", Stock: 5},
	})
	require.NoError(t, err)
	return domain.Product{
		ID:         "testProductID",
		Name:       "Linen Shirt",
		Price:      40,
		Category:   "Shirts",
		Variations: vs,
	}
}

func TestCreateProduct(t *testing.T) {
	t.Run("StoresAndPublishes", func(t *testing.T) {
		s, m := newTestService(service.Config{})
		p := testProduct(t)
		p.ID = ""

		m.products.On("StoreProduct", mock.Anything,
			mock.MatchedBy(func(p domain.Product) bool { return p.ID != "" }),
		).Return(nil).Once()
		m.events.On("ProduceProductEvent", mock.Anything,
			mock.MatchedBy(func(e domain.ProductEvent) bool {
				return e.Type == domain.ProductCreated && !e.OccurredAt.IsZero()
			}),
		).Return(nil).Once()

		got, err := s.CreateProduct(context.Background(), p)
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, 7, got.TotalStock())
		m.products.AssertExpectations(t)
		m.events.AssertExpectations(t)
	})

	t.Run("PublishFailureIgnored", func(t *testing.T) {
		s, m := newTestService(service.Config{})
		m.products.On("StoreProduct", mock.Anything, mock.Anything).Return(nil)
		m.events.On("ProduceProductEvent", mock.Anything, mock.Anything).
			Return(errors.New("broker down"))

		_, err := s.CreateProduct(context.Background(), testProduct(t))
		assert.NoError(t, err)
	})

	t.Run("StorageError", func(t *testing.T) {
		s, m := newTestService(service.Config{})
		m.products.On("StoreProduct", mock.Anything, mock.Anything).
			Return(errors.New("write failed"))

		_, err := s.CreateProduct(context.Background(), testProduct(t))
		assert.Error(t, err)
		m.events.AssertNotCalled(t, "ProduceProductEvent", mock.Anything, mock.Anything)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		s, m := newTestService(service.Config{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.CreateProduct(ctx, testProduct(t))
		assert.ErrorIs(t, err, context.Canceled)
		m.products.AssertNotCalled(t, "StoreProduct", mock.Anything, mock.Anything)
	})
}

func TestUpdateDeleteProduct(t *testing.T) {
	t.Run("UpdateMissing", func(t *testing.T) {
		s, m := newTestService(service.Config{})
		m.products.On("ReadProduct", mock.Anything, "missing").
			Return(domain.Product{}, domain.ErrNotFound)

		_, err := s.UpdateProduct(context.Background(), "missing", testProduct(t))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("UpdateKeepsID", func(t *testing.T) {
		s, m := newTestService(service.Config{})
		p := testProduct(t)
		m.products.On("ReadProduct", mock.Anything, p.ID).Return(p, nil)
		m.products.On("StoreProduct", mock.Anything,
			mock.MatchedBy(func(got domain.Product) bool {
				return got.ID == p.ID && got.Name == "Oxford Shirt"
			}),
		).Return(nil).Once()
		m.events.On("ProduceProductEvent", mock.Anything,
			mock.MatchedBy(func(e domain.ProductEvent) bool { return e.Type == domain.ProductUpdated }),
		).Return(nil)

		upd := testProduct(t)
		upd.ID = "ignored"
		upd.Name = "Oxford Shirt"
		got, err := s.UpdateProduct(context.Background(), p.ID, upd)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		m.products.AssertExpectations(t)
	})

	t.Run("Delete", func(t *testing.T) {
		s, m := newTestService(service.Config{})
		p := testProduct(t)
		m.products.On("ReadProduct", mock.Anything, p.ID).Return(p, nil)
		m.products.On("DeleteProduct", mock.Anything, p.ID).Return(nil).Once()
		m.events.On("ProduceProductEvent", mock.Anything,
			mock.MatchedBy(func(e domain.ProductEvent) bool {
				return e.Type == domain.ProductDeleted && e.Product.ID == p.ID
			}),
		).Return(nil).Once()

		require.NoError(t, s.DeleteProduct(context.Background(), p.ID))
		m.products.AssertExpectations(t)
		m.events.AssertExpectations(t)
	})
}

func TestListProducts(t *testing.T) {
	s, m := newTestService(service.Config{})
	m.products.On("ListProducts", mock.Anything).Return([]domain.Product{
		{ID: "1", Category: "Shirts", Price: 40},
		{ID: "2", Category: "Jackets", Price: 90},
		{ID: "3", Category: "Shirts", Price: 30},
	}, nil)

	got, err := s.ListProducts(context.Background(), domain.ProductFilter{
		Category: "Shirts",
		Sort:     domain.SortPriceAsc,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
}

func TestFeaturedAndNewArrivals(t *testing.T) {
	s, m := newTestService(service.Config{})
	m.products.On("FindProducts", mock.Anything, true, false).
		Return([]domain.Product{{ID: "f"}}, nil).Once()
	m.products.On("FindProducts", mock.Anything, false, true).
		Return([]domain.Product{{ID: "n"}}, nil).Once()

	featured, err := s.FeaturedProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "f", featured[0].ID)

	arrivals, err := s.NewArrivals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "n", arrivals[0].ID)
	m.products.AssertExpectations(t)
}

func TestVariationMutations(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		s, m := newTestService(service.Config{})
		p := testProduct(t)
		m.products.On("ReadProduct", mock.Anything, p.ID).Return(p, nil)
		m.products.On("StoreProduct", mock.Anything,
			mock.MatchedBy(func(got domain.Product) bool {
				return got.Variations.StockOf("L", "White") == 3
			}),
		).Return(nil).Once()
		m.events.On("ProduceProductEvent", mock.Anything, mock.Anything).Return(nil)

		got, err := s.AddVariation(context.Background(), p.ID,
			domain.Variation{Size: "L", Color: "White", Stock: 3})
		require.NoError(t, err)
		assert.Equal(t, []string{"S", "L"}, got.Variations.AvailableSizes("White"))
		assert.Equal(t, 10, got.TotalStock())
		m.products.AssertExpectations(t)
	})

	t.Run("AddDuplicate", func(t *testing.T) {
		s, m := newTestService(service.Config{})
		p := testProduct(t)
		m.products.On("ReadProduct", mock.Anything, p.ID).Return(p, nil)

		_, err := s.AddVariation(context.Background(), p.ID,
			domain.Variation{Size: "S", Color: "Black", Stock: 9})
		assert.ErrorIs(t, err, domain.ErrDuplicateVariation)
		assert.Equal(t, 2, p.Variations.StockOf("S", "Black"))
		m.products.AssertNotCalled(t, "StoreProduct", mock.Anything, mock.Anything)
		m.events.AssertNotCalled(t, "ProduceProductEvent", mock.Anything, mock.Anything)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		s, m := newTestService(service.Config{})
		p := testProduct(t)
		m.products.On("ReadProduct", mock.Anything, p.ID).Return(p, nil)

		_, err := s.UpdateVariation(context.Background(), p.ID,
			domain.Variation{Size: "XL", Color: "Black", Stock: 1})
		assert.ErrorIs(t, err, domain.ErrVariationNotFound)
		m.products.AssertNotCalled(t, "StoreProduct", mock.Anything, mock.Anything)
	})

	t.Run("UpdateDoesNotTouchRead", func(t *testing.T) {
		s, m := newTestService(service.Config{})
		p := testProduct(t)
		m.products.On("ReadProduct", mock.Anything, p.ID).Return(p, nil)
		m.products.On("StoreProduct", mock.Anything, mock.Anything).Return(nil)
		m.events.On("ProduceProductEvent", mock.Anything, mock.Anything).Return(nil)

		got, err := s.UpdateVariation(context.Background(), p.ID,
			domain.Variation{Size: "M", Color: "Black", Stock: 4})
		require.NoError(t, err)
		assert.Equal(t, 4, got.Variations.StockOf("M", "Black"))
		assert.Zero(t, p.Variations.StockOf("M", "Black"))
	})

	t.Run("Remove", func(t *testing.T) {
		s, m := newTestService(service.Config{})
		p := testProduct(t)
		m.products.On("ReadProduct", mock.Anything, p.ID).Return(p, nil)
		m.products.On("StoreProduct", mock.Anything, mock.Anything).Return(nil)
		m.events.On("ProduceProductEvent", mock.Anything, mock.Anything).Return(nil)

		got, err := s.RemoveVariation(context.Background(), p.ID, "S", "White")
		require.NoError(t, err)
		assert.Equal(t, []string{"Black"}, got.Variations.AvailableColors())
		_, ok := got.Variations.Lookup("S", "White")
		assert.False(t, ok)
	})

	t.Run("ProductMissing", func(t *testing.T) {
		s, m := newTestService(service.Config{})
		m.products.On("ReadProduct", mock.Anything, "missing").
			Return(domain.Product{}, domain.ErrNotFound)

		_, err := s.RemoveVariation(context.Background(), "missing", "S", "White")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAvailability(t *testing.T) {
	s, m := newTestService(service.Config{LowStockThreshold: 3})
	p := testProduct(t)
	m.products.On("ReadProduct", mock.Anything, p.ID).Return(p, nil)

	t.Run("Defaults", func(t *testing.T) {
		a, err := s.Availability(context.Background(), p.ID, port.AvailabilityQuery{})
		require.NoError(t, err)
		assert.Equal(t, "Black", a.Selection.Color())
		assert.Equal(t, "S", a.Selection.Size())
		assert.Equal(t, 1, a.Selection.Quantity())
		assert.Equal(t, domain.LowStock, a.StockLevel)
	})

	t.Run("ColorAndQuantity", func(t *testing.T) {
		a, err := s.Availability(context.Background(), p.ID, port.AvailabilityQuery{
			Color:    "White",
			Quantity: 9,
		})
		require.NoError(t, err)
		assert.Equal(t, "S", a.Selection.Size())
		assert.Equal(t, 5, a.Selection.Quantity())
		assert.Equal(t, domain.InStock, a.StockLevel)
	})

	t.Run("SoldOutSize", func(t *testing.T) {
		_, err := s.Availability(context.Background(), p.ID, port.AvailabilityQuery{
			Color: "Black",
			Size:  "M",
		})
		assert.ErrorIs(t, err, domain.ErrVariationNotFound)
	})

	t.Run("UnknownColor", func(t *testing.T) {
		_, err := s.Availability(context.Background(), p.ID, port.AvailabilityQuery{
			Color: "Green",
		})
		assert.ErrorIs(t, err, domain.ErrVariationNotFound)
	})
}

func TestDashboardStats(t *testing.T) {
	s, m := newTestService(service.Config{LowStockThreshold: 5})

	low, err := domain.NewVariationSet([]domain.Variation{{Size: "S", Color: "Red", Stock: 3}})
	require.NoError(t, err)
	plenty, err := domain.NewVariationSet([]domain.Variation{{Size: "S", Color: "Red", Stock: 30}})
	require.NoError(t, err)

	m.products.On("ListProducts", mock.Anything).Return([]domain.Product{
		{ID: "out"},
		{ID: "low", Variations: low},
		{ID: "in", Variations: plenty},
	}, nil)
	m.categories.On("ListCategories", mock.Anything).Return([]domain.Category{
		{ID: "a", IsActive: true},
		{ID: "b", IsActive: false},
	}, nil)
	m.users.On("ListPendingAdmins", mock.Anything).Return([]domain.User{{ID: "u"}}, nil)

	got, err := s.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DashboardStats{
		Products:         3,
		ActiveCategories: 1,
		OutOfStock:       1,
		LowStock:         1,
		PendingApprovals: 1,
	}, got)
}
