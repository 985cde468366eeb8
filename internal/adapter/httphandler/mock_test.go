package httphandler_test

import (
	"context"
	"net/http"

	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func newTestHandler(svc *MockService) http.Handler {
	mux := http.NewServeMux()
	g := httphandler.NewGuard(svc)
	httphandler.RegisterProducts(mux, g, svc)
	httphandler.RegisterCatalog(mux, g, svc, svc)
	httphandler.RegisterUsers(mux, g, svc, svc)
	httphandler.RegisterShopping(mux, g, svc, svc, svc)
	return httphandler.AllowJSON(mux)
}

func products(args mock.Arguments) []domain.Product {
	ps, _ := args.Get(0).([]domain.Product)
	return ps
}

func (m *MockService) ListProducts(
	ctx context.Context, f domain.ProductFilter,
) ([]domain.Product, error) {
	args := m.Called(ctx, f)
	return products(args), args.Error(1)
}

func (m *MockService) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return products(args), args.Error(1)
}

func (m *MockService) NewArrivals(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return products(args), args.Error(1)
}

func (m *MockService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockService) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockService) UpdateProduct(
	ctx context.Context, id string, p domain.Product,
) (domain.Product, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockService) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) AddVariation(
	ctx context.Context, productID string, v domain.Variation,
) (domain.Product, error) {
	args := m.Called(ctx, productID, v)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockService) UpdateVariation(
	ctx context.Context, productID string, v domain.Variation,
) (domain.Product, error) {
	args := m.Called(ctx, productID, v)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockService) RemoveVariation(
	ctx context.Context, productID, size, color string,
) (domain.Product, error) {
	args := m.Called(ctx, productID, size, color)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockService) Availability(
	ctx context.Context, productID string, q port.AvailabilityQuery,
) (port.Availability, error) {
	args := m.Called(ctx, productID, q)
	return args.Get(0).(port.Availability), args.Error(1)
}

func (m *MockService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]domain.Category)
	return cs, args.Error(1)
}

func (m *MockService) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockService) RenameCategory(
	ctx context.Context, id, name string,
) (domain.Category, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockService) DeactivateCategory(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) ToggleCategory(ctx context.Context, id string) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockService) ListHeroImages(ctx context.Context) ([]domain.HeroImage, error) {
	args := m.Called(ctx)
	hs, _ := args.Get(0).([]domain.HeroImage)
	return hs, args.Error(1)
}

func (m *MockService) CreateHeroImage(
	ctx context.Context, h domain.HeroImage,
) (domain.HeroImage, error) {
	args := m.Called(ctx, h)
	return args.Get(0).(domain.HeroImage), args.Error(1)
}

func (m *MockService) UpdateHeroImage(
	ctx context.Context, id string, h domain.HeroImage,
) (domain.HeroImage, error) {
	args := m.Called(ctx, id, h)
	return args.Get(0).(domain.HeroImage), args.Error(1)
}

func (m *MockService) DeleteHeroImage(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) Register(
	ctx context.Context, r domain.Registration,
) (domain.User, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockService) Login(
	ctx context.Context, mobile, password string,
) (domain.Session, error) {
	args := m.Called(ctx, mobile, password)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *MockService) Authenticate(
	ctx context.Context, token string,
) (domain.Principal, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Principal), args.Error(1)
}

func (m *MockService) PendingAdmins(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	us, _ := args.Get(0).([]domain.User)
	return us, args.Error(1)
}

func (m *MockService) ApproveAdmin(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) RejectAdmin(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) Cart(ctx context.Context, userID string) (domain.CartSummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.CartSummary), args.Error(1)
}

func (m *MockService) AddToCart(
	ctx context.Context, userID string, l domain.CartLine,
) (domain.CartSummary, error) {
	args := m.Called(ctx, userID, l)
	return args.Get(0).(domain.CartSummary), args.Error(1)
}

func (m *MockService) UpdateCartLine(
	ctx context.Context, userID string, l domain.CartLine,
) (domain.CartSummary, error) {
	args := m.Called(ctx, userID, l)
	return args.Get(0).(domain.CartSummary), args.Error(1)
}

func (m *MockService) RemoveFromCart(
	ctx context.Context, userID string, l domain.CartLine,
) (domain.CartSummary, error) {
	args := m.Called(ctx, userID, l)
	return args.Get(0).(domain.CartSummary), args.Error(1)
}

func (m *MockService) ClearCart(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockService) Wishlist(ctx context.Context, userID string) ([]domain.Product, error) {
	args := m.Called(ctx, userID)
	return products(args), args.Error(1)
}

func (m *MockService) AddToWishlist(ctx context.Context, userID, productID string) error {
	return m.Called(ctx, userID, productID).Error(0)
}

func (m *MockService) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	return m.Called(ctx, userID, productID).Error(0)
}

func (m *MockService) ClearWishlist(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockService) DirectOrder(
	ctx context.Context, r domain.OrderRequest,
) (domain.OrderLink, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.OrderLink), args.Error(1)
}

func (m *MockService) CartOrder(ctx context.Context, userID string) (domain.OrderLink, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.OrderLink), args.Error(1)
}

func (m *MockService) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DashboardStats), args.Error(1)
}
