package service_test

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/mock"
)

var (
	_ port.ProductsStorage       = (*MockProducts)(nil)
	_ port.CategoriesStorage     = (*MockCategories)(nil)
	_ port.HeroImagesStorage     = (*MockHeroImages)(nil)
	_ port.UsersStorage          = (*MockUsers)(nil)
	_ port.CartsStorage          = (*MockCarts)(nil)
	_ port.WishlistsStorage      = (*MockWishlists)(nil)
	_ port.ProductEventsProducer = (*MockEvents)(nil)
	_ port.PasswordHasher        = (*MockHasher)(nil)
	_ port.TokenIssuer           = (*MockTokens)(nil)
)

type mocks struct {
	products   *MockProducts
	categories *MockCategories
	hero       *MockHeroImages
	users      *MockUsers
	carts      *MockCarts
	wishlists  *MockWishlists
	events     *MockEvents
	hasher     *MockHasher
	tokens     *MockTokens
}

func newTestService(cfg service.Config) (service.Service, mocks) {
	m := mocks{
		products:   &MockProducts{},
		categories: &MockCategories{},
		hero:       &MockHeroImages{},
		users:      &MockUsers{},
		carts:      &MockCarts{},
		wishlists:  &MockWishlists{},
		events:     &MockEvents{},
		hasher:     &MockHasher{},
		tokens:     &MockTokens{},
	}
	s := service.New(
		service.Storages{
			Products:   m.products,
			Categories: m.categories,
			HeroImages: m.hero,
			Users:      m.users,
			Carts:      m.carts,
			Wishlists:  m.wishlists,
		},
		m.events, m.hasher, m.tokens, cfg,
	)
	return s, m
}

type MockProducts struct {
	mock.Mock
}

func (m *MockProducts) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockProducts) FindProducts(
	ctx context.Context, featured, isNew bool,
) ([]domain.Product, error) {
	args := m.Called(ctx, featured, isNew)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockProducts) ReadProduct(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProducts) StoreProduct(ctx context.Context, p domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProducts) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCategories struct {
	mock.Mock
}

func (m *MockCategories) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]domain.Category)
	return cs, args.Error(1)
}

func (m *MockCategories) ReadCategory(ctx context.Context, id string) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategories) FindCategoryByName(
	ctx context.Context, name string,
) (domain.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *MockCategories) StoreCategory(ctx context.Context, c domain.Category) error {
	return m.Called(ctx, c).Error(0)
}

type MockHeroImages struct {
	mock.Mock
}

func (m *MockHeroImages) ListHeroImages(ctx context.Context) ([]domain.HeroImage, error) {
	args := m.Called(ctx)
	hs, _ := args.Get(0).([]domain.HeroImage)
	return hs, args.Error(1)
}

func (m *MockHeroImages) ReadHeroImage(ctx context.Context, id string) (domain.HeroImage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.HeroImage), args.Error(1)
}

func (m *MockHeroImages) StoreHeroImage(ctx context.Context, h domain.HeroImage) error {
	return m.Called(ctx, h).Error(0)
}

func (m *MockHeroImages) DeleteHeroImage(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) ReadUser(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUsers) FindUserByMobile(ctx context.Context, mobile string) (domain.User, error) {
	args := m.Called(ctx, mobile)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUsers) ListPendingAdmins(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	us, _ := args.Get(0).([]domain.User)
	return us, args.Error(1)
}

func (m *MockUsers) StoreUser(ctx context.Context, u domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUsers) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCarts struct {
	mock.Mock
}

func (m *MockCarts) ReadCart(ctx context.Context, userID string) (domain.Cart, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCarts) StoreCart(ctx context.Context, c domain.Cart) error {
	return m.Called(ctx, c).Error(0)
}

type MockWishlists struct {
	mock.Mock
}

func (m *MockWishlists) ReadWishlist(ctx context.Context, userID string) (domain.Wishlist, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Wishlist), args.Error(1)
}

func (m *MockWishlists) StoreWishlist(ctx context.Context, w domain.Wishlist) error {
	return m.Called(ctx, w).Error(0)
}

type MockEvents struct {
	mock.Mock
}

func (m *MockEvents) ProduceProductEvent(ctx context.Context, evt domain.ProductEvent) error {
	return m.Called(ctx, evt).Error(0)
}

type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

type MockTokens struct {
	mock.Mock
}

func (m *MockTokens) Issue(p domain.Principal) (string, error) {
	args := m.Called(p)
	return args.String(0), args.Error(1)
}

func (m *MockTokens) Parse(token string) (domain.Principal, error) {
	args := m.Called(token)
	return args.Get(0).(domain.Principal), args.Error(1)
}
