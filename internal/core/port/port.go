package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Inbound ports, used by the http adapter.

type ProductsReader interface {
	ListProducts(context.Context, domain.ProductFilter) ([]domain.Product, error)
	FeaturedProducts(context.Context) ([]domain.Product, error)
	NewArrivals(context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
}

type ProductsEditor interface {
	CreateProduct(context.Context, domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, id string, p domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type VariationsEditor interface {
	AddVariation(ctx context.Context, productID string, v domain.Variation) (domain.Product, error)
	UpdateVariation(ctx context.Context, productID string, v domain.Variation) (domain.Product, error)
	RemoveVariation(ctx context.Context, productID, size, color string) (domain.Product, error)
}

type AvailabilityQuery struct {
	Color    string
	Size     string
	Quantity int
}

type Availability struct {
	Product    domain.Product
	Selection  *domain.Selection
	StockLevel domain.StockLevel
}

type AvailabilityReader interface {
	Availability(ctx context.Context, productID string, q AvailabilityQuery) (Availability, error)
}

type CategoriesManager interface {
	ListCategories(context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string) (domain.Category, error)
	RenameCategory(ctx context.Context, id, name string) (domain.Category, error)
	DeactivateCategory(ctx context.Context, id string) error
	ToggleCategory(ctx context.Context, id string) (domain.Category, error)
}

type HeroImagesManager interface {
	ListHeroImages(context.Context) ([]domain.HeroImage, error)
	CreateHeroImage(context.Context, domain.HeroImage) (domain.HeroImage, error)
	UpdateHeroImage(ctx context.Context, id string, h domain.HeroImage) (domain.HeroImage, error)
	DeleteHeroImage(ctx context.Context, id string) error
}

type UsersManager interface {
	Register(context.Context, domain.Registration) (domain.User, error)
	Login(ctx context.Context, mobile, password string) (domain.Session, error)
	Authenticate(ctx context.Context, token string) (domain.Principal, error)
	PendingAdmins(context.Context) ([]domain.User, error)
	ApproveAdmin(ctx context.Context, id string) error
	RejectAdmin(ctx context.Context, id string) error
}

type CartManager interface {
	Cart(ctx context.Context, userID string) (domain.CartSummary, error)
	AddToCart(ctx context.Context, userID string, l domain.CartLine) (domain.CartSummary, error)
	UpdateCartLine(ctx context.Context, userID string, l domain.CartLine) (domain.CartSummary, error)
	RemoveFromCart(ctx context.Context, userID string, l domain.CartLine) (domain.CartSummary, error)
	ClearCart(ctx context.Context, userID string) error
}

type WishlistManager interface {
	Wishlist(ctx context.Context, userID string) ([]domain.Product, error)
	AddToWishlist(ctx context.Context, userID, productID string) error
	RemoveFromWishlist(ctx context.Context, userID, productID string) error
	ClearWishlist(ctx context.Context, userID string) error
}

type Checkout interface {
	DirectOrder(context.Context, domain.OrderRequest) (domain.OrderLink, error)
	CartOrder(ctx context.Context, userID string) (domain.OrderLink, error)
}

type StatsReader interface {
	DashboardStats(context.Context) (domain.DashboardStats, error)
}

// Outbound ports, implemented by storage, broker and auth adapters.

type ProductsStorage interface {
	ListProducts(context.Context) ([]domain.Product, error)
	FindProducts(ctx context.Context, featured, isNew bool) ([]domain.Product, error)
	ReadProduct(ctx context.Context, id string) (domain.Product, error)
	StoreProduct(context.Context, domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type CategoriesStorage interface {
	ListCategories(context.Context) ([]domain.Category, error)
	ReadCategory(ctx context.Context, id string) (domain.Category, error)
	FindCategoryByName(ctx context.Context, name string) (domain.Category, error)
	StoreCategory(context.Context, domain.Category) error
}

type HeroImagesStorage interface {
	ListHeroImages(context.Context) ([]domain.HeroImage, error)
	ReadHeroImage(ctx context.Context, id string) (domain.HeroImage, error)
	StoreHeroImage(context.Context, domain.HeroImage) error
	DeleteHeroImage(ctx context.Context, id string) error
}

type UsersStorage interface {
	ReadUser(ctx context.Context, id string) (domain.User, error)
	FindUserByMobile(ctx context.Context, mobile string) (domain.User, error)
	ListPendingAdmins(context.Context) ([]domain.User, error)
	StoreUser(context.Context, domain.User) error
	DeleteUser(ctx context.Context, id string) error
}

type CartsStorage interface {
	ReadCart(ctx context.Context, userID string) (domain.Cart, error)
	StoreCart(context.Context, domain.Cart) error
}

type WishlistsStorage interface {
	ReadWishlist(ctx context.Context, userID string) (domain.Wishlist, error)
	StoreWishlist(context.Context, domain.Wishlist) error
}

type ProductEventsProducer interface {
	ProduceProductEvent(context.Context, domain.ProductEvent) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Issue(domain.Principal) (string, error)
	Parse(token string) (domain.Principal, error)
}
