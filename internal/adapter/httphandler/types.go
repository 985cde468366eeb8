package httphandler

import (
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/shopspring/decimal"
)

type (
	Variation struct {
		Size  string `json:"size" validate:"required"`
		Color string `json:"color" validate:"required"`
		Stock int    `json:"stock"`
	}

	ProductRequest struct {
		Name          string      `json:"name" validate:"required"`
		Description   string      `json:"description"`
		Price         float64     `json:"price" validate:"gt=0"`
		OriginalPrice float64     `json:"originalPrice" validate:"gte=0"`
		Images        []string    `json:"images" validate:"min=1,dive,required"`
		Category      string      `json:"category" validate:"required"`
		IsNew         bool        `json:"isNew"`
		IsFeatured    bool        `json:"isFeatured"`
		Variations    []Variation `json:"variations" validate:"dive"`
		Color         string      `json:"color"`
	}

	Product struct {
		ID              string      `json:"id"`
		Name            string      `json:"name"`
		Description     string      `json:"description"`
		Price           float64     `json:"price"`
		OriginalPrice   float64     `json:"originalPrice,omitempty"`
		Discount        int         `json:"discount,omitempty"`
		Images          []string    `json:"images"`
		Category        string      `json:"category"`
		IsNew           bool        `json:"isNew"`
		IsFeatured      bool        `json:"isFeatured"`
		Variations      []Variation `json:"variations"`
		Sizes           []string    `json:"sizes"`
		Colors          []string    `json:"colors"`
		AvailableColors []string    `json:"availableColors"`
		TotalStock      int         `json:"totalStock"`
		Color           string      `json:"color,omitempty"`
	}

	Availability struct {
		ProductID     string   `json:"productId"`
		Colors        []string `json:"colors"`
		Sizes         []string `json:"sizes"`
		SelectedColor string   `json:"selectedColor"`
		SelectedSize  string   `json:"selectedSize"`
		Quantity      int      `json:"quantity"`
		Stock         int      `json:"stock"`
		TotalStock    int      `json:"totalStock"`
		StockLevel    string   `json:"stockLevel"`
	}
)

func (req ProductRequest) toDomain() (domain.Product, error) {
	raw := make([]domain.Variation, len(req.Variations))
	for i, v := range req.Variations {
		raw[i] = domain.Variation(v)
	}

	vs, err := domain.NewVariationSet(raw)
	if err != nil {
		return domain.Product{}, err
	}

	return domain.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Images:        req.Images,
		Category:      req.Category,
		IsNew:         req.IsNew,
		IsFeatured:    req.IsFeatured,
		Color:         req.Color,
		Variations:    vs,
	}, nil
}

func productFromDomain(p domain.Product) Product {
	vs := p.Variations.Variations()
	variations := make([]Variation, len(vs))
	for i, v := range vs {
		variations[i] = Variation(v)
	}

	images := p.Images
	if images == nil {
		images = []string{}
	}

	return Product{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		Discount:        p.Discount(),
		Images:          images,
		Category:        p.Category,
		IsNew:           p.IsNew,
		IsFeatured:      p.IsFeatured,
		Variations:      variations,
		Sizes:           p.Sizes(),
		Colors:          p.Variations.Colors(),
		AvailableColors: p.Variations.AvailableColors(),
		TotalStock:      p.TotalStock(),
		Color:           p.Color,
	}
}

func productsFromDomain(ps []domain.Product) []Product {
	res := make([]Product, len(ps))
	for i, p := range ps {
		res[i] = productFromDomain(p)
	}
	return res
}

func availabilityFromPort(a port.Availability) Availability {
	sel := a.Selection
	return Availability{
		ProductID:     a.Product.ID,
		Colors:        sel.Colors(),
		Sizes:         sel.Sizes(),
		SelectedColor: sel.Color(),
		SelectedSize:  sel.Size(),
		Quantity:      sel.Quantity(),
		Stock:         sel.Stock(),
		TotalStock:    a.Product.TotalStock(),
		StockLevel:    string(a.StockLevel),
	}
}

type (
	CategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	Category struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		IsActive  bool      `json:"isActive"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}

	HeroImage struct {
		ID       string `json:"id"`
		URL      string `json:"url" validate:"required,url"`
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
	}
)

func categoryFromDomain(c domain.Category) Category {
	return Category(c)
}

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Mobile   string `json:"mobile" validate:"required,min=7"`
		Password string `json:"password" validate:"required,min=6"`
		IsAdmin  bool   `json:"isAdmin"`
	}

	LoginRequest struct {
		Mobile   string `json:"mobile" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	User struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Mobile     string `json:"mobile"`
		IsAdmin    bool   `json:"isAdmin"`
		IsApproved bool   `json:"isApproved"`
	}

	Session struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}

	Stats struct {
		Products         int `json:"products"`
		ActiveCategories int `json:"activeCategories"`
		OutOfStock       int `json:"outOfStock"`
		LowStock         int `json:"lowStock"`
		PendingApprovals int `json:"pendingApprovals"`
	}
)

func userFromDomain(u domain.User) User {
	return User{
		ID:         u.ID,
		Name:       u.Name,
		Mobile:     u.Mobile,
		IsAdmin:    u.IsAdmin,
		IsApproved: u.IsApproved,
	}
}

type (
	CartLineRequest struct {
		ProductID string `json:"productId" validate:"required"`
		Size      string `json:"size" validate:"required"`
		Color     string `json:"color" validate:"required"`
		Quantity  int    `json:"quantity"`
	}

	CartItem struct {
		ProductID string          `json:"productId"`
		Size      string          `json:"size"`
		Color     string          `json:"color"`
		Quantity  int             `json:"quantity"`
		Product   Product         `json:"product"`
		LineTotal decimal.Decimal `json:"lineTotal"`
	}

	Cart struct {
		Items []CartItem      `json:"items"`
		Count int             `json:"count"`
		Total decimal.Decimal `json:"total"`
	}

	OrderRequest struct {
		ProductID string `json:"productId" validate:"required"`
		Color     string `json:"color" validate:"required"`
		Size      string `json:"size" validate:"required"`
		Quantity  int    `json:"quantity"`
	}

	OrderLink struct {
		URL     string `json:"url"`
		Message string `json:"message"`
	}
)

func (req CartLineRequest) toDomain() domain.CartLine {
	return domain.CartLine(req)
}

func cartFromDomain(s domain.CartSummary) Cart {
	items := make([]CartItem, len(s.Items))
	for i, it := range s.Items {
		items[i] = CartItem{
			ProductID: it.ProductID,
			Size:      it.Size,
			Color:     it.Color,
			Quantity:  it.Quantity,
			Product:   productFromDomain(it.Product),
			LineTotal: it.LineTotal(),
		}
	}
	return Cart{Items: items, Count: s.Count, Total: s.Total}
}
