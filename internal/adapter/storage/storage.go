// Package storage holds the document shapes shared by the document store
// adapters.
package storage

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
)

type (
	Product struct {
		ID            string      `json:"id" bson:"id"`
		Name          string      `json:"name" bson:"name"`
		Description   string      `json:"description" bson:"description"`
		Price         float64     `json:"price" bson:"price"`
		OriginalPrice float64     `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
		Images        []string    `json:"images" bson:"images"`
		Category      string      `json:"category" bson:"category"`
		IsNew         bool        `json:"isNew" bson:"isNew"`
		IsFeatured    bool        `json:"isFeatured" bson:"isFeatured"`
		Variations    []Variation `json:"variations" bson:"variations"`
		Sizes         []string    `json:"sizes" bson:"sizes"`
		Color         string      `json:"color,omitempty" bson:"color,omitempty"`
	}

	Variation struct {
		Size  string `json:"size" bson:"size"`
		Color string `json:"color" bson:"color"`
		Stock int    `json:"stock" bson:"stock"`
	}
)

func ProductFromDomain(p domain.Product) Product {
	d := Product{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Images:        p.Images,
		Category:      p.Category,
		IsNew:         p.IsNew,
		IsFeatured:    p.IsFeatured,
		Sizes:         p.Sizes(),
		Color:         p.Color,
	}

	vs := p.Variations.Variations()
	d.Variations = make([]Variation, len(vs))
	for i, v := range vs {
		d.Variations[i] = Variation(v)
	}
	return d
}

// ToDomain rebuilds the product. Documents written by older clients may
// repeat a size/color pair; that is reported as an error.
func (d Product) ToDomain() (domain.Product, error) {
	const op = "storage.Product.ToDomain"

	raw := make([]domain.Variation, len(d.Variations))
	for i, v := range d.Variations {
		raw[i] = domain.Variation(v)
	}

	vs, err := domain.NewVariationSet(raw)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: product %q: %w", op, d.ID, err)
	}

	return domain.Product{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		Price:         d.Price,
		OriginalPrice: d.OriginalPrice,
		Images:        d.Images,
		Category:      d.Category,
		IsNew:         d.IsNew,
		IsFeatured:    d.IsFeatured,
		Color:         d.Color,
		Variations:    vs,
	}, nil
}

// ProductsToDomain converts listed documents. A malformed document is
// logged and left out so that one bad product does not hide the catalog;
// reading it by id still fails.
func ProductsToDomain(ds []Product) []domain.Product {
	const op = "storage.ProductsToDomain"
	log := slog.With("op", op)

	ps := make([]domain.Product, 0, len(ds))
	for _, d := range ds {
		p, err := d.ToDomain()
		if err != nil {
			log.Warn("skip malformed product document", "productID", d.ID, "err", err)
			continue
		}
		ps = append(ps, p)
	}
	return ps
}

type Category struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	NameKey   string    `json:"nameKey" bson:"nameKey"`
	IsActive  bool      `json:"isActive" bson:"isActive"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CategoryNameKey is the case-insensitive uniqueness key of a name.
func CategoryNameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func CategoryFromDomain(c domain.Category) Category {
	return Category{
		ID:        c.ID,
		Name:      c.Name,
		NameKey:   CategoryNameKey(c.Name),
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (d Category) ToDomain() domain.Category {
	return domain.Category{
		ID:        d.ID,
		Name:      d.Name,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type HeroImage struct {
	ID       string `json:"id" bson:"id"`
	URL      string `json:"url" bson:"url"`
	Title    string `json:"title" bson:"title"`
	Subtitle string `json:"subtitle" bson:"subtitle"`
}

func HeroImageFromDomain(h domain.HeroImage) HeroImage {
	return HeroImage(h)
}

func (d HeroImage) ToDomain() domain.HeroImage {
	return domain.HeroImage(d)
}

type User struct {
	ID         string `json:"id" bson:"id"`
	Name       string `json:"name" bson:"name"`
	Mobile     string `json:"mobile" bson:"mobile"`
	Password   string `json:"password" bson:"password"`
	IsAdmin    bool   `json:"isAdmin" bson:"isAdmin"`
	IsApproved bool   `json:"isApproved" bson:"isApproved"`
}

func UserFromDomain(u domain.User) User {
	return User{
		ID:         u.ID,
		Name:       u.Name,
		Mobile:     u.Mobile,
		Password:   u.PasswordHash,
		IsAdmin:    u.IsAdmin,
		IsApproved: u.IsApproved,
	}
}

func (d User) ToDomain() domain.User {
	return domain.User{
		ID:           d.ID,
		Name:         d.Name,
		Mobile:       d.Mobile,
		PasswordHash: d.Password,
		IsAdmin:      d.IsAdmin,
		IsApproved:   d.IsApproved,
	}
}

type (
	Cart struct {
		UserID string     `json:"userId" bson:"userId"`
		Lines  []CartLine `json:"lines" bson:"lines"`
	}

	CartLine struct {
		ProductID string `json:"productId" bson:"productId"`
		Size      string `json:"size" bson:"size"`
		Color     string `json:"color" bson:"color"`
		Quantity  int    `json:"quantity" bson:"quantity"`
	}
)

func CartFromDomain(c domain.Cart) Cart {
	d := Cart{UserID: c.UserID, Lines: make([]CartLine, len(c.Lines))}
	for i, l := range c.Lines {
		d.Lines[i] = CartLine(l)
	}
	return d
}

func (d Cart) ToDomain() domain.Cart {
	c := domain.Cart{UserID: d.UserID}
	for _, l := range d.Lines {
		c.Lines = append(c.Lines, domain.CartLine(l))
	}
	return c
}

type Wishlist struct {
	UserID     string   `json:"userId" bson:"userId"`
	ProductIDs []string `json:"productIds" bson:"productIds"`
}

func WishlistFromDomain(w domain.Wishlist) Wishlist {
	ids := w.ProductIDs
	if ids == nil {
		ids = []string{}
	}
	return Wishlist{UserID: w.UserID, ProductIDs: ids}
}

func (d Wishlist) ToDomain() domain.Wishlist {
	return domain.Wishlist(d)
}
