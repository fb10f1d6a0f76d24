package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AllCategories is the category filter that matches every product.
const AllCategories = "all"

var ErrNotFound = errors.New("product not found")

type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Description   string          `json:"description"`
	Features      []string        `json:"features"`
	Image         string          `json:"image"`
	InStock       bool            `json:"inStock"`
	Monthly       bool            `json:"isMonthly"`
	Rating        float64         `json:"rating"`
	Reviews       int             `json:"reviews"`
}

// Discounted reports whether the product is sold below its original price.
func (p Product) Discounted() bool {
	return p.OriginalPrice.GreaterThan(p.Price)
}

// Savings is the difference to the original price, zero when not discounted.
func (p Product) Savings() decimal.Decimal {
	if !p.Discounted() {
		return decimal.Zero
	}
	return p.OriginalPrice.Sub(p.Price)
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Count       int    `json:"count"`
}

var spaces = regexp.MustCompile(`\s+`)

// Slug normalizes a category display name into its identifier:
// "VPS Hosting" becomes "vps-hosting".
func Slug(name string) string {
	return spaces.ReplaceAllString(strings.ToLower(name), "-")
}

type Sort string

const (
	SortName      Sort = "name"
	SortPriceLow  Sort = "price-low"
	SortPriceHigh Sort = "price-high"
	SortRating    Sort = "rating"
)

var sortAliases = map[string]Sort{
	"":                  SortName,
	"name":              SortName,
	"name-ascending":    SortName,
	"price-low":         SortPriceLow,
	"price-ascending":   SortPriceLow,
	"price-high":        SortPriceHigh,
	"price-descending":  SortPriceHigh,
	"rating":            SortRating,
	"rating-descending": SortRating,
}

// ParseSort maps a sort key, or one of its aliases, to a Sort. The empty key
// sorts by name.
func ParseSort(key string) (Sort, error) {
	s, ok := sortAliases[strings.ToLower(key)]
	if !ok {
		return "", fmt.Errorf("unknown sort key %q", key)
	}
	return s, nil
}

// Catalog is the read-only set of products on sale. It is safe for
// concurrent use.
type Catalog struct {
	products   []Product
	byID       map[string]int
	categories []Category
}

// New builds a catalog. Product identifiers must be unique and no product may
// be priced above its original price.
func New(products []Product, categories []Category) (*Catalog, error) {
	c := Catalog{
		products:   make([]Product, len(products)),
		byID:       make(map[string]int, len(products)),
		categories: make([]Category, len(categories)),
	}
	copy(c.products, products)
	copy(c.categories, categories)

	for i, p := range c.products {
		if p.ID == "" {
			return nil, fmt.Errorf("product[%d] has no id", i)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if !p.OriginalPrice.IsZero() && p.Price.GreaterThan(p.OriginalPrice) {
			return nil, fmt.Errorf("product %q is priced above its original price", p.ID)
		}
		c.byID[p.ID] = i
	}

	for i := range c.categories {
		c.categories[i].Count = 0
		for _, p := range c.products {
			if Slug(p.Category) == c.categories[i].ID {
				c.categories[i].Count++
			}
		}
	}

	return &c, nil
}

// Products returns every product in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) Fetch(id string) (Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, fmt.Errorf("product[%s]: %w", id, ErrNotFound)
	}
	return c.products[i], nil
}

// Search filters the catalog by a case-insensitive term matched against name
// and description and by category identifier, then orders the result. Ties
// keep catalog order.
func (c *Catalog) Search(term string, category string, by Sort) []Product {
	term = strings.ToLower(term)

	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}

		if category != "" && category != AllCategories && Slug(p.Category) != category {
			continue
		}

		out = append(out, p)
	}

	switch by {
	case SortName:
		col := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.LessThan(out[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.GreaterThan(out[j].Price)
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	}

	return out
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Page struct {
	Products   []Product `json:"products"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
}

// Paginate cuts one page out of products. Page numbers start at 1; values
// out of range are clamped.
func Paginate(products []Product, page int, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	total := len(products)
	pg := Page{
		Products:   []Product{},
		Total:      total,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
	}

	start := (page - 1) * limit
	if start >= total {
		return pg
	}

	end := start + limit
	if end > total {
		end = total
	}
	pg.Products = products[start:end]

	return pg
}
