package cart

import (
	"encoding/json"

	"github.com/bindaas/storefront/core/catalog"
	"github.com/shopspring/decimal"
)

// MaxQuantity caps the units of a single line.
const MaxQuantity = 999

func clampQuantity(qty int) int {
	if qty > MaxQuantity {
		return MaxQuantity
	}
	return qty
}

// Item is one product in the cart. Product fields are copied when the item is
// added so the cart renders without going back to the catalog.
type Item struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Category  string          `json:"category"`
	Monthly   bool            `json:"isMonthly"`
	Quantity  int             `json:"quantity"`
}

// Subtotal is the line price, price times quantity.
func (it Item) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Cart holds at most one item per product, in the order products were first
// added. Quantities are always between one and MaxQuantity. The zero value is an empty cart.
//
// A Cart is not safe for concurrent use.
type Cart struct {
	items []Item
}

func (c *Cart) index(productID string) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem puts qty units of p in the cart, merging with an existing line.
// Quantities below one count as one and lines saturate at MaxQuantity.
func (c *Cart) AddItem(p catalog.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	qty = clampQuantity(qty)

	if i := c.index(p.ID); i >= 0 {
		c.items[i].Quantity = clampQuantity(c.items[i].Quantity + qty)
		return
	}

	c.items = append(c.items, Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Category:  p.Category,
		Monthly:   p.Monthly,
		Quantity:  qty,
	})
}

// UpdateQuantity sets the quantity of a line, capped at MaxQuantity. A
// quantity of zero or less removes it. Unknown products are ignored.
func (c *Cart) UpdateQuantity(productID string, qty int) {
	if qty <= 0 {
		c.RemoveItem(productID)
		return
	}

	if i := c.index(productID); i >= 0 {
		c.items[i].Quantity = clampQuantity(qty)
	}
}

func (c *Cart) RemoveItem(productID string) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Contains reports whether the product has a line in the cart.
func (c *Cart) Contains(productID string) bool {
	return c.index(productID) >= 0
}

// Len is the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Total sums the line subtotals. Taxes and shipping are not charged.
func (c *Cart) Total() decimal.Decimal {
	tot := decimal.Zero
	for _, it := range c.items {
		tot = tot.Add(it.Subtotal())
	}
	return tot
}

// ItemCount sums the quantities of all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

type view struct {
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

func (c Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(view{
		Items:     c.Items(),
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	})
}

// UnmarshalJSON restores a cart from its JSON form. Lines repeating a product
// are merged, lines without a positive quantity are dropped and quantities
// are capped at MaxQuantity. Totals in the input are ignored.
func (c *Cart) UnmarshalJSON(b []byte) error {
	var v view
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	c.items = nil
	for _, it := range v.Items {
		if it.Quantity <= 0 {
			continue
		}
		it.Quantity = clampQuantity(it.Quantity)
		if i := c.index(it.ProductID); i >= 0 {
			c.items[i].Quantity = clampQuantity(c.items[i].Quantity + it.Quantity)
			continue
		}
		c.items = append(c.items, it)
	}
	return nil
}
