package domain

import (
	"github.com/shopspring/decimal"

	apperrors "github.com/onlinebazaar/cart/pkg/errors"
)

// CartItem pairs a catalog product with a reserved quantity. The product
// pointer is non-owning; the catalog remains the owner of record.
type CartItem struct {
	Product  *Product
	Quantity int
}

// SetQuantity replaces the reserved quantity.
func (i *CartItem) SetQuantity(value int) error {
	if value < 0 {
		return apperrors.InvalidInput("quantity must not be negative")
	}
	i.Quantity = value
	return nil
}

// Subtotal returns price times quantity, recomputed on demand so it is always
// consistent with the current price and quantity.
func (i *CartItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds the cart lines in insertion order. A line exists for a product
// only while its reserved quantity is greater than zero.
type Cart struct {
	Items []CartItem
}

// FindItem returns the index of the cart line for the given product ID.
// Returns -1 if not found.
func (c *Cart) FindItem(productID string) int {
	for i := range c.Items {
		if c.Items[i].Product.ProductID == productID {
			return i
		}
	}
	return -1
}

// Total returns the grand total over all cart lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].Subtotal())
	}
	return total
}

// ItemCount returns the total number of units reserved across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for i := range c.Items {
		count += c.Items[i].Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clear removes all lines.
func (c *Cart) Clear() {
	c.Items = c.Items[:0]
}
