package domain

import (
	"github.com/shopspring/decimal"

	apperrors "github.com/onlinebazaar/cart/pkg/errors"
)

// Product type discriminators as they appear in the catalog file.
const (
	ProductTypeGeneric  = "generic"
	ProductTypePhysical = "physical"
	ProductTypeDigital  = "digital"
)

// Product represents a catalog entry. The type tag selects which of the
// variant fields is meaningful (weight for physical, download link for
// digital); inventory behavior never branches on it.
type Product struct {
	Type              string          `json:"type"`
	ProductID         string          `json:"product_id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	QuantityAvailable int             `json:"quantity_available"`
	Weight            float64         `json:"weight,omitempty"`
	DownloadLink      string          `json:"download_link,omitempty"`
}

// DecreaseAvailable subtracts amount from the available quantity. It is a
// no-op returning false when amount is non-positive or exceeds the available
// quantity; the caller is expected to have checked stock before committing to
// a user-driven decrease.
func (p *Product) DecreaseAvailable(amount int) bool {
	if amount <= 0 || amount > p.QuantityAvailable {
		return false
	}
	p.QuantityAvailable -= amount
	return true
}

// IncreaseAvailable adds amount to the available quantity. There is no upper
// bound; stock returned from the cart grows it freely.
func (p *Product) IncreaseAvailable(amount int) error {
	if amount <= 0 {
		return apperrors.InvalidInput("amount must be positive")
	}
	p.QuantityAvailable += amount
	return nil
}

// SetAvailable replaces the available quantity.
func (p *Product) SetAvailable(value int) error {
	if value < 0 {
		return apperrors.InvalidInput("quantity must not be negative")
	}
	p.QuantityAvailable = value
	return nil
}

// IsValidProductType checks whether the given tag is a known product type.
func IsValidProductType(t string) bool {
	return t == ProductTypeGeneric || t == ProductTypePhysical || t == ProductTypeDigital
}
