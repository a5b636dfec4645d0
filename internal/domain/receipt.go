package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt summarizes a completed checkout.
type Receipt struct {
	ID        string          `json:"id"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	CreatedAt time.Time       `json:"created_at"`
}
