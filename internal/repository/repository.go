package repository

import (
	"context"
	"time"

	"github.com/onlinebazaar/cart/internal/domain"
)

// Transaction log actions.
const (
	ActionAdd    = "ADD"
	ActionRemove = "REMOVE"
	ActionUpdate = "UPDATE"
)

// TransactionEntry is one row of the audit trail.
type TransactionEntry struct {
	Timestamp   time.Time
	Action      string
	ProductID   string
	ProductName string
	Quantity    int
	Details     string
}

// CatalogRepository defines persistence operations for the product catalog.
// Load absorbs missing or corrupt files into an empty result; first-run and
// corruption are both treated as "start fresh".
type CatalogRepository interface {
	Load(ctx context.Context) ([]*domain.Product, error)

	// Save overwrites the full catalog file from the in-memory state.
	Save(ctx context.Context, products []*domain.Product) error
}

// CartRepository defines persistence operations for the cart state.
type CartRepository interface {
	// Load reads the persisted cart lines, resolving each product ID against
	// the already-loaded catalog. Lines referencing unknown products are
	// dropped; the cart can never reference a nonexistent product.
	Load(ctx context.Context, resolve func(productID string) *domain.Product) ([]domain.CartItem, error)

	// Save overwrites the full cart state file from the in-memory state.
	Save(ctx context.Context, items []domain.CartItem) error
}

// TransactionLog appends fixed-column audit records.
type TransactionLog interface {
	Append(ctx context.Context, entry TransactionEntry) error
}
