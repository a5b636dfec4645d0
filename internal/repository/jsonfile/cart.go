package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/onlinebazaar/cart/internal/domain"
)

// cartLineRecord is the serialized form of a single cart line.
type cartLineRecord struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartRepository implements repository.CartRepository backed by a JSON file
// holding an ordered array of (product_id, quantity) pairs.
type CartRepository struct {
	path   string
	logger *slog.Logger
}

// NewCartRepository creates a new JSON-file-backed cart repository.
func NewCartRepository(path string, logger *slog.Logger) *CartRepository {
	return &CartRepository{
		path:   path,
		logger: logger,
	}
}

// Load reads the cart state file. A missing or unparsable file yields an
// empty cart. Lines referencing a product the resolver does not know are
// silently dropped, as are lines with a non-positive quantity.
func (r *CartRepository) Load(ctx context.Context, resolve func(productID string) *domain.Product) ([]domain.CartItem, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.logger.DebugContext(ctx, "cart state file not readable, starting empty",
			slog.String("path", r.path),
			slog.String("error", err.Error()),
		)
		return nil, nil
	}

	var records []cartLineRecord
	if err := json.Unmarshal(data, &records); err != nil {
		r.logger.WarnContext(ctx, "cart state file corrupt, starting empty",
			slog.String("path", r.path),
			slog.String("error", err.Error()),
		)
		return nil, nil
	}

	items := make([]domain.CartItem, 0, len(records))
	for _, rec := range records {
		product := resolve(rec.ProductID)
		if product == nil {
			r.logger.DebugContext(ctx, "dropping cart line for unknown product",
				slog.String("product_id", rec.ProductID),
			)
			continue
		}
		if rec.Quantity <= 0 {
			r.logger.WarnContext(ctx, "dropping cart line with non-positive quantity",
				slog.String("product_id", rec.ProductID),
				slog.Int("quantity", rec.Quantity),
			)
			continue
		}
		items = append(items, domain.CartItem{Product: product, Quantity: rec.Quantity})
	}

	return items, nil
}

// Save overwrites the cart state file with the full line list.
func (r *CartRepository) Save(ctx context.Context, items []domain.CartItem) error {
	records := make([]cartLineRecord, 0, len(items))
	for i := range items {
		records = append(records, cartLineRecord{
			ProductID: items[i].Product.ProductID,
			Quantity:  items[i].Quantity,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cart state: %w", err)
	}

	if err := writeFileAtomic(r.path, data); err != nil {
		return fmt.Errorf("write cart state file: %w", err)
	}
	return nil
}
