package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/onlinebazaar/cart/internal/domain"
	"github.com/onlinebazaar/cart/pkg/validator"
)

// productRecord is the load-time shape of a catalog record. Price and
// quantity are pointers so an absent field is distinguishable from a
// legitimate zero; a record missing any required field is skipped.
type productRecord struct {
	Type              string           `json:"type"`
	ProductID         string           `json:"product_id" validate:"required"`
	Name              string           `json:"name" validate:"required"`
	Price             *decimal.Decimal `json:"price" validate:"required"`
	QuantityAvailable *int             `json:"quantity_available" validate:"required,gte=0"`
	Weight            float64          `json:"weight"`
	DownloadLink      string           `json:"download_link"`
}

// CatalogRepository implements repository.CatalogRepository backed by a JSON
// file holding an ordered array of product records.
type CatalogRepository struct {
	path   string
	logger *slog.Logger
}

// NewCatalogRepository creates a new JSON-file-backed catalog repository.
func NewCatalogRepository(path string, logger *slog.Logger) *CatalogRepository {
	return &CatalogRepository{
		path:   path,
		logger: logger,
	}
}

// Load reads the catalog file. A missing or unparsable file yields an empty
// catalog; a record that fails validation is skipped with a warning so the
// rest of the catalog still loads.
func (r *CatalogRepository) Load(ctx context.Context) ([]*domain.Product, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.logger.DebugContext(ctx, "catalog file not readable, starting empty",
			slog.String("path", r.path),
			slog.String("error", err.Error()),
		)
		return nil, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		r.logger.WarnContext(ctx, "catalog file corrupt, starting empty",
			slog.String("path", r.path),
			slog.String("error", err.Error()),
		)
		return nil, nil
	}

	products := make([]*domain.Product, 0, len(records))
	for i, raw := range records {
		var rec productRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			r.logger.WarnContext(ctx, "skipping unparsable catalog record",
				slog.Int("index", i),
				slog.String("error", err.Error()),
			)
			continue
		}
		if err := validator.Validate(&rec); err != nil {
			r.logger.WarnContext(ctx, "skipping invalid catalog record",
				slog.Int("index", i),
				slog.String("error", err.Error()),
			)
			continue
		}
		// An absent or unrecognized discriminator falls back to a bare
		// generic record.
		if !domain.IsValidProductType(rec.Type) {
			rec.Type = domain.ProductTypeGeneric
		}
		products = append(products, &domain.Product{
			Type:              rec.Type,
			ProductID:         rec.ProductID,
			Name:              rec.Name,
			Price:             *rec.Price,
			QuantityAvailable: *rec.QuantityAvailable,
			Weight:            rec.Weight,
			DownloadLink:      rec.DownloadLink,
		})
	}

	return products, nil
}

// Save overwrites the catalog file with the full product list.
func (r *CatalogRepository) Save(ctx context.Context, products []*domain.Product) error {
	if products == nil {
		products = []*domain.Product{}
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if err := writeFileAtomic(r.path, data); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}
	return nil
}
