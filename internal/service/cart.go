package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/onlinebazaar/cart/internal/domain"
	"github.com/onlinebazaar/cart/internal/metrics"
	"github.com/onlinebazaar/cart/internal/repository"
	apperrors "github.com/onlinebazaar/cart/pkg/errors"
)

// CartService implements the inventory ledger: every successful mutation
// moves units between the catalog's available quantity and the cart's
// reserved quantity, keeping their sum constant per product, then persists
// both stores and appends an audit record.
//
// Validation failures (unknown product, non-positive or negative quantity,
// no such cart line) are reported as a false result with a nil error so
// callers can re-prompt. An inventory shortfall is a distinct error
// detectable with errors.Is(err, apperrors.ErrInsufficientStock).
// Persistence failures propagate as uncategorized errors.
type CartService struct {
	catalogRepo repository.CatalogRepository
	cartRepo    repository.CartRepository
	txlog       repository.TransactionLog
	metrics     *metrics.Metrics
	logger      *slog.Logger

	catalog map[string]*domain.Product
	order   []string
	cart    *domain.Cart
}

// NewCartService creates a new cart service. Call Load before use.
func NewCartService(
	catalogRepo repository.CatalogRepository,
	cartRepo repository.CartRepository,
	txlog repository.TransactionLog,
	m *metrics.Metrics,
	logger *slog.Logger,
) *CartService {
	return &CartService{
		catalogRepo: catalogRepo,
		cartRepo:    cartRepo,
		txlog:       txlog,
		metrics:     m,
		logger:      logger,
		catalog:     make(map[string]*domain.Product),
		cart:        &domain.Cart{},
	}
}

// Load reads the catalog and the cart state from the repositories. Cart
// lines referencing products absent from the catalog are dropped by the
// repository. Missing or corrupt files surface as empty collections.
func (s *CartService) Load(ctx context.Context) error {
	products, err := s.catalogRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	s.catalog = make(map[string]*domain.Product, len(products))
	s.order = s.order[:0]
	for _, p := range products {
		if _, exists := s.catalog[p.ProductID]; exists {
			s.logger.WarnContext(ctx, "skipping catalog record with duplicate id",
				slog.String("product_id", p.ProductID),
			)
			continue
		}
		s.catalog[p.ProductID] = p
		s.order = append(s.order, p.ProductID)
	}

	items, err := s.cartRepo.Load(ctx, func(productID string) *domain.Product {
		return s.catalog[productID]
	})
	if err != nil {
		return fmt.Errorf("load cart state: %w", err)
	}
	s.cart = &domain.Cart{Items: items}

	s.syncCartGauges()
	s.logger.InfoContext(ctx, "state loaded",
		slog.Int("products", len(s.catalog)),
		slog.Int("cart_lines", len(s.cart.Items)),
	)
	return nil
}

// SeedSampleCatalog populates and persists the starter catalog when the
// loaded catalog is empty. It is a no-op on a non-empty catalog.
func (s *CartService) SeedSampleCatalog(ctx context.Context) error {
	if len(s.catalog) > 0 {
		return nil
	}

	for _, p := range domain.SampleCatalog() {
		s.catalog[p.ProductID] = p
		s.order = append(s.order, p.ProductID)
	}

	if err := s.catalogRepo.Save(ctx, s.Products()); err != nil {
		return fmt.Errorf("save seeded catalog: %w", err)
	}

	s.logger.InfoContext(ctx, "sample catalog seeded",
		slog.Int("products", len(s.catalog)),
	)
	return nil
}

// AddItem reserves quantity units of a product: catalog stock decreases and
// the cart line grows (or is created). Returns false with a nil error for an
// unknown product or non-positive quantity; returns an insufficient-stock
// error, naming the product and the available amount, when the request
// exceeds stock. Neither store changes on any failure.
func (s *CartService) AddItem(ctx context.Context, productID string, quantity int) (bool, error) {
	p, ok := s.catalog[productID]
	if !ok || quantity <= 0 {
		return false, nil
	}
	if p.QuantityAvailable < quantity {
		return false, apperrors.InsufficientStock(p.Name, quantity, p.QuantityAvailable)
	}
	if !p.DecreaseAvailable(quantity) {
		return false, nil
	}

	if i := s.cart.FindItem(productID); i >= 0 {
		s.cart.Items[i].Quantity += quantity
	} else {
		s.cart.Items = append(s.cart.Items, domain.CartItem{Product: p, Quantity: quantity})
	}

	if err := s.persist(ctx); err != nil {
		return false, err
	}
	if err := s.appendLog(ctx, repository.ActionAdd, p, quantity, ""); err != nil {
		return false, err
	}

	s.metrics.ObserveOperation(repository.ActionAdd)
	s.syncCartGauges()
	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
		slog.Int("available", p.QuantityAvailable),
	)
	return true, nil
}

// RemoveItem returns a line's full reserved quantity to the catalog and
// deletes the line. Returns false with a nil error when no line exists.
func (s *CartService) RemoveItem(ctx context.Context, productID string) (bool, error) {
	i := s.cart.FindItem(productID)
	if i < 0 {
		return false, nil
	}

	item := s.cart.Items[i]
	p := item.Product
	if err := p.IncreaseAvailable(item.Quantity); err != nil {
		return false, err
	}
	s.cart.Items = append(s.cart.Items[:i], s.cart.Items[i+1:]...)

	if err := s.persist(ctx); err != nil {
		return false, err
	}
	if err := s.appendLog(ctx, repository.ActionRemove, p, item.Quantity, ""); err != nil {
		return false, err
	}

	s.metrics.ObserveOperation(repository.ActionRemove)
	s.syncCartGauges()
	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("product_id", productID),
		slog.Int("quantity", item.Quantity),
		slog.Int("available", p.QuantityAvailable),
	)
	return true, nil
}

// UpdateQuantity changes a line's reserved quantity to newQuantity, moving
// the difference to or from catalog stock. Returns false with a nil error
// when no line exists or newQuantity is negative. Setting the current
// quantity again is an idempotent success that touches neither files nor
// log. Updating to zero deletes the line, logged as UPDATE rather than
// REMOVE.
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, newQuantity int) (bool, error) {
	i := s.cart.FindItem(productID)
	if i < 0 || newQuantity < 0 {
		return false, nil
	}

	item := &s.cart.Items[i]
	p := item.Product
	current := item.Quantity
	if newQuantity == current {
		return true, nil
	}

	diff := newQuantity - current
	if diff > 0 {
		if p.QuantityAvailable < diff {
			return false, apperrors.InsufficientStock(p.Name, diff, p.QuantityAvailable)
		}
		if !p.DecreaseAvailable(diff) {
			return false, nil
		}
	} else {
		if err := p.IncreaseAvailable(-diff); err != nil {
			return false, err
		}
	}

	if newQuantity == 0 {
		s.cart.Items = append(s.cart.Items[:i], s.cart.Items[i+1:]...)
	} else {
		if err := item.SetQuantity(newQuantity); err != nil {
			return false, err
		}
	}

	if err := s.persist(ctx); err != nil {
		return false, err
	}
	details := fmt.Sprintf("previous quantity: %d", current)
	if err := s.appendLog(ctx, repository.ActionUpdate, p, newQuantity, details); err != nil {
		return false, err
	}

	s.metrics.ObserveOperation(repository.ActionUpdate)
	s.syncCartGauges()
	s.logger.InfoContext(ctx, "cart quantity updated",
		slog.String("product_id", productID),
		slog.Int("previous_quantity", current),
		slog.Int("quantity", newQuantity),
		slog.Int("available", p.QuantityAvailable),
	)
	return true, nil
}

// Checkout clears the cart and persists the now-empty state. Checked-out
// stock is consumed, not returned to the catalog, and no audit record is
// written. An empty cart (zero total) is reported with ErrEmptyCart instead
// of succeeding.
func (s *CartService) Checkout(ctx context.Context) (*domain.Receipt, error) {
	total := s.cart.Total()
	if !total.IsPositive() {
		return nil, apperrors.EmptyCart()
	}

	receipt := &domain.Receipt{
		ID:        uuid.New().String(),
		Total:     total,
		ItemCount: s.cart.ItemCount(),
		CreatedAt: time.Now().UTC(),
	}

	s.cart.Clear()
	if err := s.cartRepo.Save(ctx, s.cart.Items); err != nil {
		return nil, fmt.Errorf("save cart state: %w", err)
	}

	s.syncCartGauges()
	s.logger.InfoContext(ctx, "checkout complete",
		slog.String("receipt_id", receipt.ID),
		slog.String("total", receipt.Total.StringFixed(2)),
		slog.Int("item_count", receipt.ItemCount),
	)
	return receipt, nil
}

// GetTotal returns the grand total over all cart lines. Pure read.
func (s *CartService) GetTotal() decimal.Decimal {
	return s.cart.Total()
}

// GetProduct looks up a catalog entry by ID.
func (s *CartService) GetProduct(productID string) (*domain.Product, bool) {
	p, ok := s.catalog[productID]
	return p, ok
}

// Products returns the catalog entries in load order, for rendering.
func (s *CartService) Products() []*domain.Product {
	products := make([]*domain.Product, 0, len(s.order))
	for _, id := range s.order {
		products = append(products, s.catalog[id])
	}
	return products
}

// Items returns a copy of the cart lines in insertion order, for rendering.
func (s *CartService) Items() []domain.CartItem {
	items := make([]domain.CartItem, len(s.cart.Items))
	copy(items, s.cart.Items)
	return items
}

// persist flushes both the catalog and the cart state files.
func (s *CartService) persist(ctx context.Context) error {
	if err := s.catalogRepo.Save(ctx, s.Products()); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	if err := s.cartRepo.Save(ctx, s.cart.Items); err != nil {
		return fmt.Errorf("save cart state: %w", err)
	}
	return nil
}

func (s *CartService) appendLog(ctx context.Context, action string, p *domain.Product, quantity int, details string) error {
	entry := repository.TransactionEntry{
		Timestamp:   time.Now(),
		Action:      action,
		ProductID:   p.ProductID,
		ProductName: p.Name,
		Quantity:    quantity,
		Details:     details,
	}
	if err := s.txlog.Append(ctx, entry); err != nil {
		return fmt.Errorf("append transaction log: %w", err)
	}
	return nil
}

func (s *CartService) syncCartGauges() {
	s.metrics.SetCartState(s.cart.ItemCount(), s.cart.Total())
}
