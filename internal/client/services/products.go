package services

import (
	"context"
	"time"

	"github.com/wip-project/wipcli/internal/client/api"
	"github.com/wip-project/wipcli/internal/client/models"
	"github.com/wip-project/wipcli/internal/logging"
)

// ProductService wraps the product endpoints. Read failures degrade: lists
// come back empty and point reads come back nil, with the cause logged, so
// the surrounding views render an empty state instead of an error. Write
// failures are returned.
type ProductService struct {
	client api.Client
	log    logging.Logger
}

func NewProductService(client api.Client, log logging.Logger) *ProductService {
	return &ProductService{client: client, log: log}
}

// ListByUser returns the user's products, or an empty slice on any failure.
func (s *ProductService) ListByUser(ctx context.Context, userID int64) []models.Product {
	products, err := s.client.ProductsByUser(ctx, userID)
	if err != nil {
		s.log.Warn(ctx, "listing products failed", "user_id", userID, "err", err)
		return []models.Product{}
	}
	if products == nil {
		products = []models.Product{}
	}
	return products
}

// GetByID returns the product, or nil on any failure.
func (s *ProductService) GetByID(ctx context.Context, id int64) *models.Product {
	p, err := s.client.ProductByID(ctx, id)
	if err != nil {
		s.log.Warn(ctx, "fetching product failed", "product_id", id, "err", err)
		return nil
	}
	return p
}

func (s *ProductService) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	return s.client.CreateProduct(ctx, p)
}

// Increment raises the quantity by one and re-persists the whole record.
func (s *ProductService) Increment(ctx context.Context, p models.Product) (*models.Product, error) {
	p.Quantity++
	return s.client.UpdateProduct(ctx, p)
}

// Decrement lowers the quantity by one with a floor at zero. At zero no
// request is issued at all: a negative quantity must never reach the wire.
func (s *ProductService) Decrement(ctx context.Context, p models.Product) (*models.Product, error) {
	if p.Quantity <= 0 {
		p.Quantity = 0
		return &p, nil
	}
	p.Quantity--
	return s.client.UpdateProduct(ctx, p)
}

// Delete removes a product. The backend endpoint exists but no interactive
// command calls it; kept for API completeness.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteProduct(ctx, id)
}

// LowStock filters the user's products down to those at or below threshold.
func (s *ProductService) LowStock(ctx context.Context, userID int64, threshold int) []models.Product {
	return models.LowStock(s.ListByUser(ctx, userID), threshold)
}

// ExpiringSoon filters the user's products down to those expiring within
// window from now. Products without an expiration date are never included.
func (s *ProductService) ExpiringSoon(ctx context.Context, userID int64, window time.Duration) []models.Product {
	return models.ExpiringWithin(s.ListByUser(ctx, userID), time.Now(), window)
}
