package services

import (
	"context"

	"github.com/wip-project/wipcli/internal/client/api"
	"github.com/wip-project/wipcli/internal/client/models"
	"github.com/wip-project/wipcli/internal/logging"
)

// SupplierService wraps the supplier endpoints. Suppliers are created once
// and read-only afterwards; reads degrade like the other domain services.
type SupplierService struct {
	client api.Client
	log    logging.Logger
}

func NewSupplierService(client api.Client, log logging.Logger) *SupplierService {
	return &SupplierService{client: client, log: log}
}

// ListByUser returns the user's suppliers, or an empty slice on any failure.
func (s *SupplierService) ListByUser(ctx context.Context, userID int64) []models.Supplier {
	suppliers, err := s.client.SuppliersByUser(ctx, userID)
	if err != nil {
		s.log.Warn(ctx, "listing suppliers failed", "user_id", userID, "err", err)
		return []models.Supplier{}
	}
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}
	return suppliers
}

// GetByID returns the supplier, or nil on any failure.
func (s *SupplierService) GetByID(ctx context.Context, id int64) *models.Supplier {
	sup, err := s.client.SupplierByID(ctx, id)
	if err != nil {
		s.log.Warn(ctx, "fetching supplier failed", "supplier_id", id, "err", err)
		return nil
	}
	return sup
}

func (s *SupplierService) Create(ctx context.Context, sup models.Supplier) (*models.Supplier, error) {
	return s.client.CreateSupplier(ctx, sup)
}
