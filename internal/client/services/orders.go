package services

import (
	"context"
	"sync"
	"time"

	"github.com/wip-project/wipcli/internal/client/api"
	"github.com/wip-project/wipcli/internal/client/models"
	"github.com/wip-project/wipcli/internal/logging"
)

// OrderService wraps the order endpoints and enriches listings with the
// referenced product and supplier records.
type OrderService struct {
	client    api.Client
	products  *ProductService
	suppliers *SupplierService
	log       logging.Logger

	// now is a seam for tests; defaults to time.Now.
	now func() time.Time
}

func NewOrderService(client api.Client, products *ProductService, suppliers *SupplierService, log logging.Logger) *OrderService {
	return &OrderService{
		client:    client,
		products:  products,
		suppliers: suppliers,
		log:       log,
		now:       time.Now,
	}
}

// Create places an order for a quantity of a product with a supplier. The
// order date is stamped client-side with today's date; the backend assigns
// the id and owns the status from then on.
func (s *OrderService) Create(ctx context.Context, productID, supplierID, userID int64, quantity int) (*models.Order, error) {
	o := models.Order{
		ProductID:  productID,
		SupplierID: supplierID,
		UserID:     userID,
		Quantity:   quantity,
		OrderDate:  s.now().Format(models.DateLayout),
	}
	return s.client.CreateOrder(ctx, o)
}

// GetByID returns the order, or nil on any failure.
func (s *OrderService) GetByID(ctx context.Context, id int64) *models.Order {
	o, err := s.client.OrderByID(ctx, id)
	if err != nil {
		s.log.Warn(ctx, "fetching order failed", "order_id", id, "err", err)
		return nil
	}
	return o
}

// ListByUser returns the user's orders enriched with their product and
// supplier. The two point reads per order are issued together and awaited
// jointly, with no ordering between them. A failed resolution leaves the
// corresponding field nil without discarding the order, and the status is
// normalized (absent or unrecognized values default to pending). On a list
// failure the result is an empty slice.
func (s *OrderService) ListByUser(ctx context.Context, userID int64) []models.EnrichedOrder {
	orders, err := s.client.OrdersByUser(ctx, userID)
	if err != nil {
		s.log.Warn(ctx, "listing orders failed", "user_id", userID, "err", err)
		return []models.EnrichedOrder{}
	}

	enriched := make([]models.EnrichedOrder, len(orders))
	var wg sync.WaitGroup
	for i, o := range orders {
		enriched[i] = models.EnrichedOrder{Order: o, Status: models.ParseOrderStatus(o.Status)}

		wg.Add(2)
		go func(i int, id int64) {
			defer wg.Done()
			enriched[i].Product = s.products.GetByID(ctx, id)
		}(i, o.ProductID)
		go func(i int, id int64) {
			defer wg.Done()
			enriched[i].Supplier = s.suppliers.GetByID(ctx, id)
		}(i, o.SupplierID)
	}
	wg.Wait()
	return enriched
}
