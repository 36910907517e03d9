package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/wip-project/wipcli/internal/client/models"
)

const (
	lowStockThreshold = 5
	expiryWindow      = 7 * 24 * time.Hour
)

// Stock lists the user's products, flagging low stock and items expiring
// within a week. A backend failure shows an empty list; the cause is in the
// logs.
func (a *App) Stock(ctx context.Context) error {
	u := a.sess.Current()
	products := a.products.ListByUser(ctx, u.ID)
	if len(products) == 0 {
		printlnFn("No products.")
		return nil
	}

	low := map[int64]bool{}
	for _, p := range models.LowStock(products, lowStockThreshold) {
		low[p.ID] = true
	}
	expiring := map[int64]bool{}
	for _, p := range models.ExpiringWithin(products, time.Now(), expiryWindow) {
		expiring[p.ID] = true
	}

	for _, p := range products {
		line := fmt.Sprintf("#%d %s — qty %d", p.ID, p.Name, p.Quantity)
		if p.ExpirationDate != "" {
			line += fmt.Sprintf(", expires %s", p.ExpirationDate)
		}
		if low[p.ID] {
			line += " [LOW STOCK]"
		}
		if expiring[p.ID] {
			line += " [EXPIRING SOON]"
		}
		printlnFn(line)
	}
	return nil
}

// AddItem prompts for a new product and creates it.
func (a *App) AddItem(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Product name", os.Stdout)
	if err != nil {
		return err
	}
	qtyStr, err := getSimpleText(a.reader, "Quantity", os.Stdout)
	if err != nil {
		return err
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty < 0 {
		printlnFn("Quantity must be a non-negative number.")
		return nil
	}
	expiration, err := getSimpleText(a.reader, "Expiration date (YYYY-MM-DD, empty for none)", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.products.Create(ctx, models.Product{
		Name:           name,
		Quantity:       qty,
		ExpirationDate: expiration,
		UserID:         a.sess.Current().ID,
	})
	if err != nil {
		printlnFn("Could not add product:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Added #%d %s", created.ID, created.Name))
	return nil
}

// Inc increases a product's quantity by one.
func (a *App) Inc(ctx context.Context, id string) error {
	return a.adjustQuantity(ctx, id, a.products.Increment)
}

// Dec decreases a product's quantity by one. At zero this is a no-op.
func (a *App) Dec(ctx context.Context, id string) error {
	return a.adjustQuantity(ctx, id, a.products.Decrement)
}

func (a *App) adjustQuantity(ctx context.Context, id string, fn func(context.Context, models.Product) (*models.Product, error)) error {
	pid, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		printlnFn("Invalid product id:", id)
		return nil
	}
	p := a.products.GetByID(ctx, pid)
	if p == nil {
		printlnFn("Product not found:", id)
		return nil
	}
	updated, err := fn(ctx, *p)
	if err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("#%d %s — qty %d", updated.ID, updated.Name, updated.Quantity))
	return nil
}
