package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// Orders lists the user's orders with product and supplier names resolved.
// An order whose product or supplier no longer exists is still shown, with
// the missing side marked.
func (a *App) Orders(ctx context.Context) error {
	orders := a.orders.ListByUser(ctx, a.sess.Current().ID)
	if len(orders) == 0 {
		printlnFn("No orders.")
		return nil
	}
	for _, o := range orders {
		product := "(unknown product)"
		if o.Product != nil {
			product = o.Product.Name
		}
		supplier := "(unknown supplier)"
		if o.Supplier != nil {
			supplier = o.Supplier.CompanyName
		}
		printlnFn(fmt.Sprintf("#%d %s x%d from %s — %s, %s",
			o.ID, product, o.Quantity, supplier, o.Status, o.OrderDate))
	}
	return nil
}

// AddOrder prompts for an order and creates it, dated today.
func (a *App) AddOrder(ctx context.Context) error {
	productID, ok, err := a.promptID("Product id")
	if err != nil || !ok {
		return err
	}
	supplierID, ok, err := a.promptID("Supplier id")
	if err != nil || !ok {
		return err
	}
	qtyStr, err := getSimpleText(a.reader, "Quantity", os.Stdout)
	if err != nil {
		return err
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty <= 0 {
		printlnFn("Quantity must be a positive number.")
		return nil
	}

	created, err := a.orders.Create(ctx, productID, supplierID, a.sess.Current().ID, qty)
	if err != nil {
		printlnFn("Could not create order:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Created order #%d for %s", created.ID, created.OrderDate))
	return nil
}

func (a *App) promptID(prompt string) (int64, bool, error) {
	s, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		printlnFn("Invalid id:", s)
		return 0, false, nil
	}
	return id, true, nil
}
