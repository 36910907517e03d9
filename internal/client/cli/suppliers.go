package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/wip-project/wipcli/internal/client/models"
)

// Suppliers lists the user's suppliers.
func (a *App) Suppliers(ctx context.Context) error {
	suppliers := a.suppliers.ListByUser(ctx, a.sess.Current().ID)
	if len(suppliers) == 0 {
		printlnFn("No suppliers.")
		return nil
	}
	for _, s := range suppliers {
		line := fmt.Sprintf("#%d %s <%s>", s.ID, s.CompanyName, s.ContactEmail)
		if s.Products != "" {
			line += fmt.Sprintf(" — %s", s.Products)
		}
		printlnFn(line)
	}
	return nil
}

// AddSupplier prompts for a new supplier and creates it.
func (a *App) AddSupplier(ctx context.Context) error {
	company, err := getSimpleText(a.reader, "Company name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Contact email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone (optional)", os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Address (optional)", os.Stdout)
	if err != nil {
		return err
	}
	products, err := getSimpleText(a.reader, "Products supplied", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.suppliers.Create(ctx, models.Supplier{
		CompanyName:  company,
		ContactEmail: email,
		Phone:        phone,
		Address:      address,
		Products:     products,
		UserID:       a.sess.Current().ID,
	})
	if err != nil {
		printlnFn("Could not add supplier:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Added supplier #%d %s", created.ID, created.CompanyName))
	return nil
}
