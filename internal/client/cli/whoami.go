package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/wip-project/wipcli/internal/client/session"
)

// WhoAmI prints the current user's profile. Token expiry is decoded from the
// token for display only; an expired token does not log the user out here.
func (a *App) WhoAmI(_ context.Context) error {
	u := a.sess.Current()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	printlnFn(fmt.Sprintf("Name:    %s", u.Name))
	printlnFn(fmt.Sprintf("Email:   %s", u.Email))
	printlnFn(fmt.Sprintf("Company: %s (since %s)", u.CompanyName, u.CreationDate))
	if u.ProfilePicturePath != "" {
		printlnFn(fmt.Sprintf("Picture: %s", u.ProfilePicturePath))
	}
	if exp, ok := session.TokenExpiry(u.Token); ok {
		if time.Now().After(exp) {
			printlnFn(fmt.Sprintf("Token:   expired %s", exp.Format(time.RFC3339)))
		} else {
			printlnFn(fmt.Sprintf("Token:   valid until %s", exp.Format(time.RFC3339)))
		}
	}
	return nil
}

// About prints a short description of the application.
func (a *App) About(_ context.Context) error {
	printlnFn("WIP helps small businesses keep track of stock, suppliers and orders.")
	return nil
}
