package cli

// Page identifies a screen of the application. Every command maps to a page,
// and access is decided by Resolve before the command handler runs.
type Page string

const (
	PageLanding       Page = "landing"
	PageLogin         Page = "login"
	PageRegister      Page = "register"
	PageProfile       Page = "profile"
	PageProfileConfig Page = "profileConfig"
	PageStock         Page = "stock"
	PageTutorials     Page = "tutorials"
	PageOrders        Page = "orders"
	PageSuppliers     Page = "suppliers"
	PageAbout         Page = "about"
)

var publicPages = map[Page]bool{
	PageLanding:  true,
	PageLogin:    true,
	PageRegister: true,
}

// Resolve returns the page to show for a requested page and the current
// authentication flag. Public pages are always granted; protected pages are
// granted only when authenticated, otherwise the landing page is returned.
//
// The decision uses only the in-memory flag. A token that expired on the
// server does not flip the flag, so navigation stays granted until the next
// backend call fails; the first rejected request is what sends the user back
// through login.
func Resolve(page Page, authenticated bool) Page {
	if publicPages[page] || authenticated {
		return page
	}
	return PageLanding
}
