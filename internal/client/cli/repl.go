package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Picture(ctx context.Context, path string) error
	Stock(ctx context.Context) error
	AddItem(ctx context.Context) error
	Inc(ctx context.Context, id string) error
	Dec(ctx context.Context, id string) error
	Suppliers(ctx context.Context) error
	AddSupplier(ctx context.Context) error
	Orders(ctx context.Context) error
	AddOrder(ctx context.Context) error
	Tutorials(ctx context.Context) error
	About(ctx context.Context) error
}

// commandPages maps each command to the page it belongs to, for the guard
// check before dispatch. Commands absent from the map (help, exit) are
// always available.
var commandPages = map[string]Page{
	"login":       PageLogin,
	"register":    PageRegister,
	"logout":      PageLanding,
	"whoami":      PageProfile,
	"profile":     PageProfile,
	"editprofile": PageProfileConfig,
	"picture":     PageProfileConfig,
	"stock":       PageStock,
	"additem":     PageStock,
	"inc":         PageStock,
	"dec":         PageStock,
	"suppliers":   PageSuppliers,
	"addsupplier": PageSuppliers,
	"orders":      PageOrders,
	"addorder":    PageOrders,
	"tutorials":   PageTutorials,
	"about":       PageAbout,
}

// runREPL starts a read-eval-print loop for the WIP client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, maps it to its page, runs the page through Resolve with the
// current auth state, and dispatches to methods on 'a'. A protected command
// issued while logged out is redirected to the landing page, i.e. the user
// is told to log in first. Unknown commands are reported back. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop resilient and focused on I/O.
//
// Commands run to completion before the next line is read, so a slow request
// cannot be submitted twice by an impatient Enter.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("wip %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if page, ok := commandPages[cmd]; ok {
			if Resolve(page, a.isLoggedIn()) != page {
				printlnFn("Please log in first.")
				continue
			}
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: stock, additem, inc <id>, dec <id>, suppliers, addsupplier, orders, addorder, tutorials, whoami, editprofile, picture <path>, about, logout, exit")
			} else {
				printlnFn("Available commands: login, register, about, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami", "profile":
			_ = a.WhoAmI(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "picture":
			if len(args) == 0 {
				printlnFn("Usage: picture <path>")
				continue
			}
			_ = a.Picture(ctx, args[0])

		case "stock":
			_ = a.Stock(ctx)

		case "additem":
			_ = a.AddItem(ctx)

		case "inc":
			if len(args) == 0 {
				printlnFn("Usage: inc <id>")
				continue
			}
			_ = a.Inc(ctx, args[0])

		case "dec":
			if len(args) == 0 {
				printlnFn("Usage: dec <id>")
				continue
			}
			_ = a.Dec(ctx, args[0])

		case "suppliers":
			_ = a.Suppliers(ctx)

		case "addsupplier":
			_ = a.AddSupplier(ctx)

		case "orders":
			_ = a.Orders(ctx)

		case "addorder":
			_ = a.AddOrder(ctx)

		case "tutorials":
			_ = a.Tutorials(ctx)

		case "about":
			_ = a.About(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
