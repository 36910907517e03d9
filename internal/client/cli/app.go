package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/wip-project/wipcli/internal/client/api"
	"github.com/wip-project/wipcli/internal/client/config"
	"github.com/wip-project/wipcli/internal/client/services"
	"github.com/wip-project/wipcli/internal/client/session"
	"github.com/wip-project/wipcli/internal/client/storage"
	"github.com/wip-project/wipcli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the configuration, the session and the domain services together
// and owns the interactive loop. All command handlers are methods on App.
type App struct {
	config *config.Config
	log    logging.Logger

	sess      *session.Session
	auth      services.AuthService
	products  *services.ProductService
	suppliers *services.SupplierService
	orders    *services.OrderService
	contents  *services.ContentService

	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing session database: %w", err)
	}

	store := storage.NewSessionStore(storage.NewSQLiteStore(db), log)
	sess := session.NewSession(store, log)
	if err := sess.Restore(ctx); err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}

	client := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)

	products := services.NewProductService(client, log)
	suppliers := services.NewSupplierService(client, log)

	return &App{
		config:    c,
		log:       log,
		sess:      sess,
		auth:      services.NewAuthService(client, sess, log),
		products:  products,
		suppliers: suppliers,
		orders:    services.NewOrderService(client, products, suppliers, log),
		contents:  services.NewContentService(client, log),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	printlnFn("WIP client (type 'help' for commands)")
	if u := a.sess.Current(); u != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s", u.Email))
	}
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.sess.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.sess.Current(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}
