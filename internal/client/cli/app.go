package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/usersconsole/internal/client/client"
	"github.com/dmitrijs2005/usersconsole/internal/client/config"
	"github.com/dmitrijs2005/usersconsole/internal/client/metrics"
	"github.com/dmitrijs2005/usersconsole/internal/client/services"
	"github.com/dmitrijs2005/usersconsole/internal/client/storage"
	"github.com/dmitrijs2005/usersconsole/internal/client/store"
	"github.com/dmitrijs2005/usersconsole/internal/logging"
)

// App is the console. It owns the stores and the storage they persist to.
type App struct {
	config    *config.Config
	logger    logging.Logger
	storage   storage.Store
	registry  *prometheus.Registry
	metrics   *metrics.Metrics
	session   *store.SessionStore
	directory *store.DirectoryStore
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp builds the console from c and restores the saved session.
// Close the App when done.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(logging.Options{Format: c.LogFormat, Level: c.LogLevel})

	st, err := storage.Open(ctx, storage.Options{
		Driver:     c.StorageDriver,
		DSN:        c.StorageDSN,
		RedisAddr:  c.RedisAddr,
		RedisDB:    c.RedisDB,
		Passphrase: c.StoragePassphrase,
	})
	if err != nil {
		logger.Error(ctx, "error initializing storage", "driver", c.StorageDriver, "error", err)
		return nil, err
	}

	registry := prometheus.NewRegistry()
	app := &App{
		config:   c,
		logger:   logger,
		storage:  st,
		registry: registry,
		metrics:  metrics.New(registry),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	// the client reads the token from the session store, built below
	tokens := client.TokenFunc(func(ctx context.Context) string { return app.session.Token(ctx) })
	apiClient, err := client.NewHTTPClient(c.APIBaseURL, c.APIKey, tokens, client.WithTimeout(c.RequestTimeout))
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	as := services.NewAuthService(apiClient,
		services.WithStrictProfile(c.StrictProfile),
		services.WithAuthMetrics(app.metrics),
	)
	ds := services.NewDirectoryService(apiClient, services.WithDirectoryMetrics(app.metrics))

	app.session = store.NewSessionStore(ctx, as, st, logger.With("store", "session"))
	app.directory = store.NewDirectoryStore(ds, logger.With("store", "directory"),
		store.WithPageSize(c.PageSize),
		store.WithRefetchAfterMutation(c.RefetchAfterMutation),
	)
	return app, nil
}

// Run shows the restored session, loads the first page when signed in and
// runs the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	printlnFn("Users console (type 'help' for commands)")

	if a.isLoggedIn() {
		a.printWhoAmI()
		_ = a.loadAndShow(ctx, 1)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the session storage.
func (a *App) Close() error {
	return a.storage.Close()
}

// Stats prints the remote calls made in this run by service and operation.
func (a *App) Stats(ctx context.Context) error {
	stats, err := metrics.Summarize(a.registry)
	if err != nil {
		a.logger.Error(ctx, "error gathering metrics", "error", err)
		errorColor.Fprintln(a.out, "Error:", err)
		return err
	}
	renderStats(a.out, stats)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

func (a *App) getStatus() string {
	st := a.session.State()
	if !st.IsAuthenticated || st.User == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", st.User.Email)
}
