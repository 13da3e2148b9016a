package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/toolbox/internal/common"
	"github.com/dmitrijs2005/toolbox/internal/config"
	"github.com/dmitrijs2005/toolbox/internal/dbx"
	"github.com/dmitrijs2005/toolbox/internal/logging"
	"github.com/dmitrijs2005/toolbox/internal/objectstore"
	"github.com/dmitrijs2005/toolbox/internal/probe"
	"github.com/dmitrijs2005/toolbox/internal/repositories/repomanager"
)

// test seams
var (
	openDatabase = dbx.Open

	newObjectStore = func(ctx context.Context, c *config.Config) (objectstore.Store, error) {
		return objectstore.NewS3Store(ctx, c)
	}

	newSampler = func() (probe.Sampler, error) {
		return probe.NewProcessSampler()
	}
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	tool        string
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewApp builds an App for the named tool reading stdin and writing stdout.
func NewApp(c *config.Config, tool string) *App {
	return &App{
		config:      c,
		logger:      logging.NewToolLogger(os.Stderr, tool, c.Debug),
		tool:        tool,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: stdinIsTerminal(),
	}
}

// Run executes cmd with a context cancelled on SIGINT, SIGTERM or SIGQUIT.
func (a *App) Run(ctx context.Context, cmd func(*App, context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stop := a.initSignalHandler(cancel)
	defer stop()

	return cmd(a, ctx)
}

func (a *App) initSignalHandler(cancelFunc context.CancelFunc) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigs:
			cancelFunc()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

// fail reports err to the user and the log, and returns it unchanged.
func (a *App) fail(ctx context.Context, err error) error {
	a.logger.Error(ctx, "command failed", "error", err)

	if errors.Is(err, common.ErrAlreadyExists) {
		fmt.Fprintln(a.out, "Error: This email is already in use.")
	} else {
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
	return err
}

// openStore returns nil when no bucket is configured.
func (a *App) openStore(ctx context.Context) (objectstore.Store, error) {
	if !a.config.ObjectStorageEnabled() {
		return nil, nil
	}
	return newObjectStore(ctx, a.config)
}

// openDB connects to the configured database and applies migrations.
func (a *App) openDB(ctx context.Context) (*sql.DB, repomanager.RepositoryManager, error) {
	m, err := repomanager.NewSQLRepositoryManager(a.config.DatabaseDriver)
	if err != nil {
		return nil, nil, err
	}

	db, err := openDatabase(ctx, m.Dialect(), a.config.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	a.logger.Debug(ctx, "database ready", "driver", string(m.Dialect()))
	return db, m, nil
}
