package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxviazov/beauty-pagination/internal/config"
	"github.com/maxviazov/beauty-pagination/internal/logger"
	"github.com/maxviazov/beauty-pagination/internal/pageview"
	"github.com/maxviazov/beauty-pagination/internal/pagination"
	"github.com/maxviazov/beauty-pagination/internal/repository/snapshot"
	"github.com/maxviazov/beauty-pagination/internal/service"
	"github.com/maxviazov/beauty-pagination/pkg/response"
)

// app is the state shared by one command invocation.
type app struct {
	cfgPath string
	debug   bool
	output  string

	ready    bool
	cfg      *config.Config
	log      zerolog.Logger
	closeLog func() error
	calc     service.RangeCalculator
	store    *snapshot.Store
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.output != outputText && a.output != outputJSON {
		return fmt.Errorf("%w: --output must be %q or %q, got %q", response.ErrUsage, outputText, outputJSON, a.output)
	}

	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.Logger.Level = "debug"
	}
	log, closeLog, err := logger.New(&cfg.Logger)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	a.closeLog = closeLog
	a.cfg = cfg
	a.log = log.With().Str("module", "cli").Str("command", cmd.Name()).Logger()

	if size := cfg.Pagination.CacheSize; size > 0 {
		calc, err := pagination.NewCalculator(size)
		if err != nil {
			return err
		}
		a.calc = calc
	} else {
		a.calc = service.RangeFunc(pagination.Range)
	}

	a.ready = true
	a.log.Debug().
		Int("page_size", cfg.Pagination.PageSize).
		Int("sibling_count", cfg.Pagination.SiblingCount).
		Int("cache_size", cfg.Pagination.CacheSize).
		Msg("cli configured")
	return nil
}

// close releases the debug log file, if setup opened one.
func (a *app) close() error {
	if a.closeLog == nil {
		return nil
	}
	err := a.closeLog()
	a.closeLog = nil
	return err
}

func (a *app) settings() service.Settings {
	return service.Settings{
		DefaultPageSize: a.cfg.Pagination.PageSize,
		SiblingCount:    a.cfg.Pagination.SiblingCount,
	}
}

// content loads the snapshot on first use; range and slug never touch it.
func (a *app) content() (*snapshot.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	store, err := snapshot.Load(a.cfg.Content.SnapshotPath, a.log)
	if err != nil {
		return nil, err
	}
	a.store = store
	return store, nil
}

func (a *app) catalog() (service.CatalogService, error) {
	store, err := a.content()
	if err != nil {
		return nil, err
	}
	return service.NewCatalogService(store, a.calc, a.settings(), a.log), nil
}

func (a *app) blog() (service.BlogService, error) {
	store, err := a.content()
	if err != nil {
		return nil, err
	}
	return service.NewBlogService(store, a.calc, a.settings(), a.log), nil
}

func (a *app) asJSON() bool { return a.output == outputJSON }

// renderer styles the strip only for a real terminal.
func (a *app) renderer(w io.Writer) *pageview.Renderer {
	if f, ok := w.(*os.File); ok {
		return pageview.NewTerminalRenderer(f)
	}
	return pageview.NewRenderer(false)
}
