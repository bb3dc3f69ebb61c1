package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"github.com/bjaus/rubriclist"
	"github.com/bjaus/rubriclist/internal/config"
	"github.com/bjaus/rubriclist/internal/logger"
	"github.com/bjaus/rubriclist/render"
)

type App struct {
	cfg *config.Config
	log logger.Logger
	db  *sql.DB
	now func() time.Time
}

func NewApp(cfg *config.Config, log logger.Logger) *App {
	return &App{cfg: cfg, log: log, now: time.Now}
}

// Initialize opens and pings the configured database.
func (a *App) Initialize(ctx context.Context) error {
	db, err := sql.Open(a.cfg.Database.Driver, a.cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to open %s database: %w", a.cfg.Database.Driver, err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping %s database: %w", a.cfg.Database.Driver, err)
	}

	a.db = db
	a.log.Debugw("Database connected", "driver", a.cfg.Database.Driver)
	return nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run queries the rubrics and writes the listing to w. Rows that fail to
// format are logged and do not fail the run.
func (a *App) Run(ctx context.Context, w io.Writer) error {
	listing, format, err := a.listing()
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	start := a.now()
	seq := rubriclist.Fetch(ctx, a.db, a.cfg.Database.Query)
	err = listing.Write(ctx, w, format, seq)

	var rowErrs rubriclist.RowErrors
	if errors.As(err, &rowErrs) {
		for _, re := range rowErrs {
			a.log.Warnw("Rubric row rendered with errors",
				"row", re.Index,
				"name", re.Name,
				"error", re.Err,
			)
		}
		err = nil
	}
	if err != nil {
		return err
	}

	a.log.Infow("Listing written",
		"format", format.String(),
		"failed_rows", len(rowErrs),
		"duration", a.now().Sub(start).String(),
	)
	return nil
}

func (a *App) listing() (*rubriclist.Listing, render.Format, error) {
	format, err := render.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, "", err
	}
	cat, err := rubriclist.LoadCatalog(a.cfg.Site.Lang)
	if err != nil {
		return nil, "", err
	}
	loc, err := time.LoadLocation(a.cfg.Site.Timezone)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load timezone: %w", err)
	}

	dateOpts := []rubriclist.DateOption{rubriclist.InLocation(loc)}
	if a.cfg.Site.RelativeDates {
		dateOpts = append(dateOpts, rubriclist.Relative(a.now))
	}

	reg := rubriclist.DefaultRegistry()
	for _, m := range a.cfg.Modules {
		col := m.NameColumn
		if col == "" {
			col = m.Type
		}
		reg.Register(m.Type, rubriclist.ModuleType{
			Path: m.Path,
			ID:   rubriclist.CMID,
			Name: rubriclist.ExtraName(col),
		})
	}

	l := rubriclist.NewListing(cat, rubriclist.SiteLinker{Root: a.cfg.Site.Root},
		rubriclist.ListingRegistry(reg),
		rubriclist.ListingDates(rubriclist.NewDates(cat, dateOpts...)),
		rubriclist.ListingBorder(render.ParseBorder(a.cfg.Output.Border)),
		rubriclist.ListingMaxWidths(a.cfg.Output.MaxWidths...),
	)
	return l, format, nil
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Database.TimeoutSeconds <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(a.cfg.Database.TimeoutSeconds)*time.Second)
}

// openOutput returns path opened for writing, or stdout when path is empty.
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, f.Close, nil
}
