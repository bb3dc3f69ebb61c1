package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/bjaus/rubriclist"
	"github.com/bjaus/rubriclist/render"
)

var (
	drivers   = []string{"postgres", "mysql"}
	borders   = []string{"rounded", "ascii", "none"}
	levels    = []string{"debug", "info", "warn", "error"}
	logFormat = []string{"console", "json"}
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// ValidateStatic checks cfg without touching the database. Every failing
// field is reported as a *ValidationError joined into the result.
func ValidateStatic(cfg *Config) error {
	var errs []error
	errs = append(errs, validateDatabase(cfg.Database)...)
	errs = append(errs, validateSite(cfg.Site)...)
	errs = append(errs, validateOutput(cfg.Output)...)
	errs = append(errs, validateLogging(cfg.Logging)...)
	errs = append(errs, validateModules(cfg.Modules)...)
	return errors.Join(errs...)
}

func validateDatabase(cfg DatabaseConfig) []error {
	var errs []error
	if !slices.Contains(drivers, cfg.Driver) {
		errs = append(errs, &ValidationError{
			Field:   "database.driver",
			Message: fmt.Sprintf("must be one of %v, got %q", drivers, cfg.Driver),
		})
	}
	if cfg.DSN == "" {
		errs = append(errs, &ValidationError{Field: "database.dsn", Message: "dsn is required"})
	}
	if cfg.Query == "" {
		errs = append(errs, &ValidationError{Field: "database.query", Message: "query is required"})
	}
	if cfg.TimeoutSeconds < 0 {
		errs = append(errs, &ValidationError{
			Field:   "database.timeout_seconds",
			Message: "timeout must not be negative",
		})
	}
	return errs
}

func validateSite(cfg SiteConfig) []error {
	var errs []error
	if cfg.Root != "" {
		if u, err := url.Parse(cfg.Root); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, &ValidationError{
				Field:   "site.root",
				Message: fmt.Sprintf("must be an absolute URL, got %q", cfg.Root),
			})
		}
	}
	if _, err := rubriclist.LoadCatalog(cfg.Lang); err != nil {
		errs = append(errs, &ValidationError{Field: "site.lang", Message: err.Error()})
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		errs = append(errs, &ValidationError{Field: "site.timezone", Message: err.Error()})
	}
	return errs
}

func validateOutput(cfg OutputConfig) []error {
	var errs []error
	if _, err := render.ParseFormat(cfg.Format); err != nil {
		errs = append(errs, &ValidationError{Field: "output.format", Message: err.Error()})
	}
	if !slices.Contains(borders, cfg.Border) {
		errs = append(errs, &ValidationError{
			Field:   "output.border",
			Message: fmt.Sprintf("must be one of %v, got %q", borders, cfg.Border),
		})
	}
	for i, w := range cfg.MaxWidths {
		if w < 0 {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("output.max_widths[%d]", i),
				Message: "width must not be negative",
			})
		}
	}
	return errs
}

func validateLogging(cfg LoggingConfig) []error {
	var errs []error
	if !slices.Contains(levels, cfg.Level) {
		errs = append(errs, &ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be one of %v, got %q", levels, cfg.Level),
		})
	}
	if !slices.Contains(logFormat, cfg.Format) {
		errs = append(errs, &ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("must be one of %v, got %q", logFormat, cfg.Format),
		})
	}
	return errs
}

func validateModules(mods []ModuleConfig) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, m := range mods {
		field := fmt.Sprintf("modules[%d]", i)
		if m.Type == "" {
			errs = append(errs, &ValidationError{Field: field + ".type", Message: "type is required"})
		} else if seen[m.Type] {
			errs = append(errs, &ValidationError{
				Field:   field + ".type",
				Message: fmt.Sprintf("duplicate module type %q", m.Type),
			})
		}
		seen[m.Type] = true
		if !strings.HasPrefix(m.Path, "/") {
			errs = append(errs, &ValidationError{
				Field:   field + ".path",
				Message: fmt.Sprintf("must be a site path starting with /, got %q", m.Path),
			})
		}
	}
	return errs
}
