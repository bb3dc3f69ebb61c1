package config

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Site     SiteConfig     `mapstructure:"site"`
	Output   OutputConfig   `mapstructure:"output"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	// Modules registers activity types beyond assign and forum.
	Modules []ModuleConfig `mapstructure:"modules"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	// Query is run as-is. It must return the columns Scan knows, by name.
	Query          string `mapstructure:"query"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type SiteConfig struct {
	Root     string `mapstructure:"root"`
	Lang     string `mapstructure:"lang"`
	Timezone string `mapstructure:"timezone"`
	// RelativeDates renders "3 days ago" instead of full dates.
	RelativeDates bool `mapstructure:"relative_dates"`
}

type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Path      string `mapstructure:"path"`
	Border    string `mapstructure:"border"`
	MaxWidths []int  `mapstructure:"max_widths"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ModuleConfig links an activity type to its view page. The activity name is
// read from the query column NameColumn, defaulting to Type.
type ModuleConfig struct {
	Type       string `mapstructure:"type"`
	Path       string `mapstructure:"path"`
	NameColumn string `mapstructure:"name_column"`
}
