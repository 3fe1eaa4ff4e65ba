package contract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/JesusPetro/mantra/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 2
	DefaultLiFit     = 0.0
	DefaultLsFit     = 2.0
	DefaultIDColumn  = "ID"
	DefaultMagColumn = "Mag"
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	DataDir string             // Base directory for csv/ and transient/ trees
	Type    string             // Transient type label, e.g. "AGN"
	Variant schema.GraphVariant // Visibility rule used to build graphs

	Window    schema.FitWindow // Closed log10(k) interval for the regression
	IDColumn  string           // CSV column holding series identifiers
	MagColumn string           // CSV column holding magnitude samples

	Workers   int               // Concurrent pipeline workers
	Precision int               // Decimal precision for numeric columns
	Output    schema.OutputMode // Output format for results
	OutputFile string           // Optional path to write output to
	Width     int               // Terminal width override (0 = auto-detect)

	SaveEdges bool // Persist edge lists during the alpha pipeline
	Plot      bool // Render a fit plot per series

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	TypeStr string

	DataDir        string  `mapstructure:"data-dir"`
	Variant        string  `mapstructure:"variant"`
	LiFit          float64 `mapstructure:"li-fit"`
	LsFit          float64 `mapstructure:"ls-fit"`
	IDColumn       string  `mapstructure:"id-column"`
	MagColumn      string  `mapstructure:"mag-column"`
	Workers        int     `mapstructure:"workers"`
	Precision      int     `mapstructure:"precision"`
	Output         string  `mapstructure:"output"`
	OutputFile     string  `mapstructure:"output-file"`
	Width          int     `mapstructure:"width"`
	SaveEdges      bool    `mapstructure:"save-edges"`
	Plot           bool    `mapstructure:"plot"`
	StoreBackend   string  `mapstructure:"store-backend"`
	StoreDBConnect string  `mapstructure:"store-db-connect"`
	Color          string  `mapstructure:"color"`
}

// Paths groups the per-type directory layout. It replaces the original
// side-effecting path setters with an explicit, inspectable value.
type Paths struct {
	CSVPath string // <data-dir>/csv/<type>.csv
	EdgeDir string // <data-dir>/transient/<type>/edgeList
	PlotDir string // <data-dir>/transient/<type>/pdf
}

// PathsForType computes the directory layout for a transient type without
// touching the filesystem.
func PathsForType(dataDir, transientType string) Paths {
	base := filepath.Join(dataDir, "transient", transientType)
	return Paths{
		CSVPath: filepath.Join(dataDir, "csv", transientType+".csv"),
		EdgeDir: filepath.Join(base, "edgeList"),
		PlotDir: filepath.Join(base, "pdf"),
	}
}

// EnsureDirs creates the edge-list and plot directories if missing.
// Directory creation happens here and nowhere else.
func (p Paths) EnsureDirs() error {
	for _, dir := range []string{p.EdgeDir, p.PlotDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ProcessAndValidate converts the raw input into the final validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.TypeStr == "" {
		return errors.New("a transient type argument is required, e.g. 'mantra alpha AGN'")
	}
	cfg.Type = input.TypeStr

	cfg.DataDir = input.DataDir
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	variant := schema.GraphVariant(strings.ToLower(input.Variant))
	if _, ok := schema.ValidGraphVariants[variant]; !ok {
		return fmt.Errorf("invalid variant %q: must be natural or horizontal", input.Variant)
	}
	cfg.Variant = variant

	if input.LiFit > input.LsFit {
		return fmt.Errorf("invalid fit window: li-fit %g exceeds ls-fit %g", input.LiFit, input.LsFit)
	}
	cfg.Window = schema.FitWindow{Lower: input.LiFit, Upper: input.LsFit}

	cfg.IDColumn = input.IDColumn
	if cfg.IDColumn == "" {
		cfg.IDColumn = DefaultIDColumn
	}
	cfg.MagColumn = input.MagColumn
	if cfg.MagColumn == "" {
		cfg.MagColumn = DefaultMagColumn
	}

	cfg.Workers = input.Workers
	if cfg.Workers < 1 {
		cfg.Workers = DefaultWorkers
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 0 {
		return fmt.Errorf("invalid precision %d: must be non-negative", input.Precision)
	}

	output := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output %q: must be text, csv, json or parquet", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	cfg.SaveEdges = input.SaveEdges
	cfg.Plot = input.Plot

	backend := schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if input.StoreBackend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend %q: must be sqlite, mysql, postgresql or none", input.StoreBackend)
	}
	if err := ValidateDatabaseConnectionString(backend, input.StoreDBConnect); err != nil {
		return err
	}
	cfg.StoreBackend = backend
	cfg.StoreDBConnect = input.StoreDBConnect

	cfg.UseColors = parseBoolish(input.Color, true)

	return nil
}

// ValidateDatabaseConnectionString checks that network backends carry a
// connection string; sqlite and none work without one.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store backend %s requires --store-db-connect", backend)
		}
	default:
	}
	return nil
}

// GetStoreDBFilePath returns the default SQLite DB file path for run tracking.
func GetStoreDBFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mantra-runs.db"
	}
	return filepath.Join(home, ".mantra-runs.db")
}

// parseBoolish interprets yes/no style flag values, falling back to def.
func parseBoolish(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return def
	}
}
