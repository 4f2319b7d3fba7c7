package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"prodtable/internal/config"
	"prodtable/internal/domain"
	"prodtable/internal/logic"
	"prodtable/internal/ui"
	"prodtable/internal/ui/views"
)

var (
	// Global flags
	configPath  string
	catalogPath string
	searchTerm  string
	stockOnly   bool
	sortSpec    string
	logFile     string
	verbose     bool
	force       bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd launches the interactive table
var rootCmd = &cobra.Command{
	Use:           "prodtable",
	Short:         "Filterable, sortable product table for the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := applyFlags(cmd, cfg); err != nil {
			return err
		}

		logger, err = buildLogger(cfg.Log, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// dumpCmd derives the table once and prints it
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the filtered and sorted table without starting the UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, opts, err := loadSession()
		if err != nil {
			return err
		}

		groups, err := logic.Derive(catalog, logic.View{
			SearchTerm: opts.SearchTerm,
			StockOnly:  opts.StockOnly,
			Sort:       opts.Sort,
		})
		if err != nil {
			logger.Warn("cannot derive table", zap.Error(err))
			return err
		}
		return views.WritePlain(cmd.OutOrStdout(), groups)
	},
}

// initCmd writes the effective settings as a config file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current settings to the config file",
	Long: `Write the current settings (config file plus any flags given) to the
path named by --config, so they become the defaults of later runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configPath); err == nil && !force {
			return fmt.Errorf("config %s already exists (use --force to overwrite)", configPath)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check config: %w", err)
		}

		if err := config.Save(cfg, configPath); err != nil {
			return err
		}
		logger.Info("config written", zap.String("path", configPath))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFileName, "Path to the TOML config file")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog file (.toml, .yaml); defaults to the sample catalog")
	rootCmd.PersistentFlags().StringVarP(&searchTerm, "search", "s", "", "Initial search term")
	rootCmd.PersistentFlags().BoolVar(&stockOnly, "stock-only", false, "Only show products in stock")
	rootCmd.PersistentFlags().StringVar(&sortSpec, "sort", "", "Initial sort: name, price, name:desc, price:asc")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (default: none, or the user cache dir with --verbose)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags overrides config values with the flags given on the command line
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.Catalog = catalogPath
	}
	if flags.Changed("search") {
		cfg.UI.Search = searchTerm
	}
	if flags.Changed("stock-only") {
		cfg.UI.StockOnly = stockOnly
	}
	if flags.Changed("sort") {
		state, err := logic.ParseSortSpec(sortSpec)
		if err != nil {
			return fmt.Errorf("invalid --sort: %w", err)
		}
		cfg.UI.SortColumn = state.Active.String()
		cfg.UI.SortOrder = state.Order.String()
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	return nil
}

// buildLogger writes JSON logs to the configured file; the terminal belongs to the UI.
// Without a file, logging is off unless verbose asks for it.
func buildLogger(settings config.LogSettings, verbose bool) (*zap.Logger, error) {
	file := settings.File
	if file == "" {
		if !verbose {
			return zap.NewNop(), nil
		}
		var err error
		if file, err = defaultLogPath(); err != nil {
			return nil, err
		}
	}

	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{file}
	zcfg.ErrorOutputPaths = []string{file}

	level := zapcore.InfoLevel
	if settings.Level != "" {
		if err := level.Set(settings.Level); err != nil {
			return nil, err
		}
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

// defaultLogPath is prodtable.log in the user cache directory
func defaultLogPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("no directory for the log file: %w", err)
	}
	dir = filepath.Join(dir, "prodtable")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	return filepath.Join(dir, "prodtable.log"), nil
}

// loadSession reads the catalog and the initial control values
func loadSession() (domain.Catalog, ui.Options, error) {
	catalog, err := config.LoadCatalog(cfg.Catalog)
	if err != nil {
		return nil, ui.Options{}, err
	}
	logger.Info("catalog loaded",
		zap.String("path", cfg.Catalog),
		zap.Int("products", len(catalog)))

	opts := ui.Options{
		SearchTerm: cfg.UI.Search,
		StockOnly:  cfg.UI.StockOnly,
		Sort:       logic.SortState{Active: cfg.SortColumn(), Order: cfg.SortOrder()},
	}
	return catalog, opts, nil
}

func runInteractive() error {
	catalog, opts, err := loadSession()
	if err != nil {
		return err
	}

	model := ui.NewModel(catalog, opts, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	logger.Info("starting UI")
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("UI exited normally")
	return nil
}
