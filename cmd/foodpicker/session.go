package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anlythree/foodpicker/internal/config"
	"github.com/anlythree/foodpicker/internal/food"
	"github.com/anlythree/foodpicker/internal/logging"
	"github.com/anlythree/foodpicker/internal/picker"
)

// Global flags
var (
	configPath      string
	catalogPath     string
	seed            uint64
	nutritionPolicy string
	logLevel        string
	logFile         string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the platform config dir)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML food catalog (default is the built-in list)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed for a reproducible sequence (0 = random)")
	rootCmd.PersistentFlags().StringVar(&nutritionPolicy, "nutrition", "", "Nutrition panel after picking another food (keep, reset)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")
}

// session is everything a command needs to drive the picker.
type session struct {
	settings *config.Settings
	catalog  *food.Catalog
	ctrl     *picker.Controller
}

// loadSettings reads the config file and applies command-line overrides.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, configError(err)
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		settings.Catalog = catalogPath
	}
	if flags.Changed("seed") {
		settings.Seed = seed
	}
	if flags.Changed("nutrition") {
		settings.NutritionOnPick = nutritionPolicy
	}
	if flags.Changed("log-level") {
		settings.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		settings.LogFile = logFile
	}

	return settings, nil
}

// newSession loads settings, logging and the catalog, and builds a controller.
// Extra options are applied after the ones derived from settings.
func newSession(cmd *cobra.Command, extra ...picker.Option) (*session, error) {
	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	if err := logging.Initialize(logging.Options{Level: settings.LogLevel, File: settings.LogFile}); err != nil {
		return nil, &commandError{
			Title: "Could not start logging",
			Err:   err,
			Troubleshooting: []string{
				"Use --log-level debug, info, warn or error",
				"Check that the --log-file location is writable",
			},
		}
	}

	policy, err := settings.Policy()
	if err != nil {
		return nil, &commandError{
			Title:           "Invalid nutrition setting",
			Err:             err,
			Troubleshooting: []string{"Use --nutrition keep or --nutrition reset"},
		}
	}

	catalog, err := food.Load(settings.Catalog)
	if err != nil {
		return nil, catalogError(err)
	}
	source := settings.Catalog
	if source == "" {
		source = "built-in"
	}
	logging.LogCatalogLoaded(source, catalog.Len())

	opts := []picker.Option{
		picker.WithNutritionPolicy(policy),
		picker.WithLogger(logging.GetLogger()),
	}
	if settings.Seed != 0 {
		opts = append(opts, picker.WithSeed(settings.Seed))
		logging.Debug("Using fixed seed", zap.Uint64("seed", settings.Seed))
	}
	opts = append(opts, extra...)

	return &session{
		settings: settings,
		catalog:  catalog,
		ctrl:     picker.New(catalog, opts...),
	}, nil
}
