package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/anlythree/foodpicker/internal/config"
	"github.com/anlythree/foodpicker/internal/food"
	"github.com/anlythree/foodpicker/internal/logging"
	"github.com/anlythree/foodpicker/internal/picker"
	"github.com/anlythree/foodpicker/internal/tui"
	"github.com/anlythree/foodpicker/internal/ui"
)

// Command flags
var (
	startWith     string
	listFormat    string
	pickCount     int
	pickNutrition bool
	pickFormat    string
)

func init() {
	rootCmd.Flags().StringVar(&startWith, "start-with", "", "Start with this food selected instead of an empty screen")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(configCmd)
}

// runPicker launches the interactive screen
func runPicker(cmd *cobra.Command, args []string) error {
	var extra []picker.Option
	if startWith != "" {
		extra = append(extra, picker.WithInitialSelection(startWith))
	}

	s, err := newSession(cmd, extra...)
	if err != nil {
		return err
	}
	defer logging.Sync()

	if startWith != "" {
		if _, ok := s.catalog.Find(startWith); !ok {
			return &commandError{
				Title:           "Unknown food",
				Err:             fmt.Errorf("%q is not in the catalog", startWith),
				Troubleshooting: []string{"Run 'foodpicker list' to see the available names"},
			}
		}
	}

	return tui.Run(s.ctrl)
}

// listCmd prints the catalog
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the foods in the catalog",
	Example: `  # Built-in catalog as a table
  foodpicker list

  # A custom catalog as JSON
  foodpicker list --catalog my-foods.yaml --format json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "table", "Output format (table, json, yaml)")
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync()

	out := cmd.OutOrStdout()
	switch listFormat {
	case "table":
		fmt.Fprintln(out, ui.RenderCatalogTable(s.catalog))
	case "json":
		return writeJSON(out, s.catalog.List())
	case "yaml":
		data, err := food.Marshal(s.catalog)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", listFormat)
	}
	return nil
}

// pickCmd runs the controller without the interactive screen
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick food without the interactive screen",
	Long: `Pick one or more foods and print them.

Each pick after the first behaves like pressing "another one": it never
repeats the food picked just before it.`,
	Example: `  # One suggestion
  foodpicker pick

  # A week of dinners, reproducible
  foodpicker pick --count 7 --seed 42 --format compact

  # Include nutrition values
  foodpicker pick --nutrition-panel`,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().IntVarP(&pickCount, "count", "n", 1, "Number of picks")
	pickCmd.Flags().BoolVar(&pickNutrition, "nutrition-panel", false, "Show nutrition values")
	pickCmd.Flags().StringVar(&pickFormat, "format", "detailed", "Output format (detailed, compact, json)")
}

// pickResult is the JSON shape of one pick.
type pickResult struct {
	Round         int       `json:"round"`
	Food          food.Item `json:"food"`
	ShowNutrition bool      `json:"show_nutrition"`
}

func runPick(cmd *cobra.Command, args []string) error {
	if pickCount < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", pickCount)
	}
	switch pickFormat {
	case "detailed", "compact", "json":
	default:
		return fmt.Errorf("unknown format %q (want detailed, compact or json)", pickFormat)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync()

	results, err := pickRounds(s.ctrl, pickCount, pickNutrition)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch pickFormat {
	case "json":
		return writeJSON(out, results)
	case "compact":
		for _, r := range results {
			fmt.Fprintf(out, "%d. %s\n", r.Round, ui.RenderFoodLine(r.Food, r.ShowNutrition))
		}
	default:
		p := ui.NewPrinter(out)
		params := map[string]string{
			"Count":     strconv.Itoa(pickCount),
			"Catalog":   catalogLabel(s.settings),
			"Nutrition": s.ctrl.Policy().String(),
		}
		if s.settings.Seed != 0 {
			params["Seed"] = strconv.FormatUint(s.settings.Seed, 10)
		}
		p.PrintHeader("Pick", cmd.CommandPath(), params)
		for _, r := range results {
			p.Println(ui.RenderFoodCard(r.Food, r.ShowNutrition, p.Width()))
		}
	}
	return nil
}

// pickRounds drives the controller the way the interactive screen would and
// records what an observer sees after each pick.
func pickRounds(ctrl *picker.Controller, count int, showNutrition bool) ([]pickResult, error) {
	var last picker.Snapshot
	unsubscribe := ctrl.Subscribe(func(s picker.Snapshot) { last = s })
	defer unsubscribe()

	results := make([]pickResult, 0, count)
	for i := 1; i <= count; i++ {
		if _, err := ctrl.Pick(); err != nil {
			return nil, err
		}
		if showNutrition && !last.ShowNutrition {
			ctrl.ToggleNutrition()
		}
		results = append(results, pickResult{
			Round:         i,
			Food:          *last.Selected,
			ShowNutrition: last.ShowNutrition,
		})
	}
	return results, nil
}

func catalogLabel(s *config.Settings) string {
	if s.Catalog == "" {
		return "built-in"
	}
	return s.Catalog
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			path = p
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefault(configPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}
