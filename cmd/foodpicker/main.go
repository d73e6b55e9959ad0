// Foodpicker answers "what should I eat?".
//
// Running without arguments opens an interactive picker that shows a random
// food, its calories and, on request, its nutrition breakdown. The list
// and pick commands do the same without the interactive screen.
//
// Usage:
//
//	foodpicker [command] [flags]
//
// See 'foodpicker --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anlythree/foodpicker/internal/logging"
	"github.com/anlythree/foodpicker/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		logging.Sync()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "foodpicker",
	Short: "Pick something to eat",
	Long: `Foodpicker picks a random food for you.

Press space for a suggestion, again for another one, i to see its
nutrition values and r to start over.

If no command is specified, the interactive picker launches.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPicker,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "foodpicker %s\n", version.Full())
	},
}
