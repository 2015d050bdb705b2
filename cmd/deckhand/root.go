package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand"
)

var rootCmd = &cobra.Command{
	Use:   "deckhand",
	Short: "Deckhand presents slide decks",
	Long: `Deckhand presents TOML or YAML slide decks full screen, with keyboard,
wheel, touch and presentation-remote navigation.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Keep stdout for command output.
		deckhand.SetLogOutput(os.Stderr)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if deckhand.IsInfrastructureError(err) {
			fmt.Fprintln(os.Stderr, "deckhand could not open the display; check that SDL2 is installed and a display is available")
		}
		os.Exit(1)
	}
}

const localeUsage = "BCP 47 language for labels and digit grouping (defaults to the deck's locale)"
