package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/anim"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/deckfile"
)

var checkCmd = &cobra.Command{
	Use:   "check <deck>",
	Short: "Load a deck and print its outline",
	Long:  `Parses the deck file and prints each slide with its cards and the final value of each counter.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := deckfile.Load(args[0])
		if err != nil {
			return err
		}

		locale, err := cmd.Flags().GetString("locale")
		if err != nil {
			return err
		}
		if locale == "" {
			locale = deck.Locale
		}

		writeOutline(cmd.OutOrStdout(), deck, locale)
		return nil
	},
}

func init() {
	checkCmd.Flags().String("locale", "", localeUsage)
	rootCmd.AddCommand(checkCmd)
}

func writeOutline(w io.Writer, deck deckhand.Deck, locale string) {
	printer := anim.NewPrinter(locale)

	title := deck.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(w, "%s: %d slides\n", title, deck.Len())

	for i, slide := range deck.Slides {
		fmt.Fprintf(w, "%2d. %s\n", i+1, slide.Title)
		for _, card := range slide.Cards {
			fmt.Fprintf(w, "    card    %s\n", card.Heading)
		}
		for _, c := range slide.Counters {
			value := c.Prefix + c.Suffix
			if c.Animated() {
				value = c.Prefix + anim.FormatCount(printer, c.Target, c.Target) + c.Suffix
			}
			fmt.Fprintf(w, "    counter %s\n", strings.TrimSpace(value+" "+c.Label))
		}
	}
}
