package main

import (
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/deckfile"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/host"
)

var presentCmd = &cobra.Command{
	Use:   "present <deck>",
	Short: "Present a deck in a window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deck, err := deckfile.Load(args[0])
		if err != nil {
			return err
		}

		options, err := presentOptions(cmd)
		if err != nil {
			return err
		}

		return host.Run(deck, options)
	},
}

func init() {
	flags := presentCmd.Flags()
	flags.String("locale", "", localeUsage)
	flags.String("font", "", "Path to a TTF or OTF font")
	flags.String("log-path", "", "Write JSON logs to this file as well as stdout")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("evdev", "", "Read navigation keys from this Linux input device")
	flags.String("window", "desktop", "Window mode: desktop, fullscreen, windowed or kiosk")
	flags.Bool("symmetric-markers", false, "Mark the outgoing slide on backward moves too")

	rootCmd.AddCommand(presentCmd)
}

func presentOptions(cmd *cobra.Command) (host.Options, error) {
	flags := cmd.Flags()

	locale, err := flags.GetString("locale")
	if err != nil {
		return host.Options{}, err
	}
	font, err := flags.GetString("font")
	if err != nil {
		return host.Options{}, err
	}
	logPath, err := flags.GetString("log-path")
	if err != nil {
		return host.Options{}, err
	}
	logLevel, err := flags.GetString("log-level")
	if err != nil {
		return host.Options{}, err
	}
	evdevPath, err := flags.GetString("evdev")
	if err != nil {
		return host.Options{}, err
	}
	mode, err := flags.GetString("window")
	if err != nil {
		return host.Options{}, err
	}
	windowOptions, err := host.ParseWindowMode(mode)
	if err != nil {
		return host.Options{}, err
	}
	symmetric, err := flags.GetBool("symmetric-markers")
	if err != nil {
		return host.Options{}, err
	}

	return host.Options{
		WindowOptions: windowOptions,
		FontPath:      font,
		EvdevPath:     evdevPath,
		Locale:        locale,
		Deckhand: deckhand.Options{
			LogPath:              logPath,
			LogLevel:             logLevel,
			SymmetricExitMarkers: symmetric,
		},
	}, nil
}
