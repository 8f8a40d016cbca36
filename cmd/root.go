// Copyright (c) 2025 anki-llm
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for anki-llm. It
// implements subcommands for inspecting, exporting, and editing Anki decks
// through the AnkiConnect add-on, plus release automation for the companion
// npm package, using the Cobra CLI framework.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/raine/anki-llm/internal/anki"
	"github.com/raine/anki-llm/internal/config"
	"github.com/raine/anki-llm/internal/httperrors"
	"github.com/raine/anki-llm/internal/logging"

	"github.com/spf13/cobra"
)

var (
	showVersion  bool
	endpointFlag string
	deckFlag     string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "anki-llm",
	Short: "Inspect, export, and edit Anki decks through AnkiConnect",
	Long: `anki-llm is a command-line tool for working with Anki study decks through
the AnkiConnect add-on's local HTTP API. It can list decks, inspect note
fields, export a deck to CSV, and edit individual note fields.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("anki-llm %s\n", Version)

			client, _, err := newAnkiClient()
			if err != nil {
				return err
			}
			if v, err := client.Ping(cmd.Context()); err == nil {
				fmt.Printf("anki-connect protocol %d\n", v)
			} else {
				fmt.Println("anki-connect unreachable")
			}
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("error", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI and AnkiConnect version information")
	rootCmd.PersistentFlags().StringVar(&endpointFlag, "endpoint", "", "AnkiConnect base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&deckFlag, "deck", "", "Target deck name (overrides config)")
}

// newAnkiClient loads configuration, applies flag overrides, and builds a
// client for the configured endpoint.
func newAnkiClient() (*anki.Client, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}
	if endpointFlag != "" {
		cfg.Endpoint = endpointFlag
	}
	if deckFlag != "" {
		cfg.Deck = deckFlag
	}
	return anki.NewClient(cfg.Endpoint, cfg.Timeout()), cfg, nil
}

// presentAnkiError turns a failed client call into terminal guidance and an
// error for Execute to report. Transport failures get troubleshooting help;
// remote errors carry the add-on's message verbatim.
func presentAnkiError(err error, context string) error {
	var transport *anki.TransportError
	if errors.As(err, &transport) {
		return httperrors.Explain(err, context)
	}
	return err
}
