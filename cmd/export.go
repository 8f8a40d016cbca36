// Copyright (c) 2025 anki-llm
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/raine/anki-llm/internal/anki"
	"github.com/raine/anki-llm/internal/export"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var exportOutput string

// exportCmd writes every note of the target deck to a CSV file. All notes
// are fetched before the file is touched, so a failed fetch leaves no
// partial export.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the target deck to a CSV file",
	Long: `The export command finds every note in the target deck, fetches the full
note records, and writes them to a CSV file with the columns
id,english,japanese,ka,ROM,explanation. Carriage returns are stripped from
field values so multi-line fields stay within their cells.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, cfg, err := newAnkiClient()
		if err != nil {
			return err
		}

		pterm.Printf("Exporting deck: %s\n", cfg.Deck)
		pterm.Println()

		var ids []int64
		err = runWithSpinner("Finding notes...", func() error {
			var err error
			ids, err = client.FindNotes(ctx, anki.DeckQuery(cfg.Deck))
			return err
		})
		if err != nil {
			return presentAnkiError(err, "finding notes")
		}
		pterm.Printf("✓ Found %d notes in %q.\n", len(ids), cfg.Deck)
		if len(ids) == 0 {
			pterm.Println("No notes found to export.")
			return nil
		}

		var notes []anki.Note
		err = runWithSpinner("Fetching note details...", func() error {
			var err error
			notes, err = client.NotesInfo(ctx, ids)
			return err
		})
		if err != nil {
			return presentAnkiError(err, "fetching note details")
		}
		pterm.Printf("✓ Retrieved information for %d notes.\n", len(notes))

		if err := export.WriteCSV(exportOutput, notes); err != nil {
			return err
		}

		pterm.Println()
		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Export complete")).
			WithTopPadding(1).
			WithBottomPadding(1).
			WithLeftPadding(1).
			WithRightPadding(1).
			Println(fmt.Sprintf("%d notes written to %s", len(notes), exportOutput))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "glossika_deck_export.csv", "Path of the CSV file to write")
}
