// Copyright (c) 2025 anki-llm
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/raine/anki-llm/internal/anki"
	"github.com/raine/anki-llm/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// fieldsCmd shows which fields the target deck's notes carry, by fetching
// the first note and printing its field names with truncated values. Useful
// before writing an export mapping or an update command.
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Show the field names of the target deck's notes",
	Long: `The fields command fetches the first note of the target deck and lists its
note id, model name, and available fields. Field values are truncated for
display; use export to get full values.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, cfg, err := newAnkiClient()
		if err != nil {
			return err
		}

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
			pterm.Println("No notes found.")
			return nil
		}

		notes, err := client.NotesInfo(ctx, ids[:1])
		if err != nil {
			return presentAnkiError(err, "fetching the first note")
		}
		if len(notes) == 0 {
			return fmt.Errorf("notesInfo returned no record for note %d", ids[0])
		}

		note := notes[0]
		pterm.Println()
		pterm.Printf("Note ID: %d\n", note.NoteID)
		pterm.Printf("Model: %s\n", note.ModelName)
		pterm.Println()
		pterm.Println("Available fields:")
		for _, name := range note.FieldNames() {
			pterm.Printf("  - %s: %s\n", name, logging.Truncate(note.FieldValue(name), logging.DisplayLimit))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
