// Copyright (c) 2025 anki-llm
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"slices"
	"sort"
	"strings"

	"github.com/raine/anki-llm/internal/anki"
	"github.com/raine/anki-llm/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var notesPreview int

// decksCmd lists all decks known to Anki, which doubles as a connectivity
// check for the AnkiConnect add-on.
var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List decks and verify the AnkiConnect connection",
	Long: `The decks command connects to the running Anki application, lists every
deck it knows about, and checks that the configured target deck exists.

With --notes N it additionally shows the first N notes of the target deck
including model name, tags, and field values (long values are truncated).`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, cfg, err := newAnkiClient()
		if err != nil {
			return err
		}

		var names []string
		err = runWithSpinner("Connecting to Anki...", func() error {
			var err error
			names, err = client.DeckNames(ctx)
			return err
		})
		if err != nil {
			return presentAnkiError(err, "listing decks")
		}

		pterm.Println("✓ Successfully connected to Anki.")
		pterm.Println()

		sort.Strings(names)
		pterm.Printf("Available decks (%d):\n", len(names))
		for _, name := range names {
			pterm.Printf("  - %s\n", name)
		}
		pterm.Println()

		if !slices.Contains(names, cfg.Deck) {
			pterm.Printf("⚠ Warning: deck %q not found.\n", cfg.Deck)
			return nil
		}
		pterm.Printf("✓ Found target deck: %q\n", cfg.Deck)

		if notesPreview <= 0 {
			return nil
		}
		return previewNotes(cmd.Context(), client, cfg.Deck, notesPreview)
	},
}

// previewNotes shows the first few notes of the deck, the way you would eyeball
// a deck before exporting it.
func previewNotes(ctx context.Context, client *anki.Client, deck string, limit int) error {
	var ids []int64
	err := runWithSpinner("Finding notes...", func() error {
		var err error
		ids, err = client.FindNotes(ctx, anki.DeckQuery(deck))
		return err
	})
	if err != nil {
		return presentAnkiError(err, "finding notes")
	}
	pterm.Println()
	pterm.Printf("✓ Found %d notes in %q.\n", len(ids), deck)
	if len(ids) == 0 {
		return nil
	}

	n := limit
	if n > len(ids) {
		n = len(ids)
	}
	var notes []anki.Note
	err = runWithSpinner("Fetching notes...", func() error {
		var err error
		notes, err = client.NotesInfo(ctx, ids[:n])
		return err
	})
	if err != nil {
		return presentAnkiError(err, "fetching notes")
	}

	pterm.Println()
	pterm.Printf("Showing first %d notes:\n\n", n)
	for i, note := range notes {
		pterm.Printf("--- Note %d (ID: %d) ---\n", i+1, note.NoteID)
		pterm.Printf("Model: %s\n", note.ModelName)
		tags := "None"
		if len(note.Tags) > 0 {
			tags = strings.Join(note.Tags, ", ")
		}
		pterm.Printf("Tags: %s\n", tags)
		pterm.Println("Fields:")
		for _, name := range note.FieldNames() {
			pterm.Printf("  %s: %s\n", name, logging.Truncate(note.FieldValue(name), logging.DisplayLimit))
		}
		pterm.Println()
	}
	return nil
}

func init() {
	rootCmd.AddCommand(decksCmd)
	decksCmd.Flags().IntVar(&notesPreview, "notes", 0, "Also show the first N notes of the target deck")
}
