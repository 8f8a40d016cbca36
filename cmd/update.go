// Copyright (c) 2025 anki-llm
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/raine/anki-llm/internal/anki"
	"github.com/raine/anki-llm/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	updateID     string
	updateField  string
	updateSet    string
	updateAppend string
	updateFirst  bool
)

// updateCmd edits one field of a single note, located by the value of its
// Id field within the target deck. The note is re-fetched after the write
// so the user sees what Anki actually stored.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Edit one field of a note in the target deck",
	Long: `The update command finds the note whose Id field matches --id inside the
target deck and rewrites the field named by --field, either replacing its
value (--set) or appending text to it (--append).

When more than one note matches, the command refuses to guess; pass --first
to update the note with the lowest note id.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		setChanged := cmd.Flags().Changed("set")
		appendChanged := cmd.Flags().Changed("append")
		if setChanged == appendChanged {
			return fmt.Errorf("exactly one of --set or --append is required")
		}

		ctx := cmd.Context()
		client, cfg, err := newAnkiClient()
		if err != nil {
			return err
		}

		query := fmt.Sprintf("%s Id:%s", anki.DeckQuery(cfg.Deck), updateID)
		ids, err := client.FindNotes(ctx, query)
		if err != nil {
			return presentAnkiError(err, "finding the note")
		}
		noteID, err := selectNoteID(ids, updateID, cfg.Deck, updateFirst)
		if err != nil {
			return err
		}

		notes, err := client.NotesInfo(ctx, []int64{noteID})
		if err != nil {
			return presentAnkiError(err, "fetching the note")
		}
		if len(notes) == 0 {
			return fmt.Errorf("notesInfo returned no record for note %d", noteID)
		}
		note := notes[0]

		if _, ok := note.Fields[updateField]; !ok {
			return fmt.Errorf("note %d has no field %q (available: %s)",
				noteID, updateField, strings.Join(note.FieldNames(), ", "))
		}

		current := note.FieldValue(updateField)
		newValue := updateSet
		if appendChanged {
			newValue = current + updateAppend
		}

		pterm.Printf("Note ID: %d\n", note.NoteID)
		pterm.Printf("Model: %s\n", note.ModelName)
		pterm.Println()
		pterm.Printf("Current %s field:\n  %s\n", updateField, logging.Truncate(current, logging.DisplayLimit))
		pterm.Printf("New %s field:\n  %s\n", updateField, logging.Truncate(newValue, logging.DisplayLimit))
		pterm.Println()

		pterm.Println("Updating note...")
		if err := client.UpdateNoteFields(ctx, noteID, map[string]string{updateField: newValue}); err != nil {
			return presentAnkiError(err, "updating the note")
		}
		pterm.Println("✓ Successfully updated note!")

		// Read back to show what Anki actually stored.
		updated, err := client.NotesInfo(ctx, []int64{noteID})
		if err != nil {
			return presentAnkiError(err, "verifying the update")
		}
		if len(updated) > 0 {
			pterm.Println()
			pterm.Printf("Verified %s field:\n  %s\n", updateField,
				logging.Truncate(updated[0].FieldValue(updateField), logging.DisplayLimit))
		}
		return nil
	},
}

// selectNoteID picks the note to edit from a findNotes result. No match is
// an error, and so are multiple matches unless first is set, in which case
// the lowest note id wins — findNotes returns ids unsorted, so sorting is
// what makes the choice deterministic.
func selectNoteID(ids []int64, id, deck string, first bool) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("no note found with Id %q in deck %q", id, deck)
	}
	if len(ids) > 1 && !first {
		return 0, fmt.Errorf("%d notes match Id %q; pass --first to update the one with the lowest note id", len(ids), id)
	}
	return slices.Min(ids), nil
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&updateID, "id", "", "Value of the note's Id field (e.g. 2001)")
	updateCmd.Flags().StringVar(&updateField, "field", "English", "Name of the field to edit")
	updateCmd.Flags().StringVar(&updateSet, "set", "", "Replace the field with this text")
	updateCmd.Flags().StringVar(&updateAppend, "append", "", "Append this text to the field")
	updateCmd.Flags().BoolVar(&updateFirst, "first", false, "When multiple notes match, update the lowest note id")
	_ = updateCmd.MarkFlagRequired("id")
}
