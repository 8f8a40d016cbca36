// Package export writes deck contents to CSV. The column set and the
// mapping to Anki field names are fixed by the downstream consumers of the
// export; field values are newline-normalized (carriage returns stripped)
// so rows stay intact regardless of how the notes were authored.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raine/anki-llm/internal/anki"
)

// Columns is the fixed CSV header.
var Columns = []string{"id", "english", "japanese", "ka", "ROM", "explanation"}

// fieldForColumn maps CSV columns to the note fields of the Glossika model.
var fieldForColumn = map[string]string{
	"id":          "Id",
	"english":     "English",
	"japanese":    "Japanese",
	"ka":          "か",
	"ROM":         "ROM",
	"explanation": "Explanation",
}

// Row builds the CSV row for a note. Missing fields yield empty cells.
func Row(n anki.Note) []string {
	row := make([]string, len(Columns))
	for i, col := range Columns {
		row[i] = sanitize(n.FieldValue(fieldForColumn[col]))
	}
	return row
}

// WriteCSV writes one row per note to path, header first. The file is
// written to a temp sibling and renamed into place, so a failure never
// leaves a partial export behind.
func WriteCSV(path string, notes []anki.Note) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".anki-llm-export-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	if err = w.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, note := range notes {
		if err = w.Write(Row(note)); err != nil {
			return fmt.Errorf("write note %d: %w", note.NoteID, err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("flush rows: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("move export into place: %w", err)
	}
	return nil
}

func sanitize(value string) string {
	return strings.ReplaceAll(value, "\r", "")
}
