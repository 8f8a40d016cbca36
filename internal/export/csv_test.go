package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raine/anki-llm/internal/anki"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func note(id int64, fields map[string]string) anki.Note {
	n := anki.Note{NoteID: id, ModelName: "Glossika", Fields: map[string]anki.Field{}}
	order := 0
	for name, value := range fields {
		n.Fields[name] = anki.Field{Value: value, Order: order}
		order++
	}
	return n
}

func TestWriteCSVStripsCarriageReturns(t *testing.T) {
	notes := []anki.Note{
		note(1, map[string]string{
			"Id":          "2001",
			"English":     "First line.\r\nSecond line.",
			"Japanese":    "一行目。\r二行目。",
			"か":           "いちぎょうめ",
			"ROM":         "ichigyoume",
			"Explanation": "uses \r\n throughout",
		}),
		note(2, map[string]string{
			"Id":      "2002",
			"English": "No breaks here.",
		}),
	}

	path := filepath.Join(t.TempDir(), "deck.csv")
	require.NoError(t, WriteCSV(path, notes))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\r", "no carriage return may survive export")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"id", "english", "japanese", "ka", "ROM", "explanation"}, records[0])
	assert.Equal(t, "First line.\nSecond line.", records[1][1])
	assert.Equal(t, "一行目。二行目。", records[1][2])

	// Missing fields become empty cells, not errors.
	assert.Equal(t, []string{"2002", "No breaks here.", "", "", "", ""}, records[2])
}

func TestWriteCSVHeaderLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteCSV(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,english,japanese,ka,ROM,explanation\n", string(data))
}

func TestWriteCSVLeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.csv")
	require.NoError(t, WriteCSV(path, []anki.Note{note(1, map[string]string{"Id": "2001"})}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".anki-llm-export-"), "temp file left behind: %s", e.Name())
	}
}
