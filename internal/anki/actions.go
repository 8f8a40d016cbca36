package anki

import (
	"context"
	"fmt"
)

// Typed wrappers over Invoke for the actions this tool uses. Action names
// and parameter shapes follow the AnkiConnect documentation exactly; the
// remote side is fixed and not under our control.

// DeckNames returns the names of all decks known to Anki.
func (c *Client) DeckNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.Invoke(ctx, "deckNames", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// FindNotes returns the ids of notes matching an Anki search query.
func (c *Client) FindNotes(ctx context.Context, query string) ([]int64, error) {
	var ids []int64
	params := map[string]any{"query": query}
	if err := c.Invoke(ctx, "findNotes", params, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// NotesInfo fetches full note records for the given ids.
func (c *Client) NotesInfo(ctx context.Context, ids []int64) ([]Note, error) {
	var notes []Note
	params := map[string]any{"notes": ids}
	if err := c.Invoke(ctx, "notesInfo", params, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateNoteFields overwrites the given fields of a note. Fields not named
// in the mapping keep their current values. updateNote returns a null
// result on success.
func (c *Client) UpdateNoteFields(ctx context.Context, id int64, fields map[string]string) error {
	params := map[string]any{
		"note": map[string]any{
			"id":     id,
			"fields": fields,
		},
	}
	return c.Invoke(ctx, "updateNote", params, nil)
}

// Ping asks the add-on for its API version, which doubles as a
// connectivity check.
func (c *Client) Ping(ctx context.Context) (int, error) {
	var version int
	if err := c.Invoke(ctx, "version", nil, &version); err != nil {
		return 0, err
	}
	return version, nil
}

// DeckQuery returns the findNotes query matching every note in deck.
func DeckQuery(deck string) string {
	return fmt.Sprintf("deck:%q", deck)
}
