package anki

import "sort"

// Note is a flashcard record as returned by notesInfo. The client treats it
// as passthrough data owned by Anki: field names vary per deck and model, so
// Fields stays a generic mapping rather than a fixed struct.
type Note struct {
	NoteID    int64            `json:"noteId"`
	ModelName string           `json:"modelName"`
	Tags      []string         `json:"tags"`
	Fields    map[string]Field `json:"fields"`
}

// Field is a single note field value plus its position in the note's model.
type Field struct {
	Value string `json:"value"`
	Order int    `json:"order"`
}

// FieldNames returns the note's field names in model order, so display and
// export are deterministic despite the unordered map.
func (n Note) FieldNames() []string {
	names := make([]string, 0, len(n.Fields))
	for name := range n.Fields {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := n.Fields[names[i]], n.Fields[names[j]]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return names[i] < names[j]
	})
	return names
}

// FieldValue returns the text of the named field, or "" when the note has
// no such field.
func (n Note) FieldValue(name string) string {
	return n.Fields[name].Value
}
