// Copyright (c) 2025 anki-llm
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides display helpers for terminal output. Note fields
// often carry long HTML values; everything printed on a status line goes
// through Truncate so the terminal stays readable.
package logging

// DisplayLimit is the default rune budget for a field value on one line.
const DisplayLimit = 100

// Truncate shortens s to at most limit runes, appending "..." when anything
// was cut. A non-positive limit selects DisplayLimit.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		limit = DisplayLimit
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
