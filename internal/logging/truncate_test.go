// Copyright (c) 2025 anki-llm
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{
			name:     "short value untouched",
			input:    "Hello.",
			limit:    100,
			expected: "Hello.",
		},
		{
			name:     "value at limit untouched",
			input:    strings.Repeat("a", 100),
			limit:    100,
			expected: strings.Repeat("a", 100),
		},
		{
			name:     "long value gets ellipsis",
			input:    strings.Repeat("a", 101),
			limit:    100,
			expected: strings.Repeat("a", 100) + "...",
		},
		{
			name:     "multibyte runes counted as one",
			input:    "こんにちは",
			limit:    3,
			expected: "こんに...",
		},
		{
			name:     "zero limit uses default",
			input:    strings.Repeat("b", 150),
			limit:    0,
			expected: strings.Repeat("b", 100) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.limit)
			if result != tt.expected {
				t.Errorf("Truncate() = %v, want %v", result, tt.expected)
			}
		})
	}
}
