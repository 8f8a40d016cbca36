// Package main is the entry point for the anki-llm CLI.
// It provides deck inspection, CSV export, and note editing through the
// AnkiConnect local HTTP API.
package main

import (
	"github.com/raine/anki-llm/cmd"
)

func main() {
	cmd.Execute()
}
