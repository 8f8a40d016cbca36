// Copyright (c) 2025 anki-llm
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"

	"github.com/raine/anki-llm/internal/release"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var releaseOTP string

// releaseCmd publishes the npm package in the current directory: bump,
// commit, tag, publish, push. Unrelated to the Anki commands; it lives here
// so releasing does not require a separate tool.
var releaseCmd = &cobra.Command{
	Use:   "release {patch|minor|major}",
	Short: "Bump, publish, and push the npm package in the current directory",
	Long: `The release command automates publishing the companion npm package:

  1. Ensure the git working tree is clean
  2. Bump the version, commit, and tag (via npm version)
  3. Publish to npm with the provided one-time password
  4. Push the commit and tags to the remote

The command runs against the package in the current working directory.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"patch", "minor", "major"},

	RunE: func(cmd *cobra.Command, args []string) error {
		bump, err := release.ParseBump(args[0])
		if err != nil {
			return err
		}
		dir, err := os.Getwd()
		if err != nil {
			return err
		}

		p := release.New(dir)

		_, current, err := p.PackageInfo()
		if err != nil {
			return err
		}
		pterm.Printf("Current version: %s\n", current)

		result, err := p.Release(bump, releaseOTP)
		if err != nil {
			return err
		}

		pterm.Printf("Bumped to version: %s\n", result.NewVersion)
		pterm.Printf("Released %s v%s and pushed to remote\n", result.Package, result.NewVersion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(releaseCmd)
	releaseCmd.Flags().StringVar(&releaseOTP, "otp", "", "npm one-time password for authentication")
	_ = releaseCmd.MarkFlagRequired("otp")
}
