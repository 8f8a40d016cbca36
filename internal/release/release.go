// Copyright (c) 2025 anki-llm
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package release automates publishing the companion npm package: clean
// worktree check, version bump via npm version (which also commits and
// tags), npm publish with a one-time password, and pushing commits plus
// tags. The flow mirrors what a maintainer would type by hand; every step
// shells out to the real git and npm binaries.
package release

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Bump names the semver component to increase.
type Bump string

const (
	Patch Bump = "patch"
	Minor Bump = "minor"
	Major Bump = "major"
)

// ParseBump validates a user-supplied bump name.
func ParseBump(s string) (Bump, error) {
	switch Bump(strings.ToLower(strings.TrimSpace(s))) {
	case Patch:
		return Patch, nil
	case Minor:
		return Minor, nil
	case Major:
		return Major, nil
	}
	return "", fmt.Errorf("invalid bump %q: want patch, minor, or major", s)
}

// Runner executes a command in a directory. Commands inherit stdio so the
// user sees npm's own output; Output captures stdout instead.
type Runner interface {
	Run(dir string, name string, args ...string) error
	Output(dir string, name string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) Run(dir string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (execRunner) Output(dir string, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	return string(out), err
}

// Publisher drives a release of the package rooted at Dir.
type Publisher struct {
	Dir string
	Run Runner
}

// New returns a Publisher that runs real git/npm commands in dir.
func New(dir string) *Publisher {
	return &Publisher{Dir: dir, Run: execRunner{}}
}

// Result summarizes a completed release.
type Result struct {
	Package    string
	OldVersion string
	NewVersion string
}

// Release performs the full flow and stops at the first failing step.
func (p *Publisher) Release(bump Bump, otp string) (Result, error) {
	if strings.TrimSpace(otp) == "" {
		return Result{}, fmt.Errorf("otp is required")
	}
	if err := p.EnsureCleanWorktree(); err != nil {
		return Result{}, err
	}
	name, oldVersion, err := p.PackageInfo()
	if err != nil {
		return Result{}, err
	}
	newVersion, err := p.BumpVersion(bump)
	if err != nil {
		return Result{}, err
	}
	if err := p.Publish(otp); err != nil {
		return Result{}, err
	}
	if err := p.Push(); err != nil {
		return Result{}, err
	}
	return Result{Package: name, OldVersion: oldVersion, NewVersion: newVersion}, nil
}

// EnsureCleanWorktree fails when git reports uncommitted changes.
func (p *Publisher) EnsureCleanWorktree() error {
	out, err := p.Run.Output(p.Dir, "git", "status", "--porcelain", "--ignore-submodules")
	if err != nil {
		return fmt.Errorf("git status: %w", err)
	}
	if strings.TrimSpace(out) != "" {
		return fmt.Errorf("working tree must be clean before releasing:\n%s", out)
	}
	return nil
}

// PackageInfo reads the package name and current version from package.json.
func (p *Publisher) PackageInfo() (name, version string, err error) {
	data, err := os.ReadFile(filepath.Join(p.Dir, "package.json"))
	if err != nil {
		return "", "", fmt.Errorf("read package.json: %w", err)
	}
	var pkg struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return "", "", fmt.Errorf("parse package.json: %w", err)
	}
	if pkg.Name == "" || pkg.Version == "" {
		return "", "", fmt.Errorf("package.json is missing name or version")
	}
	return pkg.Name, pkg.Version, nil
}

// BumpVersion runs npm version, which bumps, commits, and tags. npm prints
// the new version as "v1.3.1"; the leading v is stripped.
func (p *Publisher) BumpVersion(bump Bump) (string, error) {
	out, err := p.Run.Output(p.Dir, "npm", "version", string(bump))
	if err != nil {
		return "", fmt.Errorf("npm version %s: %w", bump, err)
	}
	return strings.TrimPrefix(strings.TrimSpace(out), "v"), nil
}

// Publish uploads the package to npm using the one-time password.
func (p *Publisher) Publish(otp string) error {
	if err := p.Run.Run(p.Dir, "npm", "publish", "--otp", otp); err != nil {
		return fmt.Errorf("npm publish: %w", err)
	}
	return nil
}

// Push pushes the release commit and its tag to the remote.
func (p *Publisher) Push() error {
	if err := p.Run.Run(p.Dir, "git", "push"); err != nil {
		return fmt.Errorf("git push: %w", err)
	}
	if err := p.Run.Run(p.Dir, "git", "push", "--tags"); err != nil {
		return fmt.Errorf("git push --tags: %w", err)
	}
	return nil
}
