// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ldjstructurestats Authors

// Command gendocs generates markdown and man page documentation for the
// ldjstructurestats CLI.
//
// Usage:
//
//	go run ./cmd/gendocs [output-dir]
//
// Default output directory is ./docs/cli. Man pages go to <output-dir>/man.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/slub/ldjstructurestats/internal/commands"
	"github.com/slub/ldjstructurestats/internal/version"
	"github.com/spf13/cobra/doc"
)

func main() {
	dir := "./docs/cli"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := generate(dir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Documentation generated in %s\n", dir)
}

func generate(dir string) error {
	rootCmd := commands.NewRootCmd(os.Getenv)
	rootCmd.DisableAutoGenTag = true

	manDir := filepath.Join(dir, "man")
	if err := os.MkdirAll(manDir, 0o750); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	if err := doc.GenMarkdownTree(rootCmd, dir); err != nil {
		return fmt.Errorf("generating markdown: %w", err)
	}

	header := &doc.GenManHeader{
		Title:   "LDJSTRUCTURESTATS",
		Section: "1",
		Source:  "ldjstructurestats " + version.Get().Version,
	}
	if err := doc.GenManTree(rootCmd, header, manDir); err != nil {
		return fmt.Errorf("generating man pages: %w", err)
	}

	oldPath := filepath.Join(dir, rootCmd.Name()+".md")
	newPath := filepath.Join(dir, "index.md")
	if err := os.Rename(oldPath, newPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("renaming %s to %s: %w", oldPath, newPath, err)
	}
	return nil
}
