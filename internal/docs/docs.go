// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package docs bundles the SPADE user documentation into the binary.
package docs

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
)

//go:embed content/*.md
var content embed.FS

// IndexName is the entry page of the documentation.
const IndexName = "index.md"

// Index returns the Markdown source of the entry page.
func Index() ([]byte, error) {
	return content.ReadFile("content/" + IndexName)
}

// Render writes the documentation to w formatted for a terminal of the given width.
func Render(w io.Writer, width int) error {
	src, err := Index()
	if err != nil {
		return err
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("docs renderer: %w", err)
	}
	out, err := r.Render(string(src))
	if err != nil {
		return fmt.Errorf("render docs: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// Materialize writes the bundled pages into dir and returns the path of the entry page.
// Existing files are overwritten so the copy always matches the running binary.
func Materialize(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	entries, err := content.ReadDir("content")
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		data, err := content.ReadFile("content/" + e.Name())
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(filepath.Join(dir, e.Name()), data, 0o644); err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, IndexName), nil
}
