// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package request models a single extraction request and renders it into the command
// line understood by the native extractor.
//
// A Request is built once per invocation from CLI flags, normalized, validated and then
// handed unchanged to the extractor launcher. Nothing in it is shared or persisted.
package request

import (
	"strings"
)

// AllSentinel selects every item of a category.
const AllSentinel = "all"

// Selector narrows which items of one category (frames, steps, fields, ...) the
// extractor reads. An empty selector means all items.
type Selector []string

// All returns the selector matching every item.
func All() Selector { return Selector{AllSentinel} }

// IsAll reports whether s selects every item.
func (s Selector) IsAll() bool {
	items := s.items()
	return len(items) == 0 || (len(items) == 1 && strings.EqualFold(items[0], AllSentinel))
}

// Value is the selector as a single comma-delimited token.
func (s Selector) Value() string {
	if s.IsAll() {
		return AllSentinel
	}
	return strings.Join(s.items(), ",")
}

// Quoted is Value wrapped in double quotes, with embedded quotes and backslashes escaped.
func (s Selector) Quoted() string {
	return doubleQuote(s.Value())
}

// items drops blank entries left behind by flag parsing.
func (s Selector) items() []string {
	out := make([]string, 0, len(s))
	for _, item := range s {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Format selects the schema of the extracted file.
type Format string

const (
	FormatExtract Format = "extract"
	FormatODB     Format = "odb"
	FormatVTK     Format = "vtk"
)

// Formats lists the accepted output formats in help order.
func Formats() []Format {
	return []Format{FormatExtract, FormatODB, FormatVTK}
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	for _, known := range Formats() {
		if f == known {
			return true
		}
	}
	return false
}

// Request is the flat record forwarded to the native extractor.
type Request struct {
	ODBFile       string
	ExtractedFile string
	LogFile       string

	Frame         Selector
	FrameValue    Selector
	Step          Selector
	Field         Selector
	History       Selector
	HistoryRegion Selector
	Instance      Selector

	Format Format

	Verbose        bool
	ForceOverwrite bool
	Debug          bool
	// Recompile forces the build tool to rebuild the extractor. It is not forwarded.
	Recompile bool
}
