// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

package request

import (
	"fmt"
	"path/filepath"
	"strings"

	spadeerrors "spade/cli/internal/errors"
)

// LogSuffix is appended to the ODB base name to form the default log file.
const LogSuffix = ".spade.log"

// ExtractedSuffix replaces the ODB extension to form the default extracted file.
const ExtractedSuffix = ".h5"

// Normalize fills defaults in place. Debug output implies verbose output.
func (r *Request) Normalize() {
	if r.Debug {
		r.Verbose = true
	}
	if r.Format == "" {
		r.Format = FormatExtract
	}
	r.ODBFile = strings.TrimSpace(r.ODBFile)
	if r.ODBFile != "" {
		base := strings.TrimSuffix(r.ODBFile, filepath.Ext(r.ODBFile))
		if strings.TrimSpace(r.ExtractedFile) == "" {
			r.ExtractedFile = base + ExtractedSuffix
		}
		if strings.TrimSpace(r.LogFile) == "" {
			r.LogFile = base + LogSuffix
		}
	}
	for _, sel := range r.selectors() {
		if sel.value.IsAll() {
			*sel.value = All()
		}
	}
}

// Validate checks the request before anything is launched.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.ODBFile) == "" {
		return spadeerrors.New(spadeerrors.InvalidRequest, "Abaqus output database (ODB) file not specified.")
	}
	if r.Format != "" && !r.Format.Valid() {
		return spadeerrors.New(spadeerrors.InvalidRequest,
			fmt.Sprintf("invalid format %q (choose from %s)", r.Format, joinFormats()))
	}
	return nil
}

// Arguments returns the extractor argv following the executable path. Each value is a
// single token; selector lists are comma-joined.
func (r *Request) Arguments() []string {
	return r.tokens(func(tok token) string { return tok.raw })
}

// CommandLine renders the full invocation as one display string. Selector values are
// double-quoted; paths are quoted only when they need it.
func (r *Request) CommandLine(executable string) string {
	parts := []string{shellQuote(executable)}
	parts = append(parts, r.tokens(func(tok token) string { return tok.display })...)
	return strings.Join(parts, " ")
}

type token struct {
	raw     string
	display string
}

type namedSelector struct {
	flag  string
	value *Selector
}

// selectors lists selector flags in forwarding order, coarse to fine.
func (r *Request) selectors() []namedSelector {
	return []namedSelector{
		{flag: "--step", value: &r.Step},
		{flag: "--frame", value: &r.Frame},
		{flag: "--frame-value", value: &r.FrameValue},
		{flag: "--instance", value: &r.Instance},
		{flag: "--history-region", value: &r.HistoryRegion},
		{flag: "--history", value: &r.History},
		{flag: "--field", value: &r.Field},
	}
}

func (r *Request) tokens(render func(token) string) []string {
	var out []string
	add := func(raw, display string) {
		out = append(out, render(token{raw: raw, display: display}))
	}
	plain := func(s string) { add(s, s) }

	add(r.ODBFile, shellQuote(r.ODBFile))
	if r.ExtractedFile != "" {
		plain("--extracted-file")
		add(r.ExtractedFile, shellQuote(r.ExtractedFile))
	}
	if r.LogFile != "" {
		plain("--log-file")
		add(r.LogFile, shellQuote(r.LogFile))
	}
	if r.Format != "" {
		plain("--format")
		plain(string(r.Format))
	}
	for _, sel := range r.selectors() {
		plain(sel.flag)
		add(sel.value.Value(), sel.value.Quoted())
	}
	if r.Verbose {
		plain("--verbose")
	}
	if r.ForceOverwrite {
		plain("--force-overwrite")
	}
	if r.Debug {
		plain("--debug")
	}
	return out
}

func doubleQuote(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
	return `"` + escaped + `"`
}

func shellQuote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"'") {
		return doubleQuote(s)
	}
	return s
}

func joinFormats() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
