// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages, so the CLI can tell a missing Abaqus installation apart
// from a failed compile or a failed extraction without string matching.
//
// The package supports wrapping underlying errors while maintaining error kind information.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// InvalidRequest indicates the extraction request failed validation.
	InvalidRequest Kind = "invalid_request"
	// ResolutionFailed indicates no candidate vendor executable was found.
	ResolutionFailed Kind = "resolution_failed"
	// VersionQueryFailed indicates the vendor tool could not be queried or its output parsed.
	VersionQueryFailed Kind = "version_query_failed"
	// BuildFailed indicates the build tool failed to produce the extractor.
	BuildFailed Kind = "build_failed"
	// ExtractionFailed indicates the native extractor exited non-zero.
	ExtractionFailed Kind = "extraction_failed"
	// CleanupFailed indicates a temporary build directory could not be removed.
	CleanupFailed Kind = "cleanup_failed"
	// ConfigInvalid indicates the configuration file or environment could not be loaded.
	ConfigInvalid Kind = "config_invalid"
)

// E wraps an error with kind and human-friendly message.
// Detail holds multi-line diagnostic text from a child process. It is kept out of
// Error() so the fatal message stays on a single line.
type E struct {
	Kind    Kind
	Message string
	Err     error
	Detail  string
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// WithDetail attaches diagnostic text and returns e.
func (e *E) WithDetail(detail string) *E {
	e.Detail = detail
	return e
}

// DetailOf returns the diagnostic text of the first *E in err's chain.
func DetailOf(err error) string {
	var e *E
	if stderrors.As(err, &e) {
		return e.Detail
	}
	return ""
}

// KindOf returns the kind of the first *E in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ExitCode maps an error to a process exit status. A failed extraction keeps the
// extractor's own status so callers scripting around spade see what it returned. Every
// other failure, including a failed build or vendor query, is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if KindOf(err) != ExtractionFailed {
		return 1
	}
	var exited interface{ ExitCode() int }
	if stderrors.As(err, &exited) {
		if code := exited.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
