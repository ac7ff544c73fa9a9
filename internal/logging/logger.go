// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the leveled logger every spade component writes through and
// helpers for presenting fatal errors to the user.
//
// A Logger is an explicit value: it is built once by the CLI from the configured level and
// the --verbose/--debug flags, then handed to each component. Nothing toggles global print
// functions at runtime.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// Logger prints through pterm prefix printers with a fixed severity threshold.
// Messages are never wrapped, so each record stays on one line however long it is.
// A nil *Logger discards everything.
type Logger struct {
	level pterm.LogLevel
	debug *pterm.PrefixPrinter
	info  *pterm.PrefixPrinter
	warn  *pterm.PrefixPrinter
	err   *pterm.PrefixPrinter
}

// New creates a logger writing to w that drops messages below level.
func New(w io.Writer, level pterm.LogLevel) *Logger {
	return &Logger{
		level: level,
		debug: pterm.Debug.WithDebugger(false).WithWriter(w),
		info:  pterm.Info.WithWriter(w),
		warn:  pterm.Warning.WithWriter(w),
		err:   pterm.Error.WithWriter(w),
	}
}

// Discard returns a logger that prints nothing.
func Discard() *Logger {
	return New(io.Discard, pterm.LogLevelDisabled)
}

// ParseLevel converts a configured level name into a pterm level.
func ParseLevel(name string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info", "verbose":
		return pterm.LogLevelInfo, nil
	case "", "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "off", "disabled", "none":
		return pterm.LogLevelDisabled, nil
	}
	return pterm.LogLevelWarn, fmt.Errorf("unknown log level %q", name)
}

// Threshold lowers base according to the CLI flags: --verbose shows info messages and
// --debug shows debug messages. Flags never raise the threshold above base.
func Threshold(base pterm.LogLevel, verbose, debug bool) pterm.LogLevel {
	level := base
	if verbose && (level > pterm.LogLevelInfo || level == pterm.LogLevelDisabled) {
		level = pterm.LogLevelInfo
	}
	if debug && (level > pterm.LogLevelDebug || level == pterm.LogLevelDisabled) {
		level = pterm.LogLevelDebug
	}
	return level
}

// Enabled reports whether messages at level would be printed.
func (l *Logger) Enabled(level pterm.LogLevel) bool {
	if l == nil || l.level == pterm.LogLevelDisabled {
		return false
	}
	return l.level <= level
}

func (l *Logger) Debug(msg string, kv ...any) {
	if l.Enabled(pterm.LogLevelDebug) {
		l.debug.Println(line(msg, kv))
	}
}

func (l *Logger) Info(msg string, kv ...any) {
	if l.Enabled(pterm.LogLevelInfo) {
		l.info.Println(line(msg, kv))
	}
}

func (l *Logger) Warn(msg string, kv ...any) {
	if l.Enabled(pterm.LogLevelWarn) {
		l.warn.Println(line(msg, kv))
	}
}

func (l *Logger) Error(msg string, kv ...any) {
	if l.Enabled(pterm.LogLevelError) {
		l.err.Println(line(msg, kv))
	}
}

// line appends key/value pairs to msg as "key: value", the way pterm's logger labels
// arguments. A trailing key without a value is printed on its own.
func line(msg string, kv []any) string {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(kv); i += 2 {
		b.WriteString("  ")
		if i+1 < len(kv) {
			fmt.Fprintf(&b, "%v: %v", kv[i], kv[i+1])
		} else {
			fmt.Fprintf(&b, "%v", kv[i])
		}
	}
	return b.String()
}
