// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

package process

import (
	"os"
	"strings"
)

// Environ returns a copy of the current process environment. Callers own the slice.
func Environ() []string {
	env := os.Environ()
	out := make([]string, len(env))
	copy(out, env)
	return out
}

// LookupEnv returns the value of key in env. Keys compare case-insensitively when
// foldCase is set, matching Windows semantics.
func LookupEnv(env []string, key string, foldCase bool) (string, bool) {
	if i := indexEnv(env, key, foldCase); i >= 0 {
		return env[i][strings.IndexByte(env[i], '=')+1:], true
	}
	return "", false
}

// SetEnv sets or replaces key in env and returns the result. The input slice is not modified.
func SetEnv(env []string, key, value string, foldCase bool) []string {
	out := make([]string, len(env), len(env)+1)
	copy(out, env)
	if i := indexEnv(out, key, foldCase); i >= 0 {
		// keep the existing spelling of the key, e.g. "Path" on Windows
		existing := out[i][:strings.IndexByte(out[i], '=')]
		out[i] = existing + "=" + value
		return out
	}
	return append(out, key+"="+value)
}

// PrependPath prepends dirs to the path-list variable key, creating it when absent.
func PrependPath(env []string, key, sep string, foldCase bool, dirs ...string) []string {
	parts := make([]string, 0, len(dirs)+1)
	for _, d := range dirs {
		if d != "" {
			parts = append(parts, d)
		}
	}
	if old, ok := LookupEnv(env, key, foldCase); ok && old != "" {
		parts = append(parts, old)
	}
	return SetEnv(env, key, strings.Join(parts, sep), foldCase)
}

// WithLibraryPath makes the vendor bin directory visible to the dynamic loader of a
// child process: LD_LIBRARY_PATH on POSIX, PATH (bin and bin32) on Windows.
func WithLibraryPath(env []string, binDir, goos string) []string {
	if goos == "windows" {
		return PrependPath(env, "PATH", ";", true, binDir, binDir+"32")
	}
	return PrependPath(env, "LD_LIBRARY_PATH", ":", false, binDir)
}

func indexEnv(env []string, key string, foldCase bool) int {
	for i, kv := range env {
		eq := strings.IndexByte(kv, '=')
		if eq <= 0 {
			continue
		}
		name := kv[:eq]
		if name == key || (foldCase && strings.EqualFold(name, key)) {
			return i
		}
	}
	return -1
}
