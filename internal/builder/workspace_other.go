// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build !windows

package builder

func isDirNotEmpty(error) bool { return false }
