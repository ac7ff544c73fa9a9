// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"fmt"
	"strings"

	spadeerrors "spade/cli/internal/errors"
)

// PresentError formats an error for user display on a single line. Typed errors show
// their message and cause without the machine-readable kind.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	text := err.Error()
	var e *spadeerrors.E
	if errors.As(err, &e) {
		text = e.Message
		if e.Err != nil {
			text += ": " + e.Err.Error()
		}
	}
	msg := strings.Join(strings.Fields(text), " ")
	if context == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", context, msg)
}
