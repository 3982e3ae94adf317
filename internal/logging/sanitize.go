// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package logging

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxLoggedValue bounds client supplied strings in log lines.
const maxLoggedValue = 200

// Sanitize escapes control characters and truncates s to a bounded length so
// that client input cannot forge or flood log lines.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n == maxLoggedValue {
			b.WriteString("...")
			break
		}
		switch {
		case r == utf8.RuneError:
			b.WriteString(`�`)
		case r < 0x20 || r == 0x7F:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
		n++
	}
	return b.String()
}
