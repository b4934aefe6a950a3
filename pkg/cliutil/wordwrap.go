// Copyright (c) 2026 Ladybug Tools
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cliutil holds the cobra plumbing shared by every ladybug
// subcommand: the help template, the subcommand dispatch helpers, and
// terminal-aware word wrapping.
package cliutil

import (
	"strings"
)

// Wrap word-wraps the string `s` to a maximum width `w`.  Pass `w` == 0 to do no wrapping.
//
// In order to have some room for slop to avoid things like a short word being on a line by itself,
// most lines are actually wrapped to `w - 5`.
func Wrap(w int, s string) string {
	return wrap(0, w, s)
}

// WrapIndent word-wraps the string `s` to a maximum width `w` with leading indent `i`.  The first
// line is not indented (this is assumed to be done by caller).  Pass `w` == 0 to do no wrapping.
//
// In order to have some room for slop to avoid things like a short word being on a line by itself,
// most lines are actually wrapped to `w - 5`.
func WrapIndent(i, w int, s string) string {
	return wrap(i, w, s)
}

func wrap(indent, width int, s string) string {
	newline := "\n" + strings.Repeat(" ", indent)
	if width == 0 {
		return strings.ReplaceAll(s, "\n", newline)
	}
	limit := width - 5
	if limit <= indent {
		limit = width
	}

	var out strings.Builder
	for li, line := range strings.Split(s, "\n") {
		if li > 0 {
			out.WriteString(newline)
		}
		// The caller is assumed to have already emitted `indent` columns.
		col := indent
		atStart := true
		for pos := 0; pos < len(line); {
			sepEnd := pos
			for sepEnd < len(line) && line[sepEnd] == ' ' {
				sepEnd++
			}
			wordEnd := sepEnd
			for wordEnd < len(line) && line[wordEnd] != ' ' {
				wordEnd++
			}
			sep, word := line[pos:sepEnd], line[sepEnd:wordEnd]
			pos = wordEnd
			if word == "" {
				break
			}
			if !atStart && col+len(sep)+len(word) >= limit {
				out.WriteString(newline)
				col = indent
				sep = ""
			}
			out.WriteString(sep)
			out.WriteString(word)
			col += len(sep) + len(word)
			atStart = false
		}
	}
	return out.String()
}
