// Package display renders human-facing listings: the banner, the category
// table, dictionary options and naming diagnostics.
package display

import (
	"fmt"
	"strings"

	"github.com/backmassage/assetnamer/internal/lexicon"
	"github.com/backmassage/assetnamer/internal/naming"
	"github.com/backmassage/assetnamer/internal/term"
)

// FormatCategories returns one line per category, grouped under a header
// line for each group in display order.
//
//	Production
//	  ihp           IHP Production
//	  micro         Micro Content
func FormatCategories(cats []naming.Category) []string {
	width := 0
	for _, c := range cats {
		width = max(width, len(c))
	}

	var lines []string
	var group naming.Group
	for i, c := range cats {
		if i == 0 || c.Group() != group {
			group = c.Group()
			lines = append(lines, term.Paint(term.Bold, string(group)))
		}
		lines = append(lines, fmt.Sprintf("  %-*s  %s", width, c, c.Label()))
	}
	return lines
}

// FormatOptions returns aligned "code  description" lines for a dictionary
// domain. The label column is shown only when it differs from the code.
func FormatOptions(opts []lexicon.Option) []string {
	width := 0
	for _, o := range opts {
		width = max(width, len(o.Code))
	}

	lines := make([]string, 0, len(opts))
	for _, o := range opts {
		desc := o.Description
		if o.Label != "" && o.Label != o.Code {
			desc = o.Label + ": " + desc
		}
		lines = append(lines, strings.TrimRight(fmt.Sprintf("%-*s  %s", width, o.Code, desc), " "))
	}
	return lines
}

// FormatDiagnostic renders d with a kind-colored tag, e.g.
// "[placeholder] talent_name: <message>".
func FormatDiagnostic(d naming.Diagnostic) string {
	color := term.Yellow
	switch d.Kind {
	case naming.DiagUnknownCategory:
		color = term.Red
	case naming.DiagPlaceholder:
		color = term.Cyan
	}
	return term.Paint(color, "["+string(d.Kind)+"]") + " " + d.String()
}
