package trace

import (
	"strings"
	"unicode/utf8"
)

// Render prints the trace as a left aligned table, one entry per line.
// The column width is the longest label among all entries but the first;
// the first label is padded to that width and may overflow it.
func (t Trace) Render() string {
	width := 0
	if len(t.entries) > 1 {
		for _, e := range t.entries[1:] {
			if n := utf8.RuneCountInString(e.Label); n > width {
				width = n
			}
		}
	}

	lines := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		lines = append(lines, padRight(e.Label, width)+" => "+e.Snapshot)
	}

	return strings.Join(lines, "\n")
}

// RenderError builds a diagnostic message: the message followed by a blank
// line (or a single newline when msg is empty), the rendered trace and a
// trailing newline.
func (t Trace) RenderError(msg string) string {
	var b strings.Builder
	if msg != "" {
		b.WriteString(msg)
		b.WriteString("\n\n")
	} else {
		b.WriteString("\n")
	}
	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
