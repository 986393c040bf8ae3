// Package diff renders line-oriented unified diffs.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Unified compares two texts line by line and returns a single-hunk
// unified diff, or "" when they are identical. Output longer than
// maxDiffLines is truncated with a marker line.
func Unified(before, after, beforeLabel, afterLabel string) string {
	if before == after {
		return ""
	}
	before = withTrailingNewline(before)
	after = withTrailingNewline(after)

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	fmt.Fprintf(&out, "--- %s\n+++ %s\n", beforeLabel, afterLabel)
	fmt.Fprintf(&out, "@@ -1,%d +1,%d @@\n", countLines(before), countLines(after))

	written := 3
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			if written >= maxDiffLines {
				out.WriteString(truncateMessage + "\n")
				return out.String()
			}
			out.WriteString(prefix + line + "\n")
			written++
		}
	}
	return out.String()
}

func withTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func countLines(s string) int {
	return strings.Count(s, "\n")
}
