package vdf

import (
	"strings"

	"github.com/signadot/vdf-format/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line diff of the canonical renderings of from and to,
// each line prefixed with "-", "+" or " ". It is empty when they render
// the same.
func Diff(from, to *ir.Node) string {
	a, b := Render(from), Render(to)
	if a == b {
		return ""
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a+"\n", b+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var buf strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(prefix + ln)
		}
	}
	return buf.String()
}
