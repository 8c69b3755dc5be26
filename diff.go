package jx

import (
	"strings"

	"github.com/jx-format/go-jx/encode"
	"github.com/jx-format/go-jx/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line diff between the pretty encodings of a and b,
// "-"/"+" prefixed in document order. Empty when the trees are
// structurally equal.
func Diff(a, b *ir.Node) string {
	if ir.Equal(a, b) {
		return ""
	}
	diffCfg := diffpatch.New()
	at := encode.MustString(a) + "\n"
	bt := encode.MustString(b) + "\n"
	ca, cb, lines := diffCfg.DiffLinesToChars(at, bt)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(ca, cb, false), lines)
	var sb strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, ln := range strings.Split(strings.TrimSuffix(diff.Text, "\n"), "\n") {
			sb.WriteString(prefix)
			sb.WriteString(ln)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
