package token

import (
	"strings"
	"testing"
)

func TestLineCol(t *testing.T) {
	doc := NewPosDoc([]byte("ab\ncdef\n\ng"))
	for _, tc := range []struct {
		off, line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{6, 2, 4},
		{8, 3, 1},
		{9, 4, 1},
	} {
		line, col := doc.LineCol(tc.off)
		if line != tc.line || col != tc.col {
			t.Errorf("off %d: got %d:%d, want %d:%d", tc.off, line, col, tc.line, tc.col)
		}
	}
}

func TestPosString(t *testing.T) {
	doc := NewPosDoc([]byte("{\n  \"a\": wot\n}"))
	s := doc.Pos(9).String()
	lines := strings.Split(s, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", s)
	}
	if lines[0] != "line 2, col 8" {
		t.Errorf("got %q", lines[0])
	}
	if lines[1] != `  "a": wot` {
		t.Errorf("got %q", lines[1])
	}
	if lines[2] != "-------^" {
		t.Errorf("got %q", lines[2])
	}
}

func TestPosStringClipsLongLines(t *testing.T) {
	long := strings.Repeat("x", 100) + "!" + strings.Repeat("y", 100)
	doc := NewPosDoc([]byte(long))
	s := doc.Pos(100).String()
	lines := strings.Split(s, "\n")
	if len(lines[1]) != 2*contextRadius {
		t.Errorf("window length %d, want %d", len(lines[1]), 2*contextRadius)
	}
	if lines[1][contextRadius] != '!' {
		t.Errorf("cursor byte not centered: %q", lines[1])
	}
	if lines[2] != strings.Repeat("-", contextRadius)+"^" {
		t.Errorf("got %q", lines[2])
	}
}

func TestPosEndOfDoc(t *testing.T) {
	doc := NewPosDoc([]byte("ab"))
	s := doc.Pos(2).String()
	if !strings.HasPrefix(s, "line 1, col 3") {
		t.Errorf("got %q", s)
	}
}
