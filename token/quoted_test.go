package token

import (
	"errors"
	"fmt"
	"testing"
)

type quotedTest struct {
	in  string
	out string
	e   error
}

func TestUnquote(t *testing.T) {
	qts := []quotedTest{
		{
			in:  `""`,
			out: "",
		},
		{
			in:  `"hello"`,
			out: "hello",
		},
		{
			in:  `"a\nb"`,
			out: "a\nb",
		},
		{
			in:  `"\"\\\/\b\f\n\r\t"`,
			out: "\"\\/\b\f\n\r\t",
		},
		{
			in:  `"A"`,
			out: "A",
		},
		{
			in:  `"é"`,
			out: "é",
		},
		{
			in:  `"☃"`,
			out: "☃",
		},
		{
			in:  `"😀"`,
			out: "😀",
		},
		{
			in:  `"héllo ☃"`,
			out: "héllo ☃",
		},
		{
			in: `"unterminated`,
			e:  ErrUnterminated,
		},
		{
			in: `"trailing backslash\`,
			e:  ErrBadEscape,
		},
		{
			in: `"\q"`,
			e:  ErrBadEscape,
		},
		{
			in: `"\u12"`,
			e:  ErrBadUnicode,
		},
		{
			in: `"\uZZZZ"`,
			e:  ErrBadUnicode,
		},
		{
			in: `"\uDE00"`,
			e:  ErrBadUnicode,
		},
		{
			in: `"\uD83D"`,
			e:  ErrBadUnicode,
		},
		{
			in: `"\uD83Dx"`,
			e:  ErrBadUnicode,
		},
		{
			in: `"\uD83D\uD83D"`,
			e:  ErrBadUnicode,
		},
		{
			in: "\"a\x00b\"",
			e:  ErrControlChar,
		},
		{
			in: "\"a\x1fb\"",
			e:  ErrControlChar,
		},
	}
	for _, qt := range qts {
		doc := NewPosDoc([]byte(qt.in))
		got, j, err := Unquote(doc, 0)
		if qt.e != nil {
			if !errors.Is(err, qt.e) {
				t.Errorf("unquote %q: expected %v, got %v", qt.in, qt.e, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("unquote %q: %v", qt.in, err)
			continue
		}
		if got != qt.out {
			t.Errorf("unquote %q: got %q, want %q", qt.in, got, qt.out)
		}
		if j != len(qt.in) {
			t.Errorf("unquote %q: offset %d, want %d", qt.in, j, len(qt.in))
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	vs := []string{
		"",
		"hello",
		"with \"quotes\" and \\slashes\\",
		"\b\f\n\r\t",
		"héllo ☃ 😀",
		"/no escape needed/",
	}
	for c := byte(0); c < 0x20; c++ {
		vs = append(vs, fmt.Sprintf("ctl %c here", c))
	}
	for _, v := range vs {
		q := Quote(v)
		doc := NewPosDoc([]byte(q))
		got, j, err := Unquote(doc, 0)
		if err != nil {
			t.Errorf("round trip %q via %q: %v", v, q, err)
			continue
		}
		if got != v || j != len(q) {
			t.Errorf("round trip %q: got %q (offset %d)", v, got, j)
		}
	}
}

func TestQuoteControls(t *testing.T) {
	if q := Quote("\x01"); q != `"\u0001"` {
		t.Errorf("got %s", q)
	}
	if q := Quote("\x1f"); q != `"\u001f"` {
		t.Errorf("got %s", q)
	}
	if q := Quote("\n"); q != `"\n"` {
		t.Errorf("got %s", q)
	}
	if q := Quote("a/b"); q != `"a/b"` {
		t.Errorf("solidus needs no escape: got %s", q)
	}
}
