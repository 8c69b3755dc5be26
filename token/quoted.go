package token

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// Unquote decodes the string whose opening '"' is at offset i,
// returning the decoded value and the offset just past the closing
// quote. Raw spans between escape sequences are appended in one piece
// rather than byte by byte.
func Unquote(doc *PosDoc, i int) (string, int, error) {
	d := doc.d
	i++ // opening quote
	var buf []byte
	start := i
	for i < len(d) {
		c := d[i]
		switch {
		case c == '"':
			if buf == nil {
				return string(d[start:i]), i + 1, nil
			}
			buf = append(buf, d[start:i]...)
			return string(buf), i + 1, nil
		case c == '\\':
			buf = append(buf, d[start:i]...)
			if i+1 >= len(d) {
				return "", 0, PosErr(ErrBadEscape, doc.Pos(i))
			}
			e := d[i+1]
			if u, ok := Unescape(e); ok {
				buf = append(buf, u)
				i += 2
				start = i
				continue
			}
			if e != 'u' {
				return "", 0, PosErr(fmt.Errorf("%w: \\%c", ErrBadEscape, e), doc.Pos(i))
			}
			r, n, err := unicodeEscape(doc, i)
			if err != nil {
				return "", 0, err
			}
			buf = utf8.AppendRune(buf, r)
			i += n
			start = i
		case IsControl(c):
			return "", 0, PosErr(fmt.Errorf("%w 0x%02X", ErrControlChar, c), doc.Pos(i))
		default:
			i++
		}
	}
	return "", 0, PosErr(ErrUnterminated, doc.Pos(len(d)))
}

// unicodeEscape decodes the \uXXXX escape at offset i (d[i] is the
// backslash), consuming a trailing low surrogate when the first
// codepoint is a high surrogate. Returns the rune and the bytes
// consumed.
func unicodeEscape(doc *PosDoc, i int) (rune, int, error) {
	hi, err := hex4(doc, i+2)
	if err != nil {
		return 0, 0, err
	}
	if !utf16.IsSurrogate(hi) {
		return hi, 6, nil
	}
	if hi >= 0xDC00 {
		return 0, 0, PosErr(fmt.Errorf("%w: unpaired low surrogate \\u%04X", ErrBadUnicode, hi), doc.Pos(i))
	}
	d := doc.d
	if i+8 > len(d) || d[i+6] != '\\' || d[i+7] != 'u' {
		return 0, 0, PosErr(fmt.Errorf("%w: missing low surrogate after \\u%04X", ErrBadUnicode, hi), doc.Pos(i))
	}
	lo, err := hex4(doc, i+8)
	if err != nil {
		return 0, 0, err
	}
	r := utf16.DecodeRune(hi, lo)
	if r == utf8.RuneError {
		return 0, 0, PosErr(fmt.Errorf("%w: invalid surrogate pair \\u%04X\\u%04X", ErrBadUnicode, hi, lo), doc.Pos(i))
	}
	return r, 12, nil
}

func hex4(doc *PosDoc, i int) (rune, error) {
	d := doc.d
	if i+4 > len(d) {
		return 0, PosErr(ErrBadUnicode, doc.Pos(min(i, len(d))))
	}
	var r rune
	for j := range 4 {
		c := d[i+j]
		switch {
		case c >= '0' && c <= '9':
			r = r<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			r = r<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			r = r<<4 | rune(c-'A'+10)
		default:
			return 0, PosErr(fmt.Errorf("%w: bad hex digit %q", ErrBadUnicode, c), doc.Pos(i+j))
		}
	}
	return r, nil
}

const hexDigits = "0123456789abcdef"

func Quote(v string) string {
	return string(AppendQuote(nil, v))
}

// AppendQuote appends the quoted JSON form of v to dst. Bytes needing
// no escape are copied in spans; escape points interrupt the span with
// the table replacement or a \u00XX escape for bare controls.
func AppendQuote(dst []byte, v string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(v); i++ {
		c := v[i]
		e, need := Escape(c)
		if !need {
			continue
		}
		dst = append(dst, v[start:i]...)
		if e == 'u' {
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
		} else {
			dst = append(dst, '\\', e)
		}
		start = i + 1
	}
	dst = append(dst, v[start:]...)
	return append(dst, '"')
}
