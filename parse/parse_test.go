package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/jx-format/go-jx/ir"
	"github.com/jx-format/go-jx/token"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in: `null`,
		},
		{
			in: `true`,
		},
		{
			in: `false`,
		},
		{
			in: `22`,
		},
		{
			in: `1e14`,
		},
		{
			in: `-0`,
		},
		{
			in: `-12.5e-3`,
		},
		{
			in: `"hello"`,
		},
		{
			in: `""`,
		},
		{
			in: `"A\n"`,
		},
		{
			in: `[]`,
		},
		{
			in: `[1]`,
		},
		{
			in: `[[]]`,
		},
		{
			in: `[1,[2,[3]]]`,
		},
		{
			in: `{}`,
		},
		{
			in: `{"a": "b"}`,
		},
		{
			in: `{"a": {"b": 9}, "c": {"d": 8}}`,
		},
		{
			in: `{"a": [1,2], "f[0]": [0,1,2,"three"]}`,
		},
		{
			in: "[0, {\"f\": 2, \"g\": 3}]",
		},
		{
			in: `  {"a": 1}  `,
		},
		{
			in: "\n\t{}\r\n",
		},
		{
			in: `{"null": null}`,
		},
	}
	for _, pt := range pts {
		if _, err := ParseString(pt.in); err != nil {
			t.Errorf("parse %q: %v", pt.in, err)
		}
	}
}

func TestParseErrs(t *testing.T) {
	pts := []parseTest{
		{
			in: ``,
			e:  token.ErrUnexpectedEnd,
		},
		{
			in: `   `,
			e:  token.ErrUnexpectedEnd,
		},
		{
			in: `{`,
			e:  token.ErrUnexpectedEnd,
		},
		{
			in: `[1,`,
			e:  token.ErrUnexpectedEnd,
		},
		{
			in: `{"a"`,
			e:  token.ErrUnexpectedEnd,
		},
		{
			in: `{"a" 1}`,
			e:  ErrColon,
		},
		{
			in: `{"a": 1 "b": 2}`,
			e:  ErrComma,
		},
		{
			in: `{1: 2}`,
			e:  ErrKey,
		},
		{
			in: `[1 2]`,
			e:  ErrComma,
		},
		{
			in: `{} garbage`,
			e:  ErrTrailing,
		},
		{
			in: `01`,
			e:  ErrTrailing,
		},
		{
			in: `tru`,
			e:  token.ErrLiteral,
		},
		{
			in: `truth`,
			e:  token.ErrLiteral,
		},
		{
			in: `trueish`,
			e:  ErrTrailing,
		},
		{
			in: `nul`,
			e:  token.ErrLiteral,
		},
		{
			in: `fals`,
			e:  token.ErrLiteral,
		},
		{
			in: `&`,
			e:  token.ErrUnexpectedSymbol,
		},
		{
			in: `'hello'`,
			e:  token.ErrUnexpectedSymbol,
		},
		{
			in: `"unterminated`,
			e:  token.ErrUnterminated,
		},
		{
			in: `"bad \q escape"`,
			e:  token.ErrBadEscape,
		},
		{
			in: `"bad \uZZZZ"`,
			e:  token.ErrBadUnicode,
		},
		{
			in: "\"raw \x01 control\"",
			e:  token.ErrControlChar,
		},
		{
			in: `-`,
			e:  token.ErrNumber,
		},
		{
			in: `1e400`,
			e:  token.ErrNumberRange,
		},
		{
			in: `-1e400`,
			e:  token.ErrNumberRange,
		},
	}
	for _, pt := range pts {
		_, err := ParseString(pt.in)
		if err == nil {
			t.Errorf("parse %q: expected error %v, got none", pt.in, pt.e)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("parse %q: error %v does not wrap ErrParse", pt.in, err)
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("parse %q: expected %v, got %v", pt.in, pt.e, err)
		}
	}
}

func TestParseValues(t *testing.T) {
	node, err := ParseString(`{"s": "v", "n": 1.5, "b": true, "z": null, "a": [1, 2]}`)
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("expected object, got %s", node.Type)
	}
	s, err := node.Get("s").AsString()
	if err != nil || s != "v" {
		t.Errorf("s: %q, %v", s, err)
	}
	n, err := node.Get("n").AsNumber()
	if err != nil || n != 1.5 {
		t.Errorf("n: %v, %v", n, err)
	}
	b, err := node.Get("b").AsBool()
	if err != nil || !b {
		t.Errorf("b: %v, %v", b, err)
	}
	if node.Get("z").Type != ir.NullType {
		t.Errorf("z: expected null")
	}
	arr := node.Get("a")
	if arr.Type != ir.ArrayType || len(arr.Values) != 2 {
		t.Errorf("a: %v", arr)
	}
}

func TestParseNumberEdges(t *testing.T) {
	node, err := ParseString(`0`)
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.NumberType || node.Float64 != 0.0 {
		t.Errorf("0: %v", node)
	}
	node, err = ParseString(`-0`)
	if err != nil {
		t.Fatal(err)
	}
	if node.Float64 != 0.0 {
		// -0 == 0 numerically; the sign may survive
		t.Errorf("-0: %v", node.Float64)
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	node, err := ParseString(`{"a":1,"a":2}`)
	if err != nil {
		t.Fatal(err)
	}
	if len(node.Fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(node.Fields))
	}
	v, err := node.Get("a").AsNumber()
	if err != nil || v != 2 {
		t.Errorf("last duplicate should win, got %v", v)
	}
}

func TestParseDepthLimit(t *testing.T) {
	const depth = 40
	doc := strings.Repeat("[", depth) + strings.Repeat("]", depth)
	if _, err := ParseString(doc, MaxDepth(depth)); err != nil {
		t.Errorf("limit == depth should parse: %v", err)
	}
	_, err := ParseString(doc, MaxDepth(depth-1))
	if !errors.Is(err, ErrDepth) {
		t.Errorf("limit < depth should fail with ErrDepth, got %v", err)
	}
}

func TestParseDefaultDepthLimit(t *testing.T) {
	defer SetMaxDepth(1000)
	SetMaxDepth(10)
	doc := strings.Repeat("[", 11) + strings.Repeat("]", 11)
	if _, err := ParseString(doc); !errors.Is(err, ErrDepth) {
		t.Errorf("expected ErrDepth, got %v", err)
	}
	SetMaxDepth(11)
	if _, err := ParseString(doc); err != nil {
		t.Errorf("expected parse under raised limit: %v", err)
	}
}

func TestParseAdversarialNesting(t *testing.T) {
	// thousands of nested brackets must fail cleanly, not blow the stack
	doc := strings.Repeat("[", 100000)
	if _, err := ParseString(doc); !errors.Is(err, ErrDepth) {
		t.Errorf("expected ErrDepth, got %v", err)
	}
}

func TestParsePositions(t *testing.T) {
	m := map[*ir.Node]*token.Pos{}
	node, err := ParseString(`{"a": [1]}`, Positions(m))
	if err != nil {
		t.Fatal(err)
	}
	pos, ok := m[node]
	if !ok || pos.I != 0 {
		t.Errorf("root position: %v, %v", pos, ok)
	}
	arr := node.Get("a")
	pos, ok = m[arr]
	if !ok || pos.I != 6 {
		t.Errorf("array position: %v, %v", pos, ok)
	}
}

func TestParseErrPosition(t *testing.T) {
	_, err := ParseString("{\n  \"a\": tru,\n}")
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "line 2") {
		t.Errorf("error should name line 2: %s", msg)
	}
	if !strings.Contains(msg, "^") {
		t.Errorf("error should carry a caret annotation: %s", msg)
	}
}
