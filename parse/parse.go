// Package parse provides JSON parsing support.
package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jx-format/go-jx/debug"
	"github.com/jx-format/go-jx/ir"
	"github.com/jx-format/go-jx/token"
)

// Parse reads one JSON value from d. After the value only whitespace
// may remain; anything else fails with ErrTrailing.
func Parse(d []byte, opts ...Option) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: MaxDepthDefault()}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{d: d, doc: token.NewPosDoc(d), opts: pOpts}
	i := 0
	res, err := p.node(nil, &i, 0)
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse of %d bytes failed: %v\n", len(d), err)
		}
		return nil, err
	}
	for i < len(d) && token.IsSpace(d[i]) {
		i++
	}
	if i != len(d) {
		return nil, p.errAt(ErrTrailing, i)
	}
	return res, nil
}

func ParseString(s string, opts ...Option) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	d    []byte
	doc  *token.PosDoc
	opts *parseOpts
}

func (p *parser) errAt(err error, i int) error {
	return token.PosErr(err, p.doc.Pos(i))
}

func (p *parser) trackPos(node *ir.Node, i int) {
	if p.opts.positions != nil {
		p.opts.positions[node] = p.doc.Pos(i)
	}
}

// space advances the cursor past whitespace. End of input here is
// fatal: every caller still expects something.
func (p *parser) space(pi *int) error {
	i := *pi
	for i < len(p.d) && token.IsSpace(p.d[i]) {
		i++
	}
	*pi = i
	if i == len(p.d) {
		return p.errAt(fmt.Errorf("%w: %w", ErrParse, token.ErrUnexpectedEnd), i)
	}
	return nil
}

// node dispatches on the first significant byte. Each parse step takes
// the cursor by pointer and leaves it just past what it consumed.
func (p *parser) node(parent *ir.Node, pi *int, depth int) (*ir.Node, error) {
	if err := p.space(pi); err != nil {
		return nil, err
	}
	switch c := p.d[*pi]; c {
	case '{':
		return p.object(parent, pi, depth)
	case '[':
		return p.array(parent, pi, depth)
	case '"':
		return p.str(parent, pi)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return p.number(parent, pi)
	case 't':
		return p.literal(parent, pi, "true")
	case 'f':
		return p.literal(parent, pi, "false")
	case 'n':
		return p.literal(parent, pi, "null")
	default:
		return nil, p.errAt(fmt.Errorf("%w: %w %q", ErrParse, token.ErrUnexpectedSymbol, c), *pi)
	}
}

func (p *parser) object(parent *ir.Node, pi *int, depth int) (*ir.Node, error) {
	if depth+1 > p.opts.maxDepth {
		return nil, p.errAt(ErrDepth, *pi)
	}
	obj := &ir.Node{Type: ir.ObjectType, Parent: parent}
	p.trackPos(obj, *pi)
	*pi++
	if err := p.space(pi); err != nil {
		return nil, err
	}
	if p.d[*pi] == '}' {
		*pi++
		return obj, nil
	}
	for {
		if err := p.space(pi); err != nil {
			return nil, err
		}
		if p.d[*pi] != '"' {
			return nil, p.errAt(fmt.Errorf("%w (have %q)", ErrKey, p.d[*pi]), *pi)
		}
		key, j, err := token.Unquote(p.doc, *pi)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		*pi = j
		if err := p.space(pi); err != nil {
			return nil, err
		}
		if p.d[*pi] != ':' {
			return nil, p.errAt(ErrColon, *pi)
		}
		*pi++
		val, err := p.node(obj, pi, depth+1)
		if err != nil {
			return nil, err
		}
		// duplicate keys: last value wins
		obj.Set(key, val)
		if err := p.space(pi); err != nil {
			return nil, err
		}
		switch p.d[*pi] {
		case ',':
			*pi++
		case '}':
			*pi++
			return obj, nil
		default:
			return nil, p.errAt(ErrComma, *pi)
		}
	}
}

func (p *parser) array(parent *ir.Node, pi *int, depth int) (*ir.Node, error) {
	if depth+1 > p.opts.maxDepth {
		return nil, p.errAt(ErrDepth, *pi)
	}
	arr := &ir.Node{Type: ir.ArrayType, Parent: parent}
	p.trackPos(arr, *pi)
	*pi++
	if err := p.space(pi); err != nil {
		return nil, err
	}
	if p.d[*pi] == ']' {
		*pi++
		return arr, nil
	}
	for {
		elt, err := p.node(arr, pi, depth+1)
		if err != nil {
			return nil, err
		}
		arr.Append(elt)
		if err := p.space(pi); err != nil {
			return nil, err
		}
		switch p.d[*pi] {
		case ',':
			*pi++
		case ']':
			*pi++
			return arr, nil
		default:
			return nil, p.errAt(ErrComma, *pi)
		}
	}
}

func (p *parser) str(parent *ir.Node, pi *int) (*ir.Node, error) {
	pos := *pi
	s, j, err := token.Unquote(p.doc, *pi)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	*pi = j
	sy := ir.FromString(s)
	sy.Parent = parent
	p.trackPos(sy, pos)
	return sy, nil
}

func (p *parser) number(parent *ir.Node, pi *int) (*ir.Node, error) {
	pos := *pi
	j, err := token.ScanNumber(p.doc, *pi)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	f, err := strconv.ParseFloat(string(p.d[pos:j]), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, p.errAt(fmt.Errorf("%w: %w: %s", ErrParse, token.ErrNumberRange, p.d[pos:j]), pos)
		}
		return nil, p.errAt(fmt.Errorf("%w: %w", ErrParse, token.ErrNumber), pos)
	}
	*pi = j
	ny := ir.FromFloat(f)
	ny.Parent = parent
	p.trackPos(ny, pos)
	return ny, nil
}

// literal matches the fixed keyword byte for byte; truncation at end
// of buffer fails the same way a mismatch does.
func (p *parser) literal(parent *ir.Node, pi *int, text string) (*ir.Node, error) {
	i := *pi
	if len(p.d)-i < len(text) || string(p.d[i:i+len(text)]) != text {
		return nil, p.errAt(fmt.Errorf("%w: %w: expected %q", ErrParse, token.ErrLiteral, text), i)
	}
	*pi = i + len(text)
	var res *ir.Node
	switch text {
	case "true":
		res = ir.FromBool(true)
	case "false":
		res = ir.FromBool(false)
	default:
		res = ir.Null()
	}
	res.Parent = parent
	p.trackPos(res, i)
	return res, nil
}
