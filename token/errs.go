package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEnd    = errors.New("unexpected end of input")
	ErrUnexpectedSymbol = errors.New("unexpected symbol")
	ErrUnterminated     = errors.New("unterminated string")
	ErrBadEscape        = errors.New("bad escape")
	ErrBadUnicode       = errors.New("bad unicode escape")
	ErrControlChar      = errors.New("unescaped control character")
	ErrNumber           = errors.New("not a number")
	ErrNumberRange      = errors.New("number out of range")
	ErrLiteral          = errors.New("bad literal")
)

// PosErr annotates err with the line/column context at p.
func PosErr(err error, p *Pos) error {
	return fmt.Errorf("%w\n%s", err, p)
}
