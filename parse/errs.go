package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse    = errors.New("parse error")
	ErrColon    = fmt.Errorf("%w: expected ':' after object key", ErrParse)
	ErrComma    = fmt.Errorf("%w: expected ',' or closing bracket", ErrParse)
	ErrKey      = fmt.Errorf("%w: expected object key", ErrParse)
	ErrTrailing = fmt.Errorf("%w: trailing content after value", ErrParse)
	ErrDepth    = fmt.Errorf("%w: maximum recursion depth exceeded", ErrParse)
)
