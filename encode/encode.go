package encode

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jx-format/go-jx/debug"
	"github.com/jx-format/go-jx/ir"
	"github.com/jx-format/go-jx/token"
)

// EncState carries the encoder's layout state through the recursive
// walk. One emitter serves both formats; wire suppresses all
// whitespace.
type EncState struct {
	depth, indent int
	wire          bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node's textual form to w. The default is the pretty
// format with 4-space indents and no trailing newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 4}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		if debug.Encode() {
			debug.Logf("encode of %s failed: %v\n", node.Type, err)
		}
		return err
	}
	return nil
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(node, w, es)
	default:
		panic("type")
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeSep(w io.Writer, es *EncState, cType ir.Type) error {
	sep := ","
	if es.Color != nil {
		sep = es.Color(cType, SepColor, sep)
	}
	return writeString(w, sep)
}

func writeField(w io.Writer, f string, es *EncState) error {
	f = token.Quote(f)
	sep := ":"
	if !es.wire {
		sep = ": "
	}
	if es.Color != nil {
		f = es.Color(ir.ObjectType, FieldColor, f)
		sep = es.Color(ir.ObjectType, SepColor, sep)
	}
	return writeString(w, f+sep)
}

// Empty collections stay inline with no interior whitespace in either
// format.
func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	for i, f := range node.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, f.String, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < len(node.Fields)-1 {
			if err := writeSep(w, es, ir.ObjectType); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			if err := writeSep(w, es, ir.ArrayType); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "]")
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	v := token.Quote(node.String)
	if es.Color != nil {
		v = es.Color(ir.StringType, ValueColor, v)
	}
	return writeString(w, v)
}

// numBufSize covers the longest shortest-round-trip rendering of a
// float64 (sign, 17 significant digits, point, exponent).
const numBufSize = 32

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	var buf [numBufSize]byte
	v := string(AppendNumber(buf[:0], node.Float64))
	if es.Color != nil {
		v = es.Color(ir.NumberType, ValueColor, v)
	}
	return writeString(w, v)
}

// AppendNumber appends the minimal-digit round-trip form of f. JSON
// has no literal for non-finite values, so NaN and the infinities are
// emitted as quoted strings.
func AppendNumber(dst []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, `"NaN"`...)
	case math.IsInf(f, 1):
		return append(dst, `"+Inf"`...)
	case math.IsInf(f, -1):
		return append(dst, `"-Inf"`...)
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.AppendFloat(dst, f, format, -1, 64)
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatBool(node.Bool)
	if es.Color != nil {
		v = es.Color(ir.BoolType, ValueColor, v)
	}
	return writeString(w, v)
}

func encodeNull(node *ir.Node, w io.Writer, es *EncState) error {
	v := "null"
	if es.Color != nil {
		v = es.Color(ir.NullType, ValueColor, v)
	}
	return writeString(w, v)
}
