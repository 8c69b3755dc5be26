package encode

import "fmt"

// Format selects between the two output modes.
type Format int

const (
	// Pretty indents with 4 spaces, one member per line.
	Pretty Format = iota
	// Minimized emits no whitespace at all.
	Minimized
)

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"p":      Pretty,
		"pretty": Pretty,
		"m":      Minimized,
		"min":    Minimized,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("bad format %q", v)
}

func (f Format) String() string {
	switch f {
	case Pretty:
		return "pretty"
	case Minimized:
		return "min"
	default:
		return fmt.Sprintf("<err: %d is not a format>", f)
	}
}

type EncodeOption func(*EncState)

func EncodeFormat(f Format) EncodeOption {
	return func(es *EncState) { es.wire = f == Minimized }
}

// EncodeWire enables minimized output.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting indent depth, for embedding output under
// already-indented surroundings.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
