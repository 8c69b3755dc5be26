package token

// Byte-indexed lookup tables shared by the scanner and the encoder.
// 256 entries each so classification is a single index, no branch
// chains.
var (
	// spaceTab marks JSON whitespace.
	spaceTab [256]bool
	// escTab maps a byte to the character following '\' in its short
	// escape on output, 0 when the byte needs no escaping. Control
	// bytes without a short escape map to 'u'.
	escTab [256]byte
	// unescTab maps the character after '\' in an input escape to the
	// decoded byte, 0xFF when the escape is invalid.
	unescTab [256]byte
	// ctlTab marks bytes that may not appear raw inside a string.
	ctlTab [256]bool
)

func init() {
	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		spaceTab[c] = true
	}
	for c := range 0x20 {
		ctlTab[c] = true
		escTab[c] = 'u'
	}
	escTab['"'] = '"'
	escTab['\\'] = '\\'
	escTab['\b'] = 'b'
	escTab['\f'] = 'f'
	escTab['\n'] = 'n'
	escTab['\r'] = 'r'
	escTab['\t'] = 't'
	for i := range unescTab {
		unescTab[i] = 0xFF
	}
	unescTab['"'] = '"'
	unescTab['\\'] = '\\'
	unescTab['/'] = '/'
	unescTab['b'] = '\b'
	unescTab['f'] = '\f'
	unescTab['n'] = '\n'
	unescTab['r'] = '\r'
	unescTab['t'] = '\t'
}

func IsSpace(c byte) bool {
	return spaceTab[c]
}

// Escape returns the short-escape selector for c on output and whether
// c needs escaping at all.
func Escape(c byte) (byte, bool) {
	e := escTab[c]
	return e, e != 0
}

// Unescape decodes the 2-character escape '\'+c, reporting whether c
// selects a valid short escape. '\u' is not a short escape.
func Unescape(c byte) (byte, bool) {
	u := unescTab[c]
	return u, u != 0xFF
}

// IsControl reports whether c is a control byte that must be escaped
// inside a string.
func IsControl(c byte) bool {
	return ctlTab[c]
}
