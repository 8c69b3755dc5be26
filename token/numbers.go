package token

// ScanNumber returns the offset just past the longest valid JSON
// number starting at i, per the RFC 8259 grammar: optional minus, an
// integer part with no leading zero, optional fraction, optional
// exponent. ErrNumber when not even a bare integer part matches.
func ScanNumber(doc *PosDoc, i int) (int, error) {
	d := doc.d
	j := i
	if j < len(d) && d[j] == '-' {
		j++
	}
	digits := asciiDigits(d[j:])
	if digits == 0 {
		return 0, PosErr(ErrNumber, doc.Pos(i))
	}
	if d[j] == '0' && digits > 1 {
		// "01" is two tokens per grammar; take the zero
		digits = 1
	}
	j += digits
	j += fract(d[j:])
	j += exp(d[j:])
	return j, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	if d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// . must be followed by 1 or more digits rfc 8259
		return 0
	}
	return n + 1
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}
