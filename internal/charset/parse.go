package charset

import "fmt"

// Parse reads a charset literal of the form documented in par(1): a sequence
// of character specs implicitly unioned together. Each spec is a single
// byte, a backslash escape (\\, \n, \t, \v, \f, \r, \", \', \ooo octal,
// \xhh hex), a range "a-b", or a named class: _A alphabetic, _D digit,
// _L lowercase, _P punctuation, _S whitespace, _U uppercase.
//
// This is a convenience parser for wiring par's CLI flags end to end; the
// full grammar is an external concern per the specification (§6), so this
// implementation covers the documented grammar but does not attempt to be a
// general-purpose character-class DSL.
func Parse(lit string) (Set, error) {
	var s Set
	b := []byte(lit)
	for i := 0; i < len(b); {
		// named class: _A _D _L _P _S _U, standalone (never a range endpoint)
		if b[i] == '_' && i+1 < len(b) {
			if err := ParseClass(&s, b[i+1]); err == nil {
				i += 2
				continue
			}
		}

		lo, n, err := parseOne(b[i:])
		if err != nil {
			return s, err
		}
		i += n

		// range?
		if i < len(b) && b[i] == '-' && i+1 < len(b) {
			hi, n2, err := parseOne(b[i+1:])
			if err != nil {
				return s, err
			}
			if hi < lo {
				return s, fmt.Errorf("charset: invalid range %c-%c", lo, hi)
			}
			for c := int(lo); c <= int(hi); c++ {
				s.Add(byte(c))
			}
			i += 1 + n2
			continue
		}

		s.Add(lo)
	}
	return s, nil
}

// parseOne parses a single character spec (escape or literal byte),
// advancing by the consumed byte count.
func parseOne(b []byte) (lo byte, n int, err error) {
	if b[0] == '\\' && len(b) >= 2 {
		switch b[1] {
		case '\\':
			return '\\', 2, nil
		case 'n':
			return '\n', 2, nil
		case 't':
			return '\t', 2, nil
		case 'v':
			return '\v', 2, nil
		case 'f':
			return '\f', 2, nil
		case 'r':
			return '\r', 2, nil
		case '"':
			return '"', 2, nil
		case '\'':
			return '\'', 2, nil
		case 'x':
			if len(b) >= 4 {
				v, ok := hex2(b[2], b[3])
				if ok {
					return v, 4, nil
				}
			}
			return 0, 0, fmt.Errorf("charset: invalid \\x escape")
		default:
			if b[1] >= '0' && b[1] <= '7' {
				v, n := octal(b[1:])
				return v, 1 + n, nil
			}
			return 0, 0, fmt.Errorf("charset: invalid escape \\%c", b[1])
		}
	}
	return b[0], 1, nil
}

// ParseClass adds a full named class (_A, _D, _L, _P, _S, _U) into dst.
func ParseClass(dst *Set, name byte) error {
	switch name {
	case 'A':
		for c := 'a'; c <= 'z'; c++ {
			dst.Add(byte(c))
		}
		for c := 'A'; c <= 'Z'; c++ {
			dst.Add(byte(c))
		}
	case 'D':
		for c := '0'; c <= '9'; c++ {
			dst.Add(byte(c))
		}
	case 'L':
		for c := 'a'; c <= 'z'; c++ {
			dst.Add(byte(c))
		}
	case 'U':
		for c := 'A'; c <= 'Z'; c++ {
			dst.Add(byte(c))
		}
	case 'S':
		for _, c := range []byte(" \t\n\v\f\r") {
			dst.Add(c)
		}
	case 'P':
		for c := '!'; c <= '/'; c++ {
			dst.Add(byte(c))
		}
		for c := ':'; c <= '@'; c++ {
			dst.Add(byte(c))
		}
		for c := '['; c <= '`'; c++ {
			dst.Add(byte(c))
		}
		for c := '{'; c <= '~'; c++ {
			dst.Add(byte(c))
		}
	default:
		return fmt.Errorf("charset: unknown named class _%c", name)
	}
	return nil
}

func hex2(a, b byte) (byte, bool) {
	hi, ok1 := hexDigit(a)
	lo, ok2 := hexDigit(b)
	if !ok1 || !ok2 {
		return 0, false
	}
	return hi<<4 | lo, true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

func octal(b []byte) (v byte, n int) {
	for n < 3 && n < len(b) && b[n] >= '0' && b[n] <= '7' {
		v = v*8 + (b[n] - '0')
		n++
	}
	return v, n
}
