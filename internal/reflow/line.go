package reflow

// Line is a single normalized input line: NUL bytes removed, non-newline
// whitespace coerced to ASCII space, newline excluded.
type Line struct {
	b []byte
}

// NewLine wraps b as a Line without copying.
func NewLine(b []byte) Line { return Line{b: b} }

// Bytes returns the line's normalized byte content.
func (l Line) Bytes() []byte { return l.b }

// Len returns the number of bytes in the line.
func (l Line) Len() int { return len(l.b) }

// Flags records per-line classification produced by the Delimiter and
// Superfluous-marking passes.
type Flags uint8

// Line classification flags.
const (
	FlagBodiless Flags = 1 << iota // line's body is empty or a uniform repeat-char run
	FlagInvis                      // synthesized vacant quote-skeleton line
	FlagFirst                      // marks the start of a new body-line group
	FlagSuperf                     // superfluous vacant line, dropped during reassembly
)

// Prop carries per-Line metadata computed by Delimit: the common
// prefix/suffix lengths in force at this line, its classification flags, and
// (for bodiless lines) the uniform repeat byte.
type Prop struct {
	P, S  int16
	Flags Flags
	RC    byte
}

// Bodiless reports whether the line was classified as bodiless.
func (p Prop) Bodiless() bool { return p.Flags&FlagBodiless != 0 }

// Invis reports whether the line is a synthesized vacant quote-skeleton line.
func (p Prop) Invis() bool { return p.Flags&FlagInvis != 0 }

// First reports whether the line starts a new body-line group.
func (p Prop) First() bool { return p.Flags&FlagFirst != 0 }

// Superf reports whether the line is a superfluous vacant line.
func (p Prop) Superf() bool { return p.Flags&FlagSuperf != 0 }

// Body returns the portion of line between its prefix and suffix, per prop.
func Body(line Line, prop Prop) []byte {
	b := line.Bytes()
	lo, hi := int(prop.P), len(b)-int(prop.S)
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		hi = lo
	}
	return b[lo:hi]
}
