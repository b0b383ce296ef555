package reflow

import (
	"io"

	"github.com/jcorbin/par/internal/charset"
	"github.com/jcorbin/par/internal/parutil"
)

// Driver is the top-level stdin-to-stdout filter loop: it alternates
// reading input paragraphs via LineReader, delimiting and reformatting
// their body-line groups, and copying bodiless lines, blank-line
// separators, and protected lines through verbatim, per §4.6.
type Driver struct {
	lr      *LineReader
	out     *parutil.WriteBuffer
	cfg     Config
	protect charset.Set
}

// NewDriver constructs a Driver reading r and writing w under cfg, treating
// any byte in protect as a paragraph-ending protected line.
func NewDriver(r io.Reader, w io.Writer, cfg Config, protect charset.Set) *Driver {
	return &Driver{
		lr:      NewLineReader(r, cfg.Quote, cfg.QuoteChars, cfg.Invis),
		out:     &parutil.WriteBuffer{To: w},
		cfg:     cfg,
		protect: protect,
	}
}

// Run drives the filter to completion, returning the first error
// encountered (an I/O error, or a *Error from a failed reformat).
func (d *Driver) Run() error {
	for {
		lines, props, stop, err := d.lr.ReadParagraph(d.protect)
		if err != nil {
			return err
		}
		if len(lines) > 0 {
			if err := d.processIP(lines, props); err != nil {
				return err
			}
		}
		switch stop {
		case StopEOF:
			return d.out.Flush()
		case StopBlank:
			if err := d.echoBoundaryNewline(); err != nil {
				return err
			}
		case StopProtect:
			if err := d.echoProtectedLine(); err != nil {
				return err
			}
		}
	}
}

func (d *Driver) processIP(lines []Line, lrProps []Prop) error {
	props := Delimit(lines, d.cfg.BodyChars, d.cfg.Repeat, d.cfg.Divergent)
	for i := range props {
		if lrProps[i].Flags&FlagInvis != 0 {
			props[i].Flags |= FlagInvis
		}
	}
	MarkSuperfluous(lines, props)

	i := 0
	for i < len(lines) {
		if props[i].Bodiless() {
			skip := props[i].Superf() && d.cfg.Expel
			skip = skip || (props[i].Invis() && !d.cfg.Invis)
			if !skip {
				if err := d.writeLine(lines[i].Bytes()); err != nil {
					return err
				}
			}
			i++
			continue
		}
		j := i
		for j < len(lines) && !props[j].Bodiless() && (j == i || !props[j].First()) {
			j++
		}
		out, err := Reformat(lines[i:j], props[i:j], d.cfg)
		if err != nil {
			return err
		}
		for _, l := range out {
			if err := d.writeLine(l); err != nil {
				return err
			}
		}
		i = j
	}
	return nil
}

func (d *Driver) writeLine(b []byte) error {
	d.out.Write(b)
	d.out.WriteByte('\n')
	return d.out.MaybeFlush()
}

func (d *Driver) echoBoundaryNewline() error {
	b, err := d.lr.br.ReadByte()
	if err != nil {
		return err
	}
	if b != '\n' {
		d.out.WriteByte(b)
	}
	d.out.WriteByte('\n')
	return d.out.MaybeFlush()
}

func (d *Driver) echoProtectedLine() error {
	raw, err := d.lr.ReadRawLine()
	if err != nil {
		return err
	}
	d.out.Write(raw)
	return d.out.MaybeFlush()
}
