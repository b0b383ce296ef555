package reflow

import (
	"bufio"
	"io"

	"github.com/jcorbin/par/internal/charset"
)

// Stop classifies why ReadParagraph stopped collecting Lines.
type Stop int

// Stop reasons.
const (
	StopEOF Stop = iota
	StopBlank
	StopProtect
)

// LineReader scans an input paragraph's worth of normalized Lines at a time,
// the way scandown.BlockStack.Scan scans blocks: byte-by-byte with a single
// byte of pushback, recognizing a small set of structural terminators
// (protect bytes, blank lines) rather than a fixed block grammar.
type LineReader struct {
	br *bufio.Reader

	quote    bool
	quoteSet charset.Set
	invis    bool // when true, quote-vacancy always synthesizes a line rather than truncating

	// quote-vacancy bookkeeping, reset at the start of every IP
	havePrev    bool
	prevPrefix  []byte
	prevQSOnly  bool
}

// NewLineReader constructs a LineReader over r.
func NewLineReader(r io.Reader, quote bool, quoteSet charset.Set, invis bool) *LineReader {
	return &LineReader{br: bufio.NewReader(r), quote: quote, quoteSet: quoteSet, invis: invis}
}

// ReadParagraph reads Lines until a protect byte, a blank line, or EOF is
// encountered. The terminating newline of a blank line (or the protect byte
// itself) is left unconsumed so a subsequent call or the Driver's own
// blank/protect handling can observe it.
func (lr *LineReader) ReadParagraph(protect charset.Set) (lines []Line, props []Prop, stop Stop, err error) {
	lr.havePrev = false
	lr.prevPrefix = nil
	lr.prevQSOnly = false

	for {
		first, e := lr.br.ReadByte()
		if e == io.EOF {
			return lines, props, StopEOF, nil
		}
		if e != nil {
			return lines, props, StopEOF, e
		}
		if protect.Contains(first) {
			if uerr := lr.br.UnreadByte(); uerr != nil {
				return lines, props, StopEOF, uerr
			}
			return lines, props, StopProtect, nil
		}
		if first == '\n' {
			// An empty line is blank; leave its newline for the caller.
			if uerr := lr.br.UnreadByte(); uerr != nil {
				return lines, props, StopEOF, uerr
			}
			return lines, props, StopBlank, nil
		}

		content, rerr := lr.readLineContent(first)
		if rerr != nil {
			return lines, props, StopEOF, rerr
		}
		content = normalizeLine(content)

		if isBlank(content) {
			return lines, props, StopBlank, nil
		}
		// Consume the newline that ends this non-blank line, if any.
		if _, e := lr.br.ReadByte(); e != nil && e != io.EOF {
			return lines, props, StopEOF, e
		}

		line := NewLine(content)
		if lr.quote && lr.havePrev {
			vacant, truncate := lr.quoteVacancy(&line)
			if vacant != nil {
				lines = append(lines, *vacant)
				flags := Flags(0)
				if lr.invis {
					flags = FlagInvis
				}
				props = append(props, Prop{Flags: flags})
			}
			if truncate >= 0 {
				if len(lines) > 0 {
					last := &lines[len(lines)-1]
					if truncate <= last.Len() {
						*last = NewLine(last.Bytes()[:truncate])
					}
				}
				if truncate <= line.Len() {
					line = NewLine(line.Bytes()[:truncate])
				}
			}
		}

		lines = append(lines, line)
		props = append(props, Prop{})
		lr.updateQuoteState(line)
	}
}

// ReadRawLine reads and returns one full line, including its trailing
// newline (or lacking one at EOF), with no normalization applied. Used by
// the Driver to copy a protected line through verbatim.
func (lr *LineReader) ReadRawLine() ([]byte, error) {
	var buf []byte
	for {
		b, err := lr.br.ReadByte()
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return buf, err
		}
		buf = append(buf, b)
		if b == '\n' {
			return buf, nil
		}
	}
}

// readLineContent reads bytes starting with first up to (but not including)
// the next newline, leaving the newline unconsumed if one is found.
func (lr *LineReader) readLineContent(first byte) ([]byte, error) {
	buf := []byte{first}
	for {
		b, err := lr.br.ReadByte()
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return buf, err
		}
		if b == '\n' {
			if uerr := lr.br.UnreadByte(); uerr != nil {
				return buf, uerr
			}
			return buf, nil
		}
		buf = append(buf, b)
	}
}

// normalizeLine strips NUL bytes and coerces any remaining whitespace byte
// to ASCII space.
func normalizeLine(raw []byte) []byte {
	out := raw[:0]
	for _, b := range raw {
		switch {
		case b == 0:
			continue
		case b == ' ' || b == '\t' || b == '\v' || b == '\f' || b == '\r':
			out = append(out, ' ')
		default:
			out = append(out, b)
		}
	}
	return out
}

func isBlank(b []byte) bool {
	for _, c := range b {
		if c != ' ' {
			return false
		}
	}
	return true
}

// quotePrefix computes qpend: the length of the leading run of quote-set
// bytes, trimmed of trailing spaces.
func (lr *LineReader) quotePrefix(b []byte) int {
	n := 0
	for n < len(b) && lr.quoteSet.Contains(b[n]) {
		n++
	}
	for n > 0 && b[n-1] == ' ' {
		n--
	}
	return n
}

func (lr *LineReader) isQSOnly(b []byte, qpend int) bool {
	for _, c := range b[qpend:] {
		if c != ' ' && !lr.quoteSet.Contains(c) {
			return false
		}
	}
	return true
}

// quoteVacancy compares the current line's quote prefix against the
// previous line's, per §4.1's quote-vacancy synthesis: if the prefixes
// diverge, either a vacant line is synthesized ahead of cur (returned as
// vacant), or, when both lines are quote-skeleton-only and invis is not
// forced, the previous and current lines are truncated to their common
// prefix (truncate reports the length to truncate cur to; the caller
// truncates the already-appended previous line itself).
func (lr *LineReader) quoteVacancy(cur *Line) (vacant *Line, truncate int) {
	curPfx := cur.Bytes()[:lr.quotePrefix(cur.Bytes())]
	qsonly := lr.isQSOnly(cur.Bytes(), len(curPfx))

	common := 0
	for common < len(curPfx) && common < len(lr.prevPrefix) && curPfx[common] == lr.prevPrefix[common] {
		common++
	}
	diverge := common < len(curPfx) || common < len(lr.prevPrefix)
	if !diverge {
		return nil, -1
	}

	if lr.prevQSOnly && qsonly && !lr.invis {
		return nil, common
	}

	v := NewLine(append([]byte(nil), curPfx[:common]...))
	return &v, -1
}

func (lr *LineReader) updateQuoteState(line Line) {
	qpend := lr.quotePrefix(line.Bytes())
	lr.prevPrefix = append([]byte(nil), line.Bytes()[:qpend]...)
	lr.prevQSOnly = lr.isQSOnly(line.Bytes(), qpend)
	lr.havePrev = true
}
