package reflow

import "github.com/jcorbin/par/internal/charset"

// Config bundles a Reformatter's tunables, mirroring the flag-settable
// knobs of §6: body/quote char sets, width/prefix/suffix, hanging
// header-line count, justification and fit/touch modes, and the guess
// pass's terminal-char set and forced-capital behavior.
type Config struct {
	BodyChars  charset.Set
	QuoteChars charset.Set
	Terminal   charset.Set

	Width  int
	Prefix int // < 0 means "compute via Affixer"
	Suffix int // < 0 means "compute via Affixer"
	Hang   int
	Repeat int

	Quote     bool
	Invis     bool
	Expel     bool // expel: drop superfluous vacant lines from output
	Guess     bool // guess: run the curious/capital merge pass
	Justify   bool
	Fit       bool
	Touch     bool
	Last      bool
	ForceCap  bool
	Report    bool
	Divergent bool // div: first-marking keyed on indent change vs. sub-IP boundary
}

// DefaultConfig returns a Config with the specification's stated defaults:
// width 72, quote set "> ", no user prefix/suffix, hang 1, ragged mode.
func DefaultConfig() Config {
	return Config{
		BodyChars: charset.New(), // empty: every byte may be body by default
		QuoteChars: func() charset.Set {
			s, _ := charset.Parse("> ")
			return s
		}(),
		Terminal: defaultTerminal,
		Width:    72,
		Prefix:   -1,
		Suffix:   -1,
		Hang:     1,
		Repeat:   3,
	}
}

// Reformat runs the Affixer, tokenizer, guess/merge pass, over-long word
// handling, line-break optimizer and assembler over a single body-line
// group (lines delimited as non-bodiless, per Delimit), returning the
// reassembled output lines.
func Reformat(lines []Line, props []Prop, cfg Config) ([][]byte, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	prefix, suffix := Affix(lines, props, cfg.BodyChars, cfg.Hang, cfg.Quote, cfg.QuoteChars, cfg.Prefix, cfg.Suffix)

	wl, err := Tokenize(lines, prefix, suffix)
	if err != nil {
		return nil, err
	}

	if cfg.Guess {
		wl.guessPass(cfg.Terminal, cfg.ForceCap)
	}

	L := cfg.Width - prefix - suffix
	if L < 1 {
		return nil, &Error{Kind: ErrLineTooShort}
	}

	wl, err = splitOverLong(wl, L, cfg.Report)
	if err != nil {
		return nil, err
	}

	if cfg.Justify {
		if err := breakJustify(wl, L, cfg.Last); err != nil {
			return nil, err
		}
	} else {
		if err := breakRagged(wl, L, cfg.Fit, cfg.Last); err != nil {
			return nil, err
		}
	}

	outL := L
	if !cfg.Justify && cfg.Touch {
		outL = touchWidth(wl, L)
	}

	return Assemble(lines, prefix, suffix, wl, outL, cfg.Hang, cfg.Justify, cfg.Last), nil
}

// touchWidth recomputes the output body width as the actual maximum
// produced-line length, per §4.5.6, so padding does not overshoot what the
// break actually used.
func touchWidth(wl *wordList, target int) int {
	if wl.empty() {
		return 0
	}
	max := 0
	for id := wl.head(); id != 0; id = wl.at(id).nextline {
		n := wl.linelen(id, wl.at(id).nextline)
		if n > max {
			max = n
		}
	}
	if max == 0 {
		return target
	}
	return max
}
