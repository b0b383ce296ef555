// Package parflag parses par's flag-letter-chain CLI grammar (§6 of the
// specification this command implements): concatenated boolean letters,
// numeric-argument letters, and charset-replacing letters within a single
// argument token, plus a bare numeric argument shorthand. The grammar
// doesn't map onto a conventional flag.FlagSet (letters chain within one
// token, and a charset op consumes the remainder of its token), so it is
// hand-rolled, the way teacher the specification names for "external"
// argument parsing.
package parflag

import (
	"fmt"
	"strconv"

	"github.com/jcorbin/par/internal/charset"
	"github.com/jcorbin/par/internal/reflow"
)

// Options is the fully-parsed result of a par invocation's arguments.
type Options struct {
	Config      reflow.Config
	Protect     charset.Set
	ErrToStderr bool
	Help        bool
	Version     bool
}

// Default returns the specification's documented flag defaults.
func Default() Options {
	return Options{Config: reflow.DefaultConfig()}
}

// Parse parses args (already including any PARINIT prefix) against opts,
// returning the updated Options.
func Parse(args []string, opts Options) (Options, error) {
	for _, arg := range args {
		if arg == "help" {
			opts.Help = true
			continue
		}
		if arg == "version" {
			opts.Version = true
			continue
		}
		if n, ok := parseBareNumber(arg); ok {
			if n <= 8 {
				opts.Config.Prefix = n
			} else {
				opts.Config.Width = n
			}
			continue
		}
		if err := parseChain(arg, &opts); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func parseBareNumber(arg string) (int, bool) {
	if arg == "" {
		return 0, false
	}
	for _, c := range arg {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n > 9999 {
		return 0, false
	}
	return n, true
}

func parseChain(arg string, opts *Options) error {
	i := 0
	for i < len(arg) {
		c := arg[i]
		switch c {
		case 'B', 'P', 'Q':
			n, err := applyCharsetFlag(arg[i:], opts)
			if err != nil {
				return err
			}
			i += n
		case 'h', 'p', 'r', 's', 'w':
			n, err := applyNumericFlag(c, arg[i+1:], opts)
			if err != nil {
				return err
			}
			i += 1 + n
		case 'c', 'd', 'E', 'e', 'f', 'g', 'i', 'j', 'l', 'q', 'R', 't':
			n, val, err := applyBoolFlag(c, arg[i+1:], opts)
			if err != nil {
				return err
			}
			i += 1 + n
			_ = val
		default:
			return fmt.Errorf("parflag: unrecognized flag %q in %q", string(c), arg)
		}
	}
	return nil
}

// applyCharsetFlag parses a B/P/Q flag starting at s (s[0] is 'B', 'P', or
// 'Q'), consuming the remainder of the token as an op plus charset literal.
// It returns the number of bytes consumed (always len(s), since a charset
// flag always runs to the end of its token).
func applyCharsetFlag(s string, opts *Options) (int, error) {
	letter := s[0]
	if len(s) < 2 {
		return 0, fmt.Errorf("parflag: %q missing op and set", s)
	}
	op := s[1]
	lit := s[2:]
	set, err := charset.Parse(lit)
	if err != nil {
		return 0, fmt.Errorf("parflag: %q: %w", s, err)
	}

	var target *charset.Set
	switch letter {
	case 'B':
		target = &opts.Config.BodyChars
	case 'P':
		target = &opts.Protect
	case 'Q':
		target = &opts.Config.QuoteChars
	}

	switch op {
	case '=':
		*target = set
	case '+':
		target.UnionWith(set)
	case '-':
		target.SubtractFrom(set)
	default:
		return 0, fmt.Errorf("parflag: %q: unknown op %q", s, string(op))
	}
	return len(s), nil
}

// applyNumericFlag parses a numeric-argument flag letter's optional decimal
// value out of rest (which begins immediately after the letter), returning
// the count of digit bytes consumed. A missing value resets the flag to its
// fixed default (h=1, p and s automatic, r=3, w=72).
func applyNumericFlag(letter byte, rest string, opts *Options) (int, error) {
	n := 0
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	if n == 0 {
		applyNumericDefault(letter, opts)
		return 0, nil
	}
	v, err := strconv.Atoi(rest[:n])
	if err != nil || v > 9999 {
		return 0, fmt.Errorf("parflag: bad numeric value for %q", string(letter))
	}
	switch letter {
	case 'h':
		opts.Config.Hang = v
	case 'p':
		opts.Config.Prefix = v
	case 'r':
		opts.Config.Repeat = v
	case 's':
		opts.Config.Suffix = v
	case 'w':
		opts.Config.Width = v
	}
	return n, nil
}

func applyNumericDefault(letter byte, opts *Options) {
	switch letter {
	case 'h':
		opts.Config.Hang = 1
	case 'p':
		opts.Config.Prefix = -1
	case 'r':
		opts.Config.Repeat = 3
	case 's':
		opts.Config.Suffix = -1
	case 'w':
		opts.Config.Width = 72
	}
}

// applyBoolFlag parses a boolean flag letter's optional "=0"/"=1" suffix out
// of rest, returning the count of bytes consumed from rest and the value
// applied. A bare letter (no "=" suffix) toggles the flag on.
func applyBoolFlag(letter byte, rest string, opts *Options) (int, bool, error) {
	val := true
	n := 0
	if len(rest) >= 2 && rest[0] == '=' && (rest[1] == '0' || rest[1] == '1') {
		val = rest[1] == '1'
		n = 2
	}
	switch letter {
	case 'c':
		opts.Config.ForceCap = val
	case 'd':
		opts.Config.Divergent = val
	case 'E':
		opts.ErrToStderr = val
	case 'e':
		opts.Config.Expel = val
	case 'f':
		opts.Config.Fit = val
	case 'g':
		opts.Config.Guess = val
	case 'i':
		opts.Config.Invis = val
	case 'j':
		opts.Config.Justify = val
	case 'l':
		opts.Config.Last = val
	case 'q':
		opts.Config.Quote = val
	case 'R':
		opts.Config.Report = val
	case 't':
		opts.Config.Touch = val
	}
	return n, val, nil
}
