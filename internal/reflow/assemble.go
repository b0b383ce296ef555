package reflow

// Assemble renders the words broken by breakRagged/breakJustify (or touched
// up per §4.5.6) back into output lines, reattaching prefix/suffix bytes and
// distributing justification padding, per §4.5.7.
//
// lines/props is the full body-line group (as Affixed), wl is the
// word list after tokenizing, guessing and splitting, prefix/suffix are the
// Affixer's chosen values, L is the per-line body width (post-touch, if
// applicable), hang is the header-line count, and just/last mirror the
// Driver's configuration.
func Assemble(lines []Line, prefix, suffix int, wl *wordList, L, hang int, just, last bool) [][]byte {
	n := len(lines)

	starts := make([]wordID, 0)
	for id := wl.head(); id != 0; id = wl.at(id).nextline {
		starts = append(starts, id)
	}
	breakCount := len(starts)

	total := hang
	if breakCount > total {
		total = breakCount
	}
	if total == 0 {
		total = n
	}

	out := make([][]byte, 0, total)
	for i := 0; i < total; i++ {
		var start, end wordID
		haveLine := i < breakCount
		if haveLine {
			start = starts[i]
			end = wl.at(start).nextline
		}

		pfx := computePrefix(lines, prefix, hang, i, n)
		sfx := computeSuffix(lines, suffix, n)

		var body []byte
		if haveLine {
			// A produced line is exempt from gap distribution only when it
			// is the trailing remainder of a genuinely multi-line break and
			// the caller hasn't asked (via last) for that remainder to be
			// justified too. A single-line break has no "remainder" to
			// exempt: it is the whole paragraph, not a short tail.
			exempt := end == 0 && breakCount > 1 && !last
			body = renderBody(wl, start, end, L, just, exempt)
		}

		line := make([]byte, 0, len(pfx)+L+suffix)
		line = append(line, pfx...)
		line = append(line, body...)
		if (just || suffix > 0) && len(body) < L {
			for k := len(body); k < L; k++ {
				line = append(line, ' ')
			}
		}
		if suffix > 0 {
			line = append(line, sfx...)
		}
		out = append(out, line)
	}
	return out
}

func computePrefix(lines []Line, prefix, hang, i, n int) []byte {
	if i < n {
		b := lines[i].Bytes()
		if prefix <= len(b) {
			return b[:prefix]
		}
		return padTo(b, prefix)
	}
	if n > hang {
		b := lines[n-1].Bytes()
		if prefix <= len(b) {
			return b[:prefix]
		}
		return padTo(b, prefix)
	}
	b := lines[n-1].Bytes()
	afp := prefix
	if afp > len(b) {
		afp = len(b)
	}
	return padTo(b[:afp], prefix)
}

func computeSuffix(lines []Line, suffix, n int) []byte {
	if suffix == 0 {
		return nil
	}
	b := lines[n-1].Bytes()
	hi := len(b)
	lo := hi - suffix
	if lo < 0 {
		lo = 0
	}
	return padToLeft(b[lo:hi], suffix)
}

func padTo(b []byte, n int) []byte {
	out := make([]byte, n)
	copy(out, b)
	for i := len(b); i < n; i++ {
		out[i] = ' '
	}
	return out
}

func padToLeft(b []byte, n int) []byte {
	if len(b) >= n {
		return b[len(b)-n:]
	}
	out := make([]byte, n)
	pad := n - len(b)
	for i := 0; i < pad; i++ {
		out[i] = ' '
	}
	copy(out[pad:], b)
	return out
}

// renderBody writes the words from start (inclusive) to end (exclusive,
// 0 meaning to the list's tail) into a single output line, inserting one
// joining space between words (two when the later word is shifted), and,
// when distribute applies, spreading L-linelen extra spaces across the
// line's internal gaps with a phase accumulator so they land as evenly as
// possible.
func renderBody(wl *wordList, start, end wordID, L int, just, exempt bool) []byte {
	var words []wordID
	for id := start; id != end; id = wl.at(id).next {
		words = append(words, id)
	}
	if len(words) == 0 {
		return nil
	}

	numgaps := len(words) - 1
	rawLen := wl.linelen(start, end)
	distribute := just && numgaps > 0 && !exempt

	out := make([]byte, 0, L)
	out = append(out, wl.bytes(words[0])...)

	if !distribute {
		for _, id := range words[1:] {
			out = append(out, ' ')
			if wl.at(id).flags&WordShifted != 0 {
				out = append(out, ' ')
			}
			out = append(out, wl.bytes(id)...)
		}
		return out
	}

	extra := L - rawLen
	if extra < 0 {
		extra = 0
	}
	phase := numgaps / 2
	for _, id := range words[1:] {
		phase += extra
		extraHere := 0
		for phase >= numgaps {
			extraHere++
			phase -= numgaps
		}
		n := 1 + extraHere
		if wl.at(id).flags&WordShifted != 0 {
			n++
		}
		for k := 0; k < n; k++ {
			out = append(out, ' ')
		}
		out = append(out, wl.bytes(id)...)
	}
	return out
}
