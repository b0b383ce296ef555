package reflow

import "github.com/jcorbin/par/internal/charset"

// Delimit computes per-line Prop.P/S/Flags/RC for an input paragraph's
// Lines: the common prefix/suffix region shared by the group, bodiless-line
// detection, recursive refinement around bodiless markers, and
// paragraph-start ("first") marking.
func Delimit(lines []Line, bodyChars charset.Set, repeat int, div bool) []Prop {
	props := delimit(lines, bodyChars, repeat, 0, 0)
	markFirst(lines, props, div)
	return props
}

func delimit(lines []Line, bodyChars charset.Set, repeat, preLB, sufLB int) []Prop {
	if len(lines) == 0 {
		return nil
	}

	pre := comprelen(lines, bodyChars, preLB)
	suf := comsuflen(lines, bodyChars, pre, sufLB)

	bodiless := make([]bool, len(lines))
	rc := make([]byte, len(lines))
	anyBodiless := false
	for i, l := range lines {
		bodiless[i], rc[i] = classifyBodiless(l, pre, suf, repeat)
		anyBodiless = anyBodiless || bodiless[i]
	}

	props := make([]Prop, len(lines))
	if !anyBodiless {
		for i := range lines {
			props[i] = Prop{P: int16(pre), S: int16(suf)}
		}
		return props
	}

	i := 0
	for i < len(lines) {
		if bodiless[i] {
			props[i] = Prop{P: int16(pre), S: int16(suf), Flags: FlagBodiless, RC: rc[i]}
			i++
			continue
		}
		j := i
		for j < len(lines) && !bodiless[j] {
			j++
		}
		sub := delimit(lines[i:j], bodyChars, repeat, pre, suf)
		copy(props[i:j], sub)
		i = j
	}
	return props
}

// comprelen returns the length of the longest common byte prefix among
// lines, bounded below by lowerBound and truncated at (excluding) the first
// body-char encountered.
func comprelen(lines []Line, bodyChars charset.Set, lowerBound int) int {
	if len(lines) < 2 {
		// A singleton has nothing to share a prefix with; treat the common
		// prefix as just the lower bound rather than degenerating to the
		// line's entire content.
		return lowerBound
	}
	n := minLineLen(lines)
	pre := lowerBound
	for pre < n {
		c := lines[0].b[pre]
		same := true
		for _, l := range lines[1:] {
			if l.b[pre] != c {
				same = false
				break
			}
		}
		if !same || bodyChars.Contains(c) {
			break
		}
		pre++
	}
	return pre
}

// comsuflen returns the length of the longest common byte suffix among
// lines measured from position pre onward, bounded below by lowerBound,
// extended leftward only while bytes are not body-chars, then shortened so
// the body byte(s) immediately preceding it are not a run of >=2 spaces.
func comsuflen(lines []Line, bodyChars charset.Set, pre, lowerBound int) int {
	if len(lines) < 2 {
		return lowerBound
	}
	avail := minLineLen(lines) - pre
	suf := lowerBound
	for suf < avail {
		pos0 := len(lines[0].b) - 1 - suf
		c := lines[0].b[pos0]
		same := true
		for _, l := range lines[1:] {
			pos := len(l.b) - 1 - suf
			if l.b[pos] != c {
				same = false
				break
			}
		}
		if !same || bodyChars.Contains(c) {
			break
		}
		suf++
	}

	for suf > lowerBound {
		ok := true
		for _, l := range lines {
			n := len(l.b)
			i1 := n - suf - 1
			if i1 < 0 {
				continue
			}
			if l.b[i1] == ' ' {
				if i2 := n - suf - 2; i2 >= 0 && l.b[i2] == ' ' {
					ok = false
					break
				}
			}
		}
		if ok {
			break
		}
		suf--
	}
	return suf
}

func minLineLen(lines []Line) int {
	n := -1
	for _, l := range lines {
		if n == -1 || l.Len() < n {
			n = l.Len()
		}
	}
	if n == -1 {
		return 0
	}
	return n
}

// classifyBodiless reports whether line's body (between pre and suf) is
// empty or a uniform run of a single repeat byte, per §4.2's bodiless rules.
func classifyBodiless(line Line, pre, suf, repeat int) (bodiless bool, rc byte) {
	b := line.b
	lo, hi := pre, len(b)-suf
	if lo > hi {
		lo = hi
	}
	body := b[lo:hi]
	if len(body) == 0 {
		return true, ' '
	}
	rc = body[0]
	for _, c := range body[1:] {
		if c != rc {
			return false, 0
		}
	}
	if rc == ' ' {
		return true, ' '
	}
	if repeat == 0 || len(body) >= repeat {
		return true, rc
	}
	return false, 0
}

func markFirst(lines []Line, props []Prop, div bool) {
	havePrev := false
	prevStartsSpace := false
	atRunStart := true
	for i := range props {
		if props[i].Flags&FlagBodiless != 0 {
			atRunStart = true
			havePrev = false
			continue
		}
		body := Body(lines[i], props[i])
		startsSpace := len(body) > 0 && body[0] == ' '
		if div {
			if !havePrev || startsSpace != prevStartsSpace {
				props[i].Flags |= FlagFirst
			}
		} else if atRunStart {
			props[i].Flags |= FlagFirst
		}
		prevStartsSpace = startsSpace
		havePrev = true
		atRunStart = false
	}
}

// MarkSuperfluous marks vacant runs (bodiless lines with rc == ' ') as
// superfluous except for one "kept" vacant per interior run, per §4.3.
// Runs touching either end of lines carry no kept vacant.
func MarkSuperfluous(lines []Line, props []Prop) {
	isVacant := func(i int) bool {
		return props[i].Flags&FlagBodiless != 0 && props[i].RC == ' '
	}
	for i := range props {
		if isVacant(i) {
			props[i].Flags |= FlagSuperf
		}
	}
	i := 0
	for i < len(props) {
		if !isVacant(i) {
			i++
			continue
		}
		j := i
		for j < len(props) && isVacant(j) {
			j++
		}
		if i > 0 && j < len(props) {
			best, bestCount := -1, 0
			for k := i; k < j; k++ {
				cnt := countNonSpace(lines[k].Bytes())
				if best == -1 || cnt < bestCount {
					best, bestCount = k, cnt
				}
			}
			props[best].Flags &^= FlagSuperf
		}
		i = j
	}
}

func countNonSpace(b []byte) int {
	n := 0
	for _, c := range b {
		if c != ' ' {
			n++
		}
	}
	return n
}
