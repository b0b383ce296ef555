package reflow

import "github.com/jcorbin/par/internal/charset"

// defaultTerminal is the sentence-terminal punctuation set used by the
// guess/merge pass when the caller does not supply one; the specification
// leaves this set uncustomizable via the cmd/par flag grammar, so a sane
// built-in default stands in.
var defaultTerminal = charset.New('.', '?', '!')

// Tokenize splits each line's body region (between prefix and suffix) into
// Words on runs of one-or-more spaces, building a wordList ready for the
// guess/merge pass. It fails if any line is shorter than prefix+suffix.
func Tokenize(lines []Line, prefix, suffix int) (*wordList, error) {
	for _, l := range lines {
		if l.Len() < prefix+suffix {
			return nil, &Error{Kind: ErrLineTooShort}
		}
	}
	wl := newWordList(lines)
	for i, l := range lines {
		b := l.Bytes()
		end := len(b) - suffix
		j := prefix
		for j < end {
			for j < end && b[j] == ' ' {
				j++
			}
			if j >= end {
				break
			}
			start := j
			for j < end && b[j] != ' ' {
				j++
			}
			wl.pushBack(i, start, j-start)
		}
	}
	return wl, nil
}

func computeCurious(b []byte, terminal charset.Set) bool {
	i := len(b)
	for i > 0 && !isAlnum(b[i-1]) {
		i--
	}
	if i == len(b) || i == 0 {
		return false
	}
	for _, c := range b[i:] {
		if terminal.Contains(c) {
			return true
		}
	}
	return false
}

func computeCapital(b []byte, capFlag bool) bool {
	if capFlag {
		return true
	}
	for _, c := range b {
		if isAlnum(c) {
			return !(c >= 'a' && c <= 'z')
		}
	}
	return false
}

// guessPass computes curious/capital flags for every Word, then merges a
// capital Word into an immediately-preceding, adjacent curious Word (a
// "Mr. Smith"-style false sentence break), marking non-adjacent occurrences
// shifted instead, per §4.5.2.
func (wl *wordList) guessPass(terminal charset.Set, capFlag bool) {
	for id := wl.head(); id != 0; id = wl.at(id).next {
		w := wl.at(id)
		b := wl.bytes(id)
		if computeCurious(b, terminal) {
			w.flags |= WordCurious
		}
		if computeCapital(b, capFlag) {
			w.flags |= WordCapital
		}
	}

	id := wl.head()
	for id != 0 {
		w1 := wl.at(id)
		w2id := w1.next
		if w2id == 0 {
			break
		}
		w2 := wl.at(w2id)
		if w1.flags&WordCurious != 0 && w2.flags&WordCapital != 0 {
			if wl.adjacent(id, w2id) {
				wl.mergeInto(id, w2id)
				if p := wl.at(w2id).prev; p != 0 {
					id = p
				} else {
					id = w2id
				}
				continue
			}
			w2.flags |= WordShifted
		}
		id = w2id
	}
}

func (wl *wordList) adjacent(id1, id2 wordID) bool {
	w1, w2 := wl.at(id1), wl.at(id2)
	return w1.lineIdx == w2.lineIdx && w2.start == w1.start+w1.length+1
}

func (wl *wordList) mergeInto(w1id, w2id wordID) {
	w1 := *wl.at(w1id)
	w2 := wl.at(w2id)
	end := w2.start + w2.length
	w2.start = w1.start
	w2.length = end - w1.start
	if w1.flags&WordShifted != 0 {
		w2.flags |= WordShifted
	}
	if w1.flags&WordCapital != 0 {
		w2.flags |= WordCapital
	} else {
		w2.flags &^= WordCapital
	}
	wl.remove(w1id)
}

// splitOverLong rebuilds wl so that no Word is longer than limit, splitting
// any over-long Word into limit-sized pieces (the first inheriting its
// shifted/capital flags, the rest carrying neither), per §4.5.3. If report
// is true, an over-long Word instead fails reformatting with ErrWordTooLong.
func splitOverLong(wl *wordList, limit int, report bool) (*wordList, error) {
	if limit < 1 {
		return nil, &Error{Kind: ErrLineTooShort}
	}
	neu := newWordList(wl.lines)
	for id := wl.head(); id != 0; id = wl.at(id).next {
		w := wl.at(id)
		if w.length <= limit {
			nid := neu.pushBack(w.lineIdx, w.start, w.length)
			neu.at(nid).flags = w.flags
			continue
		}
		if report {
			return nil, &Error{Kind: ErrWordTooLong, Excerpt: wl.bytes(id)}
		}
		off := 0
		first := true
		for off < w.length {
			n := limit
			if off+n > w.length {
				n = w.length - off
			}
			nid := neu.pushBack(w.lineIdx, w.start+off, n)
			if first {
				neu.at(nid).flags = w.flags & (WordShifted | WordCapital)
				first = false
			}
			off += n
		}
	}
	return neu, nil
}
