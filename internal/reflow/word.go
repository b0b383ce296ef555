package reflow

// WordFlags records per-Word state used by the guess/merge pass and the
// line-break optimizers.
type WordFlags uint8

// Word flags.
const (
	WordShifted WordFlags = 1 << iota // joined to its predecessor by two spaces, not one
	WordCurious
	WordCapital
)

// wordID indexes into a wordList's backing storage; 0 is the sentinel head.
type wordID int32

type word struct {
	lineIdx       int
	start, length int
	flags         WordFlags

	prev, next wordID

	// scratch fields used by the line-break optimizers
	score    int
	nextline wordID
}

// wordList is a doubly-linked list of Word views into a set of Lines, stored
// on a Buffer with index-based links (index 0 is an unused sentinel) rather
// than pointers, per the reformatter's vector-of-indices data model.
type wordList struct {
	lines []Line
	words Buffer[word]
	tail  wordID
}

func newWordList(lines []Line) *wordList {
	wl := &wordList{lines: lines}
	wl.words.Append(word{})
	return wl
}

func (wl *wordList) pushBack(lineIdx, start, length int) wordID {
	id := wordID(wl.words.Append(word{lineIdx: lineIdx, start: start, length: length, prev: wl.tail}))
	wl.words.At(int(wl.tail)).next = id
	wl.tail = id
	return id
}

func (wl *wordList) head() wordID { return wl.words.At(0).next }

func (wl *wordList) at(id wordID) *word { return wl.words.At(int(id)) }

func (wl *wordList) bytes(id wordID) []byte {
	w := wl.at(id)
	return wl.lines[w.lineIdx].Bytes()[w.start : w.start+w.length]
}

func (wl *wordList) empty() bool { return wl.head() == 0 }

// orderedIDs returns every real word's id in list order.
func (wl *wordList) orderedIDs() []wordID {
	ids := make([]wordID, 0, wl.words.Len()-1)
	for id := wl.head(); id != 0; id = wl.at(id).next {
		ids = append(ids, id)
	}
	return ids
}

func (wl *wordList) remove(id wordID) {
	w := *wl.at(id)
	wl.at(w.prev).next = w.next
	if w.next != 0 {
		wl.at(w.next).prev = w.prev
	} else {
		wl.tail = w.prev
	}
}

// linelen returns the length of a candidate line spanning from w (inclusive)
// up to but excluding w2 (0 meaning to the end of the list), counting one
// joining space between consecutive words (two when the later word is
// shifted).
func (wl *wordList) linelen(w, w2 wordID) int {
	cur := wl.at(w)
	total := cur.length
	id := cur.next
	for id != w2 {
		wi := wl.at(id)
		total += 1 + wi.length
		if wi.flags&WordShifted != 0 {
			total++
		}
		id = wi.next
	}
	return total
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
