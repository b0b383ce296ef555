package reflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordText(wl *wordList, id wordID) string { return string(wl.bytes(id)) }

func TestTokenize_basic(t *testing.T) {
	lines := linesOf("the quick brown fox")
	wl, err := Tokenize(lines, 0, 0)
	require.NoError(t, err)
	var got []string
	for id := wl.head(); id != 0; id = wl.at(id).next {
		got = append(got, wordText(wl, id))
	}
	assert.Equal(t, []string{"the", "quick", "brown", "fox"}, got)
}

func TestTokenize_lineTooShort(t *testing.T) {
	lines := linesOf("hi")
	_, err := Tokenize(lines, 3, 3)
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrLineTooShort, rerr.Kind)
}

func TestGuessPass_mergesCuriousCapitalAdjacent(t *testing.T) {
	// "Mr. Smith" should merge into a single Word, since "Mr." is curious
	// (alphanumeric 'r' precedes terminal '.') and "Smith" is capital and
	// adjacent by exactly one space.
	lines := linesOf("hello Mr. Smith goodbye")
	wl, err := Tokenize(lines, 0, 0)
	require.NoError(t, err)
	wl.guessPass(defaultTerminal, false)

	var got []string
	for id := wl.head(); id != 0; id = wl.at(id).next {
		got = append(got, wordText(wl, id))
	}
	assert.Equal(t, []string{"hello", "Mr. Smith", "goodbye"}, got)
}

func TestGuessPass_shiftsNonAdjacent(t *testing.T) {
	lines := linesOf("end.", "Next starts a new line")
	wl, err := Tokenize(lines, 0, 0)
	require.NoError(t, err)
	wl.guessPass(defaultTerminal, false)

	head := wl.head()
	second := wl.at(head).next
	assert.Equal(t, "Next", wordText(wl, second))
	assert.NotZero(t, wl.at(second).flags&WordShifted)
}

func TestSplitOverLong(t *testing.T) {
	lines := linesOf("supercalifragilisticexpialidocious")
	wl, err := Tokenize(lines, 0, 0)
	require.NoError(t, err)
	neu, err := splitOverLong(wl, 10, false)
	require.NoError(t, err)

	var got []string
	for id := neu.head(); id != 0; id = neu.at(id).next {
		got = append(got, wordText(neu, id))
	}
	for _, piece := range got {
		assert.LessOrEqual(t, len(piece), 10)
	}
	assert.Equal(t, "supercalifragilisticexpialidocious", joinAll(got))
}

func TestSplitOverLong_reportsError(t *testing.T) {
	lines := linesOf("supercalifragilisticexpialidocious")
	wl, err := Tokenize(lines, 0, 0)
	require.NoError(t, err)
	_, err = splitOverLong(wl, 10, true)
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrWordTooLong, rerr.Kind)
}

func joinAll(ss []string) string {
	out := ""
	for _, s := range ss {
		out += s
	}
	return out
}
