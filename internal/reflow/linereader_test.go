package reflow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/par/internal/charset"
)

func TestLineReader_simpleParagraph(t *testing.T) {
	lr := NewLineReader(strings.NewReader("one two\nthree four\n\nnext para\n"), false, charset.Set{}, false)
	lines, _, stop, err := lr.ReadParagraph(charset.Set{})
	require.NoError(t, err)
	assert.Equal(t, StopBlank, stop)
	require.Len(t, lines, 2)
	assert.Equal(t, "one two", string(lines[0].Bytes()))
	assert.Equal(t, "three four", string(lines[1].Bytes()))
}

func TestLineReader_protectStops(t *testing.T) {
	lr := NewLineReader(strings.NewReader("hello\n#directive\nworld\n"), false, charset.Set{}, false)
	protect := charset.New('#')
	lines, _, stop, err := lr.ReadParagraph(protect)
	require.NoError(t, err)
	assert.Equal(t, StopProtect, stop)
	require.Len(t, lines, 1)
	assert.Equal(t, "hello", string(lines[0].Bytes()))

	raw, err := lr.ReadRawLine()
	require.NoError(t, err)
	assert.Equal(t, "#directive\n", string(raw))
}

func TestLineReader_normalizesWhitespaceAndNUL(t *testing.T) {
	lr := NewLineReader(strings.NewReader("a\tb\x00c\n"), false, charset.Set{}, false)
	lines, _, stop, err := lr.ReadParagraph(charset.Set{})
	require.NoError(t, err)
	assert.Equal(t, StopEOF, stop)
	require.Len(t, lines, 1)
	assert.Equal(t, "a bc", string(lines[0].Bytes()))
}

func TestLineReader_quoteVacancySynthesizesLine(t *testing.T) {
	quoteSet, _ := charset.Parse("> ")
	lr := NewLineReader(strings.NewReader("> > deep quote\n> shallow quote\n"), true, quoteSet, false)
	lines, props, stop, err := lr.ReadParagraph(charset.Set{})
	require.NoError(t, err)
	assert.Equal(t, StopEOF, stop)
	require.Len(t, lines, 3)
	assert.Equal(t, "> > deep quote", string(lines[0].Bytes()))
	assert.Equal(t, ">", string(lines[1].Bytes()), "synthesized vacant line should be the common quote-prefix")
	assert.Equal(t, "> shallow quote", string(lines[2].Bytes()))
	_ = props
}
