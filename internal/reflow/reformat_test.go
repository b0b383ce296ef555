package reflow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReformat_raggedFillsWithinWidth(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog and then ran away quickly"
	lines := linesOf(text)
	props := []Prop{{}}
	cfg := DefaultConfig()
	cfg.Width = 20
	cfg.Prefix = 0
	cfg.Suffix = 0
	cfg.Last = false

	out, err := Reformat(lines, props, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	var rebuilt []string
	for _, l := range out {
		trimmed := strings.TrimRight(string(l), " ")
		assert.LessOrEqual(t, len(string(l)), cfg.Width)
		rebuilt = append(rebuilt, strings.Fields(trimmed)...)
	}
	assert.Equal(t, strings.Fields(text), rebuilt)
}

func TestReformat_justifiedPadsToWidth(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog and then ran away quickly today"
	lines := linesOf(text)
	props := []Prop{{}}
	cfg := DefaultConfig()
	cfg.Width = 20
	cfg.Prefix = 0
	cfg.Suffix = 0
	cfg.Justify = true
	cfg.Last = false

	out, err := Reformat(lines, props, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	for _, l := range out {
		assert.Equal(t, cfg.Width, len(l), "a justified line always pads to width")
	}

	var rebuilt []string
	for _, l := range out {
		rebuilt = append(rebuilt, strings.Fields(string(l))...)
	}
	assert.Equal(t, strings.Fields(text), rebuilt)
}

func TestReformat_scenario1SimpleReflow(t *testing.T) {
	lines := linesOf("The quick brown fox jumps", "over the lazy dog.")
	props := []Prop{{}, {}}
	cfg := DefaultConfig()
	cfg.Width = 15
	cfg.Prefix = 0
	cfg.Suffix = 0

	out, err := Reformat(lines, props, cfg)
	require.NoError(t, err)

	var got []string
	for _, l := range out {
		got = append(got, string(l))
	}
	assert.Equal(t, []string{"The quick brown", "fox jumps over", "the lazy dog."}, got)
}

func TestReformat_scenario2JustificationLeavesLoneLineDistributed(t *testing.T) {
	lines := linesOf("one two three four")
	props := []Prop{{}}
	cfg := DefaultConfig()
	cfg.Width = 20
	cfg.Prefix = 0
	cfg.Suffix = 0
	cfg.Justify = true
	cfg.Last = false

	out, err := Reformat(lines, props, cfg)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "one  two three  four", string(out[0]))
}

func TestReformat_scenario3GuessMergesThenSplitsOverLong(t *testing.T) {
	lines := linesOf("Hello. World foo.")
	props := []Prop{{}}
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Prefix = 0
	cfg.Suffix = 0
	cfg.Guess = true

	out, err := Reformat(lines, props, cfg)
	require.NoError(t, err)

	var got []string
	for _, l := range out {
		got = append(got, string(l))
	}
	assert.Equal(t, []string{"Hello. Wor", "ld foo."}, got)
}

func TestReformat_wordTooLongReportsError(t *testing.T) {
	lines := linesOf("supercalifragilisticexpialidocious")
	props := []Prop{{}}
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Prefix = 0
	cfg.Suffix = 0
	cfg.Report = true

	_, err := Reformat(lines, props, cfg)
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrWordTooLong, rerr.Kind)
}

func TestReformat_splitsWordTooLongWhenNotReporting(t *testing.T) {
	lines := linesOf("supercalifragilisticexpialidocious")
	props := []Prop{{}}
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Prefix = 0
	cfg.Suffix = 0
	cfg.Report = false

	out, err := Reformat(lines, props, cfg)
	require.NoError(t, err)
	for _, l := range out {
		assert.LessOrEqual(t, len(l), cfg.Width)
	}
}
