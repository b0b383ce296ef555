package reflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/par/internal/charset"
)

func linesOf(ss ...string) []Line {
	out := make([]Line, len(ss))
	for i, s := range ss {
		out[i] = NewLine([]byte(s))
	}
	return out
}

func TestDelimit_simplePrefix(t *testing.T) {
	lines := linesOf(
		"> hello world",
		"> how are you",
		"> doing today",
	)
	props := Delimit(lines, charset.Set{}, 0, true)
	require.Len(t, props, 3)
	for _, p := range props {
		assert.Equal(t, int16(2), p.P)
		assert.Equal(t, int16(0), p.S)
		assert.False(t, p.Bodiless())
	}
	assert.True(t, props[0].First())
}

func TestDelimit_bodilessRuler(t *testing.T) {
	lines := linesOf(
		"title text here",
		"----------------",
		"more body text",
	)
	props := Delimit(lines, charset.Set{}, 0, true)
	require.Len(t, props, 3)
	assert.False(t, props[0].Bodiless())
	assert.True(t, props[1].Bodiless())
	assert.Equal(t, byte('-'), props[1].RC)
	assert.False(t, props[2].Bodiless())
}

func TestDelimit_shortRunRepeatGuard(t *testing.T) {
	lines := linesOf(
		"aaa text one here",
		"-",
		"aaa text two here",
	)
	props := Delimit(lines, charset.Set{}, 3, true)
	assert.False(t, props[1].Bodiless(), "single dash shorter than repeat threshold should not be bodiless")
}

func TestMarkSuperfluous_interiorRunKeepsOne(t *testing.T) {
	lines := linesOf(
		"body one",
		"",
		"",
		"body two",
	)
	props := []Prop{
		{},
		{Flags: FlagBodiless, RC: ' '},
		{Flags: FlagBodiless, RC: ' '},
		{},
	}
	MarkSuperfluous(lines, props)
	assert.True(t, props[1].Superf() != props[2].Superf(), "exactly one of the run should be kept")
}

func TestMarkSuperfluous_boundaryRunAllDropped(t *testing.T) {
	lines := linesOf(
		"",
		"",
		"body",
	)
	props := []Prop{
		{Flags: FlagBodiless, RC: ' '},
		{Flags: FlagBodiless, RC: ' '},
		{},
	}
	MarkSuperfluous(lines, props)
	assert.True(t, props[0].Superf())
	assert.True(t, props[1].Superf())
}
