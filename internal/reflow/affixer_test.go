package reflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/par/internal/charset"
)

func TestAffix_singleLineQuoteAugment(t *testing.T) {
	quoteSet, _ := charset.Parse("> ")
	lines := linesOf("> hello there")
	props := Delimit(lines, charset.Set{}, 0, true)
	prefix, suffix := Affix(lines, props, charset.Set{}, 1, true, quoteSet, -1, -1)
	assert.Equal(t, 2, prefix)
	assert.Equal(t, 0, suffix)
}

func TestAffix_secondaryPrefixWhenEnoughLines(t *testing.T) {
	lines := linesOf(
		"Subject: hi",
		">> one two",
		">> three four",
		">> five six",
	)
	props := Delimit(lines, charset.Set{}, 0, true)
	quoteSet, _ := charset.Parse("> ")
	prefix, _ := Affix(lines, props, charset.Set{}, 1, true, quoteSet, -1, -1)
	assert.Equal(t, 3, prefix, "should find the deeper '>> ' prefix once past the hanging header line")
}

func TestAffix_userSuppliedOverrides(t *testing.T) {
	lines := linesOf("hello there", "general kenobi")
	props := Delimit(lines, charset.Set{}, 0, true)
	prefix, suffix := Affix(lines, props, charset.Set{}, 1, false, charset.Set{}, 4, 2)
	assert.Equal(t, 4, prefix)
	assert.Equal(t, 2, suffix)
}
