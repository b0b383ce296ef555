package charset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/par/internal/charset"
)

func TestSet_basics(t *testing.T) {
	var s charset.Set
	assert.True(t, s.Empty())
	s.Add('a')
	s.Add('z')
	assert.False(t, s.Empty())
	assert.True(t, s.Contains('a'))
	assert.True(t, s.Contains('z'))
	assert.False(t, s.Contains('b'))

	s.Remove('a')
	assert.False(t, s.Contains('a'))

	var other charset.Set
	other.Add('b')
	union := s.Union(other)
	assert.True(t, union.Contains('z'))
	assert.True(t, union.Contains('b'))

	diff := union.Difference(other)
	assert.True(t, diff.Contains('z'))
	assert.False(t, diff.Contains('b'))

	var a, b charset.Set
	a.Add('1')
	b.Add('2')
	a.Swap(&b)
	assert.True(t, a.Contains('2'))
	assert.True(t, b.Contains('1'))
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		name string
		lit  string
		in   []byte
		out  []byte
	}{
		{"literal run", "-=*", []byte("-=*"), []byte("abc")},
		{"range", "a-f", []byte("abcdef"), []byte("gxyz")},
		{"class digit", "_D", []byte("0123456789"), []byte("abc")},
		{"escape newline", `\n`, []byte("\n"), []byte("x")},
		{"escape hex", `\x41`, []byte("A"), []byte("a")},
		{"default quote set", "> ", []byte("> "), []byte("x")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := charset.Parse(tc.lit)
			require.NoError(t, err)
			for _, c := range tc.in {
				assert.True(t, s.Contains(c), "expected %q to contain %q", tc.lit, c)
			}
			for _, c := range tc.out {
				assert.False(t, s.Contains(c), "expected %q to not contain %q", tc.lit, c)
			}
		})
	}
}

func TestParse_errors(t *testing.T) {
	_, err := charset.Parse(`\q`)
	assert.Error(t, err)
}
