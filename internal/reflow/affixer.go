package reflow

import "github.com/jcorbin/par/internal/charset"

// Affix computes the prefix and suffix byte counts to use when reformatting
// a body-line group, per §4.4: fp/fs from the group's first line, an
// augmented prefix (afp) extending through a leading quote run when there is
// a single line and quoting is enabled, and, when the group has more than
// hang+1 lines, a secondary prefix/suffix computed over lines[hang:] to
// favor a deeper common affix once enough lines are available to detect it.
func Affix(lines []Line, props []Prop, bodyChars charset.Set, hang int, quote bool, quoteSet charset.Set, userPrefix, userSuffix int) (prefix, suffix int) {
	n := len(lines)
	fp := int(props[0].P)
	fs := int(props[0].S)
	afp := fp
	if n == 1 && quote {
		b := lines[0].Bytes()
		for afp < len(b) && quoteSet.Contains(b[afp]) {
			afp++
		}
	}

	haveSecondary := n > hang+1
	var pre2, suf2 int
	if haveSecondary {
		sub := lines[hang:n]
		pre2 = comprelen(sub, bodyChars, 0)
		suf2 = comsuflen(sub, bodyChars, pre2, 0)
	}

	prefix = userPrefix
	if prefix < 0 {
		if haveSecondary {
			prefix = pre2
		} else {
			prefix = afp
		}
	}
	suffix = userSuffix
	if suffix < 0 {
		if haveSecondary {
			suffix = suf2
		} else {
			suffix = fs
		}
	}
	return prefix, suffix
}
