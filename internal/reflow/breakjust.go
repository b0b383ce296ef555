package reflow

// gapFor computes the inter-word gap width a candidate line [i,j) (j==n for
// the terminal line) would have under width L: extra space spread evenly
// over numgaps internal joins, or L itself as a sentinel for a single-word
// line (which has no internal gap to stretch).
func gapFor(linelen, numgaps, L int) (gap int, ok bool) {
	extra := L - linelen
	if extra < 0 {
		return 0, false
	}
	if numgaps <= 0 {
		return L, true
	}
	q := extra / numgaps
	r := extra % numgaps
	if r > 0 {
		q++
	}
	return q, true
}

// breakJustify breaks wl's words into lines minimizing, first, the largest
// inter-word gap and then, given that bound, the sum of squared
// extra-space-per-gap counts, per §4.5.5.
func breakJustify(wl *wordList, L int, last bool) error {
	if wl.empty() {
		return nil
	}
	ids := wl.orderedIDs()
	n := len(ids)

	// Pass 1: minimize the largest gap.
	for i := n - 1; i >= 0; i-- {
		wid := ids[i]
		w := wl.at(wid)

		haveBest := false
		bestScore := 0
		var bestW2 wordID

		addTotal := w.length
		for j := i + 1; j < n; j++ {
			w2id := ids[j]
			w2w := wl.at(w2id)

			// addTotal here is linelen(wid, ids[j]): the candidate line
			// excludes ids[j], matching nextline's contract.
			if addTotal > L {
				break
			}
			if w2w.score >= 0 {
				numgaps := j - i - 1
				if gap, ok := gapFor(addTotal, numgaps, L); ok {
					score := gap
					if w2w.score > score {
						score = w2w.score
					}
					if !haveBest || score <= bestScore {
						haveBest, bestScore, bestW2 = true, score, w2id
					}
				}
			}

			inc := 1 + w2w.length
			if w2w.flags&WordShifted != 0 {
				inc++
			}
			addTotal += inc
		}

		full := wl.linelen(wid, 0)
		if full <= L {
			numgaps := n - i - 1
			if last {
				if gap, ok := gapFor(full, numgaps, L); ok {
					if !haveBest || gap <= bestScore {
						haveBest, bestScore, bestW2 = true, gap, 0
					}
				}
			} else if !haveBest || 0 <= bestScore {
				haveBest, bestScore, bestW2 = true, 0, 0
			}
		}

		if haveBest {
			w.score, w.nextline = bestScore, bestW2
		} else {
			w.score = -1
		}
	}

	maxgap := wl.at(ids[0]).score
	if maxgap < 0 || maxgap >= L {
		return &Error{Kind: ErrCannotJustify}
	}

	// Pass 2: given maxgap, minimize the sum of squared extra-space counts.
	for i := n - 1; i >= 0; i-- {
		wid := ids[i]
		w := wl.at(wid)

		haveBest := false
		bestCost := 0
		var bestW2 wordID

		addTotal := w.length
		for j := i + 1; j < n; j++ {
			w2id := ids[j]
			w2w := wl.at(w2id)

			// addTotal here is linelen(wid, ids[j]): the candidate line
			// excludes ids[j], matching nextline's contract.
			if addTotal > L {
				break
			}
			if w2w.score >= 0 {
				numgaps := j - i - 1
				if gap, ok := gapFor(addTotal, numgaps, L); ok && gap <= maxgap {
					extra := L - addTotal
					var cost int
					if numgaps > 0 {
						q, r := extra/numgaps, extra%numgaps
						cost = q*(extra+r) + r
					}
					cost += w2w.score
					if !haveBest || cost <= bestCost {
						haveBest, bestCost, bestW2 = true, cost, w2id
					}
				}
			}

			inc := 1 + w2w.length
			if w2w.flags&WordShifted != 0 {
				inc++
			}
			addTotal += inc
		}

		full := wl.linelen(wid, 0)
		if full <= L {
			numgaps := n - i - 1
			if last {
				if gap, ok := gapFor(full, numgaps, L); ok && gap <= maxgap {
					extra := L - full
					var cost int
					if numgaps > 0 {
						q, r := extra/numgaps, extra%numgaps
						cost = q*(extra+r) + r
					}
					if !haveBest || cost <= bestCost {
						haveBest, bestCost, bestW2 = true, cost, 0
					}
				}
			} else {
				// Terminal non-last-line branch: unconditional zero cost.
				haveBest, bestCost, bestW2 = true, 0, 0
			}
		}

		if haveBest {
			w.score, w.nextline = bestCost, bestW2
		} else {
			w.score = -1
		}
	}

	if wl.at(ids[0]).score < 0 {
		return &Error{Kind: ErrImpossible}
	}
	return nil
}
