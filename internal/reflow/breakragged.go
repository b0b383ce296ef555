package reflow

// simplebreaks computes, for every word (right to left), the largest
// achievable "shortest line" value under a max line width of limit, storing
// the winning continuation in word.nextline as a side effect. It returns the
// value for the first word, or -1 if limit is infeasible for some word.
//
// last controls whether the final line (w2 == 0, i.e. running to the end of
// the list) is scored normally (last=true) or exempted from the raggedness
// score entirely (last=false, the common case: a short final line is fine).
func (wl *wordList) simplebreaks(ids []wordID, limit int, last bool) int {
	n := len(ids)
	for i := n - 1; i >= 0; i-- {
		wid := ids[i]
		w := wl.at(wid)

		haveBest := false
		bestScore := -1
		var bestW2 wordID

		addTotal := w.length
		if addTotal <= limit {
			for j := i + 1; j < n; j++ {
				w2id := ids[j]
				w2w := wl.at(w2id)

				// addTotal here is linelen(wid, ids[j]): the candidate line
				// runs up to but excludes ids[j], matching nextline's
				// contract. Fold ids[j]'s own contribution in afterward, to
				// prime the next iteration's candidate.
				if addTotal > limit {
					break
				}
				if w2w.score != -1 {
					cand := addTotal
					if w2w.score < cand {
						cand = w2w.score
					}
					if !haveBest || cand >= bestScore {
						haveBest, bestScore, bestW2 = true, cand, w2id
					}
				}

				inc := 1 + w2w.length
				if w2w.flags&WordShifted != 0 {
					inc++
				}
				addTotal += inc
			}
		}

		full := wl.linelen(wid, 0)
		if full <= limit {
			var cand int
			if last {
				cand = full
			} else {
				cand = limit
			}
			if !haveBest || cand >= bestScore {
				haveBest, bestScore, bestW2 = true, cand, 0
			}
		}

		if haveBest {
			w.score, w.nextline = bestScore, bestW2
		} else {
			w.score = -1
		}
	}
	if n == 0 {
		return 0
	}
	return wl.at(ids[0]).score
}

// costMinimize is the second ragged-mode DP pass: given a chosen target
// width and the shortest-line floor achieved by simplebreaks at that width,
// it picks the break minimizing the sum of squared per-line shortfalls from
// target, breaking ties toward the latest feasible continuation.
func (wl *wordList) costMinimize(ids []wordID, target, shortest int, last bool) {
	n := len(ids)
	for i := n - 1; i >= 0; i-- {
		wid := ids[i]
		w := wl.at(wid)

		haveBest := false
		bestCost := 0
		var bestW2 wordID

		addTotal := w.length
		if addTotal <= target {
			for j := i + 1; j < n; j++ {
				w2id := ids[j]
				w2w := wl.at(w2id)

				// addTotal here is linelen(wid, ids[j]), the candidate line
				// excluding ids[j] itself; see simplebreaks above.
				if addTotal > target {
					break
				}
				if addTotal >= shortest && w2w.score >= 0 {
					extra := target - addTotal
					cost := extra*extra + w2w.score
					if !haveBest || cost <= bestCost {
						haveBest, bestCost, bestW2 = true, cost, w2id
					}
				}

				inc := 1 + w2w.length
				if w2w.flags&WordShifted != 0 {
					inc++
				}
				addTotal += inc
			}
		}

		full := wl.linelen(wid, 0)
		if full <= target {
			if last {
				if full >= shortest {
					extra := target - full
					cost := extra * extra
					if !haveBest || cost <= bestCost {
						haveBest, bestCost, bestW2 = true, cost, 0
					}
				}
			} else if !haveBest || 0 <= bestCost {
				haveBest, bestCost, bestW2 = true, 0, 0
			}
		}

		if haveBest {
			w.score, w.nextline = bestCost, bestW2
		} else {
			w.score = -1
		}
	}
}

// breakRagged breaks wl's words into lines minimizing raggedness against
// width L (optionally searching for a narrower best-fit target when fit is
// true), per §4.5.4.
func breakRagged(wl *wordList, L int, fit, last bool) error {
	if wl.empty() {
		return nil
	}
	ids := wl.orderedIDs()

	target := L
	if fit {
		bestDiff := -1
		bestTarget := L
		for lp := L; lp >= 1; lp-- {
			sb := wl.simplebreaks(ids, lp, last)
			if sb == -1 {
				break
			}
			diff := lp - sb
			if bestDiff == -1 || diff < bestDiff {
				bestDiff, bestTarget = diff, lp
			}
		}
		target = bestTarget
	}

	shortest := wl.simplebreaks(ids, target, last)
	if shortest == -1 {
		return &Error{Kind: ErrImpossible}
	}

	wl.costMinimize(ids, target, shortest, last)
	if wl.at(ids[0]).score < 0 {
		return &Error{Kind: ErrImpossible}
	}
	return nil
}
