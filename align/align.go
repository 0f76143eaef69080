package align

// Align computes the Needleman-Wunsch global alignment of p against t and
// writes two equal-length, gap-padded sequences into rp and rt (both must
// have length >= 2*max(len(p), len(t)), the worst case of an all-gap
// alignment). sentinel fills both the alignment gaps and any trailing
// buffer positions past the real aligned length, so callers can stop
// reading at the first index where both rp[i] and rt[i] equal sentinel.
//
// It returns the edit distance of the aligned pair: the number of
// insertions, deletions, and substitutions on the optimal path. Traceback
// ties are broken diagonal > up > left, preferring a match/substitution
// over an indel.
func Align(p, t []int, sentinel int, rp, rt []int) (distance int, err error) {
	n, m := len(p), len(t)
	need := 2 * max(n, m)
	if len(rp) < need || len(rt) < need {
		return 0, ErrInsufficientBuffer
	}

	// score[i][j] = optimal alignment score of p[0:i] against t[0:j].
	score := make([][]int, n+1)
	for i := range score {
		score[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		score[i][0] = score[i-1][0] + scoreIndel
	}
	for j := 1; j <= m; j++ {
		score[0][j] = score[0][j-1] + scoreIndel
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			diagScore := scoreMismatch
			if p[i-1] == t[j-1] {
				diagScore = scoreMatch
			}
			diag := score[i-1][j-1] + diagScore
			up := score[i-1][j] + scoreIndel
			left := score[i][j-1] + scoreIndel
			score[i][j] = max3(diag, up, left)
		}
	}

	// Traceback from (n,m) to (0,0), building the aligned pair in reverse.
	revP := make([]int, 0, n+m)
	revT := make([]int, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && score[i][j] == score[i-1][j-1]+diagScoreAt(p, t, i, j):
			if p[i-1] != t[j-1] {
				distance++
			}
			revP = append(revP, p[i-1])
			revT = append(revT, t[j-1])
			i--
			j--
		case i > 0 && score[i][j] == score[i-1][j]+scoreIndel:
			distance++
			revP = append(revP, p[i-1])
			revT = append(revT, sentinel)
			i--
		default: // left
			distance++
			revP = append(revP, sentinel)
			revT = append(revT, t[j-1])
			j--
		}
	}

	l := len(revP)
	for k := 0; k < l; k++ {
		rp[k] = revP[l-1-k]
		rt[k] = revT[l-1-k]
	}
	for k := l; k < len(rp); k++ {
		rp[k] = sentinel
	}
	for k := l; k < len(rt); k++ {
		rt[k] = sentinel
	}

	return distance, nil
}

func diagScoreAt(p, t []int, i, j int) int {
	if p[i-1] == t[j-1] {
		return scoreMatch
	}
	return scoreMismatch
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
