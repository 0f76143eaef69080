package beam

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Search runs CTC prefix beam search over P ([T][C] class probabilities,
// rows summing to 1) with beam width B and the given blank class index. It
// returns up to B candidates ordered by strictly non-increasing score; the
// first is the decoded label sequence.
func Search(P [][]float64, b, blank int) ([]Candidate, error) {
	if b <= 0 {
		return nil, ErrInvalidWidth
	}

	beams := map[string]state{"": {pBlank: 0, pNonBlank: negInf}}
	prefixes := map[string][]int{"": {}}

	for t := 0; t < len(P); t++ {
		row := P[t]
		next := make(map[string]state, len(beams)*len(row))
		nextPrefixes := make(map[string][]int, len(beams)*len(row))

		merge := func(key string, prefix []int, blankDelta, nonBlankDelta float64) {
			e, ok := next[key]
			if !ok {
				e = state{pBlank: negInf, pNonBlank: negInf}
			}
			e.pBlank = logSumExp2(e.pBlank, blankDelta)
			e.pNonBlank = logSumExp2(e.pNonBlank, nonBlankDelta)
			next[key] = e
			nextPrefixes[key] = prefix
		}

		for key, st := range beams {
			prefix := prefixes[key]
			total := st.total()

			for c := 0; c < len(row); c++ {
				logp := math.Log(row[c])
				if math.IsInf(logp, -1) {
					continue
				}

				if c == blank {
					merge(key, prefix, total+logp, negInf)
					continue
				}

				lastChar := -1
				if len(prefix) > 0 {
					lastChar = prefix[len(prefix)-1]
				}

				if c == lastChar {
					// Repeating the trailing symbol without an intervening
					// blank extends the same prefix (CTC collapsing rule).
					merge(key, prefix, negInf, st.pNonBlank+logp)

					// Repeating it after a blank starts a new instance.
					extended := appendInt(prefix, c)
					merge(keyOf(extended), extended, negInf, st.pBlank+logp)
				} else {
					extended := appendInt(prefix, c)
					merge(keyOf(extended), extended, negInf, total+logp)
				}
			}
		}

		beams, prefixes = prune(next, nextPrefixes, b)
	}

	candidates := make([]Candidate, 0, len(beams))
	for key, st := range beams {
		candidates = append(candidates, Candidate{Prefix: prefixes[key], Score: st.total()})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return keyOf(candidates[i].Prefix) < keyOf(candidates[j].Prefix)
	})
	if len(candidates) > b {
		candidates = candidates[:b]
	}
	return candidates, nil
}

func prune(beams map[string]state, prefixes map[string][]int, b int) (map[string]state, map[string][]int) {
	type scored struct {
		key   string
		score float64
	}
	scoredBeams := make([]scored, 0, len(beams))
	for key, st := range beams {
		scoredBeams = append(scoredBeams, scored{key, st.total()})
	}
	sort.Slice(scoredBeams, func(i, j int) bool {
		if scoredBeams[i].score != scoredBeams[j].score {
			return scoredBeams[i].score > scoredBeams[j].score
		}
		return scoredBeams[i].key < scoredBeams[j].key
	})
	if len(scoredBeams) > b {
		scoredBeams = scoredBeams[:b]
	}

	keptBeams := make(map[string]state, len(scoredBeams))
	keptPrefixes := make(map[string][]int, len(scoredBeams))
	for _, sb := range scoredBeams {
		keptBeams[sb.key] = beams[sb.key]
		keptPrefixes[sb.key] = prefixes[sb.key]
	}
	return keptBeams, keptPrefixes
}

func appendInt(prefix []int, c int) []int {
	out := make([]int, len(prefix)+1)
	copy(out, prefix)
	out[len(prefix)] = c
	return out
}

func keyOf(prefix []int) string {
	var sb strings.Builder
	for i, v := range prefix {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

var negInf = math.Inf(-1)

func logSumExp2(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	if a > b {
		return a + math.Log1p(math.Exp(b-a))
	}
	return b + math.Log1p(math.Exp(a-b))
}
