package impl

import (
	"math"
	"slices"

	"go.dedis.ch/peertrust/types"
)

// normalize divides every score by the sum of all scores. The sum is folded
// in the score type, starting from its zero value, then converted to float64.
// The second return value is false when the map is non-empty and its total is
// zero.
func normalize[K comparable, V types.Score](raw map[K]V, policy ZeroSumPolicy) (map[K]float64, bool) {
	normalized := make(map[K]float64, len(raw))

	var total V
	for _, v := range raw {
		total += v
	}

	sum := float64(total)
	if sum == 0 && len(raw) > 0 && policy == ZeroSumUniform {
		uniform := 1 / float64(len(raw))
		for k := range raw {
			normalized[k] = uniform
		}
		return normalized, false
	}

	for k, v := range raw {
		normalized[k] = float64(v) / sum
	}

	return normalized, sum != 0 || len(raw) == 0
}

// rank returns the entries of a normalized map sorted by decreasing score.
// NaN scores are placed last.
func rank[K comparable](normalized map[K]float64) []types.PeerScore[K] {
	ranking := make([]types.PeerScore[K], 0, len(normalized))
	for k, v := range normalized {
		ranking = append(ranking, types.PeerScore[K]{Peer: k, Score: v})
	}

	slices.SortStableFunc(ranking, func(a, b types.PeerScore[K]) int {
		aNaN, bNaN := math.IsNaN(a.Score), math.IsNaN(b.Score)
		switch {
		case aNaN && bNaN:
			return 0
		case aNaN:
			return 1
		case bNaN:
			return -1
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return ranking
}
