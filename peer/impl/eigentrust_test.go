package impl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/peertrust/types"
)

func Test_Normalize_Empty(t *testing.T) {
	normalized, ok := normalize(map[string]float64{}, ZeroSumPropagate)

	require.True(t, ok)
	require.Empty(t, normalized)
}

func Test_Normalize_Integers(t *testing.T) {
	normalized, ok := normalize(map[string]uint8{"A": 3, "B": 1}, ZeroSumPropagate)

	require.True(t, ok)
	require.Equal(t, map[string]float64{"A": 0.75, "B": 0.25}, normalized)
}

// The total is folded in the score type, so it wraps like the type does
func Test_Normalize_Folds_In_Score_Type(t *testing.T) {
	normalized, ok := normalize(map[string]uint8{"A": 200, "B": 56}, ZeroSumPropagate)

	require.False(t, ok)
	require.True(t, math.IsInf(normalized["A"], 1))
	require.True(t, math.IsInf(normalized["B"], 1))
}

func Test_Normalize_Zero_Sum_Propagate(t *testing.T) {
	normalized, ok := normalize(map[string]int{"A": 0, "B": 2, "C": -2}, ZeroSumPropagate)

	require.False(t, ok)
	require.True(t, math.IsNaN(normalized["A"]))
	require.True(t, math.IsInf(normalized["B"], 1))
	require.True(t, math.IsInf(normalized["C"], -1))
}

func Test_Normalize_Zero_Sum_Uniform(t *testing.T) {
	normalized, ok := normalize(map[string]int{"A": 0, "B": 0, "C": 0, "D": 0}, ZeroSumUniform)

	require.False(t, ok)
	require.Len(t, normalized, 4)
	for _, v := range normalized {
		require.Equal(t, 0.25, v)
	}
}

func Test_Rank_Order(t *testing.T) {
	ranking := rank(map[string]float64{
		"A": 0.2,
		"B": math.NaN(),
		"C": 0.5,
		"D": 0.3,
	})

	require.Len(t, ranking, 4)
	require.Equal(t, types.PeerScore[string]{Peer: "C", Score: 0.5}, ranking[0])
	require.Equal(t, types.PeerScore[string]{Peer: "D", Score: 0.3}, ranking[1])
	require.Equal(t, types.PeerScore[string]{Peer: "A", Score: 0.2}, ranking[2])
	require.Equal(t, "B", ranking[3].Peer)
	require.True(t, math.IsNaN(ranking[3].Score))
}

func Test_Rank_Empty(t *testing.T) {
	require.Empty(t, rank(map[int]float64{}))
}

func Test_Policies_String(t *testing.T) {
	require.Equal(t, "ignore", IgnoreUnknownPeer.String())
	require.Equal(t, "init", InitUnknownPeer.String())
	require.Equal(t, "reject", RejectUnknownPeer.String())
	require.Equal(t, "propagate", ZeroSumPropagate.String())
	require.Equal(t, "uniform", ZeroSumUniform.String())
}
