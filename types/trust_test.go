package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type reputation int64

func Test_TrustConfig_Accessors(t *testing.T) {
	conf := NewTrustConfig(1.5, 4)

	require.Equal(t, 1.5, conf.InitTrust())
	require.Equal(t, uint(4), conf.NNeighbors())
}

// No validation: negative trust and zero neighbors are kept as given
func Test_TrustConfig_No_Validation(t *testing.T) {
	conf := NewTrustConfig[reputation](-3, 0)

	require.Equal(t, reputation(-3), conf.InitTrust())
	require.Equal(t, uint(0), conf.NNeighbors())
	require.Equal(t, "trust config {init: -3, neighbors: 0}", conf.String())
}

func Test_PeerScore_String(t *testing.T) {
	p := PeerScore[string]{Peer: "A", Score: 0.5}
	require.Equal(t, "A: 0.5", p.String())
}
