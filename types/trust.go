package types

import "fmt"

// -----------------------------------------------------------------------------
// TrustConfig

// NewTrustConfig creates a config. Values are taken as-is: a negative initial
// trust or a zero neighbor count are both accepted.
func NewTrustConfig[V Score](initTrust V, nNeighbors uint) TrustConfig[V] {
	return TrustConfig[V]{
		initTrust:  initTrust,
		nNeighbors: nNeighbors,
	}
}

// InitTrust returns the score given to a newly initialized local peer.
func (c TrustConfig[V]) InitTrust() V {
	return c.initTrust
}

// NNeighbors returns the expected number of neighbors. It is only used to
// size the ledger's maps, never as a limit.
func (c TrustConfig[V]) NNeighbors() uint {
	return c.nNeighbors
}

// String implements fmt.Stringer.
func (c TrustConfig[V]) String() string {
	return fmt.Sprintf("trust config {init: %v, neighbors: %d}", c.initTrust, c.nNeighbors)
}

// -----------------------------------------------------------------------------
// PeerScore

// String implements fmt.Stringer.
func (p PeerScore[K]) String() string {
	return fmt.Sprintf("%v: %g", p.Peer, p.Score)
}
