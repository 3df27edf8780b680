package types

import "golang.org/x/exp/constraints"

// Score is the set of numeric types a trust ledger can be kept in. Any type
// whose underlying kind is an integer or a float satisfies it, so a caller
// can declare its own unit (e.g. `type Reputation int64`).
type Score interface {
	constraints.Integer | constraints.Float
}

// TrustConfig carries the settings a trust ledger is created with.
type TrustConfig[V Score] struct {
	initTrust  V
	nNeighbors uint
}

// PeerScore is a single normalized trust value attached to its peer
type PeerScore[K comparable] struct {
	Peer  K
	Score float64
}
