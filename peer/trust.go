package peer

import "go.dedis.ch/peertrust/types"

// TrustLedger defines the local trust bookkeeping of an EigenTrust node: the
// raw scores it holds for its direct neighbors (local trust) and for the rest
// of the network (global trust), each with a normalized view that sums to one.
type TrustLedger[K comparable, V types.Score] interface {
	// InitLocalTrust adds the peer to the local trust with the configured
	// initial value. It does nothing if the peer is already known.
	InitLocalTrust(peer K)

	// InitGlobalTrust adds the peer to the global trust with the given value.
	// It does nothing if the peer is already known.
	InitGlobalTrust(peer K, delta V)

	// UpdateLocalTrust adds delta to the local trust of the peer and
	// recomputes the normalized local trust.
	UpdateLocalTrust(peer K, delta V) error

	// UpdateGlobalTrust adds delta to the global trust of the peer and
	// recomputes the normalized global trust.
	UpdateGlobalTrust(peer K, delta V) error

	GetLocalTrust(peer K) (V, bool)

	GetGlobalTrust(peer K) (V, bool)

	GetNormalizedLocalTrust(peer K) (float64, bool)

	GetNormalizedGlobalTrust(peer K) (float64, bool)

	// Modify* apply fn to the stored entry in place. The normalized view is
	// NOT recomputed; call the matching Normalize* afterwards if needed.
	ModifyLocalTrust(peer K, fn func(*V)) bool

	ModifyGlobalTrust(peer K, fn func(*V)) bool

	ModifyNormalizedLocalTrust(peer K, fn func(*float64)) bool

	ModifyNormalizedGlobalTrust(peer K, fn func(*float64)) bool

	NormalizeLocalTrust()

	NormalizeGlobalTrust()

	// RankLocalTrust returns the normalized local trust, highest first
	RankLocalTrust() []types.PeerScore[K]

	// RankGlobalTrust returns the normalized global trust, highest first
	RankGlobalTrust() []types.PeerScore[K]
}
