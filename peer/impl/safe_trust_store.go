package impl

import (
	"sync"

	"go.dedis.ch/peertrust/peer"
	"go.dedis.ch/peertrust/types"
)

var _ peer.TrustLedger[string, int] = (*SafeTrustStore[string, int])(nil)

// SafeTrustStore is a thread-safe PeerTrustStore
//
// - implements peer.TrustLedger
type SafeTrustStore[K comparable, V types.Score] struct {
	mutex sync.Mutex
	store *PeerTrustStore[K, V]
}

// NewSafeTrustStore creates a store guarded by a mutex
func NewSafeTrustStore[K comparable, V types.Score](conf types.TrustConfig[V], opts ...Option) *SafeTrustStore[K, V] {
	return &SafeTrustStore[K, V]{
		store: NewPeerTrustStore[K, V](conf, opts...),
	}
}

// Do runs fn with exclusive access to the underlying store. fn must not keep
// the store once it returns.
func (ss *SafeTrustStore[K, V]) Do(fn func(s *PeerTrustStore[K, V])) {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	fn(ss.store)
}

// InitLocalTrust implements peer.TrustLedger
func (ss *SafeTrustStore[K, V]) InitLocalTrust(peer K) {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	ss.store.InitLocalTrust(peer)
}

// InitGlobalTrust implements peer.TrustLedger
func (ss *SafeTrustStore[K, V]) InitGlobalTrust(peer K, delta V) {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	ss.store.InitGlobalTrust(peer, delta)
}

// UpdateLocalTrust implements peer.TrustLedger
func (ss *SafeTrustStore[K, V]) UpdateLocalTrust(peer K, delta V) error {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.UpdateLocalTrust(peer, delta)
}

// UpdateGlobalTrust implements peer.TrustLedger
func (ss *SafeTrustStore[K, V]) UpdateGlobalTrust(peer K, delta V) error {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.UpdateGlobalTrust(peer, delta)
}

// GetLocalTrust implements peer.TrustLedger
func (ss *SafeTrustStore[K, V]) GetLocalTrust(peer K) (V, bool) {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.GetLocalTrust(peer)
}

// GetGlobalTrust implements peer.TrustLedger
func (ss *SafeTrustStore[K, V]) GetGlobalTrust(peer K) (V, bool) {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.GetGlobalTrust(peer)
}

// GetNormalizedLocalTrust implements peer.TrustLedger
func (ss *SafeTrustStore[K, V]) GetNormalizedLocalTrust(peer K) (float64, bool) {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.GetNormalizedLocalTrust(peer)
}

// GetNormalizedGlobalTrust implements peer.TrustLedger
func (ss *SafeTrustStore[K, V]) GetNormalizedGlobalTrust(peer K) (float64, bool) {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.GetNormalizedGlobalTrust(peer)
}

// ModifyLocalTrust implements peer.TrustLedger. fn runs with the lock held.
func (ss *SafeTrustStore[K, V]) ModifyLocalTrust(peer K, fn func(*V)) bool {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.ModifyLocalTrust(peer, fn)
}

// ModifyGlobalTrust implements peer.TrustLedger. fn runs with the lock held.
func (ss *SafeTrustStore[K, V]) ModifyGlobalTrust(peer K, fn func(*V)) bool {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.ModifyGlobalTrust(peer, fn)
}

// ModifyNormalizedLocalTrust implements peer.TrustLedger
func (ss *SafeTrustStore[K, V]) ModifyNormalizedLocalTrust(peer K, fn func(*float64)) bool {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.ModifyNormalizedLocalTrust(peer, fn)
}

// ModifyNormalizedGlobalTrust implements peer.TrustLedger
func (ss *SafeTrustStore[K, V]) ModifyNormalizedGlobalTrust(peer K, fn func(*float64)) bool {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.ModifyNormalizedGlobalTrust(peer, fn)
}

// NormalizeLocalTrust implements peer.TrustLedger
func (ss *SafeTrustStore[K, V]) NormalizeLocalTrust() {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	ss.store.NormalizeLocalTrust()
}

// NormalizeGlobalTrust implements peer.TrustLedger
func (ss *SafeTrustStore[K, V]) NormalizeGlobalTrust() {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	ss.store.NormalizeGlobalTrust()
}

// RankLocalTrust implements peer.TrustLedger
func (ss *SafeTrustStore[K, V]) RankLocalTrust() []types.PeerScore[K] {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.RankLocalTrust()
}

// RankGlobalTrust implements peer.TrustLedger
func (ss *SafeTrustStore[K, V]) RankGlobalTrust() []types.PeerScore[K] {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.RankGlobalTrust()
}
