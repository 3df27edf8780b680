package impl

import (
	"maps"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.dedis.ch/peertrust/peer"
	"go.dedis.ch/peertrust/types"
	"golang.org/x/xerrors"
)

var _ peer.TrustLedger[string, float64] = (*PeerTrustStore[string, float64])(nil)

// PeerTrustStore is the trust ledger of a single node.
//
// - implements peer.TrustLedger
//
// The normalized maps are derived from the raw ones and are rebuilt from
// scratch by every update. The store is not safe for concurrent use, see
// SafeTrustStore.
type PeerTrustStore[K comparable, V types.Score] struct {
	id   string
	conf types.TrustConfig[V]
	opts options
	log  zerolog.Logger

	localTrust            map[K]V
	globalTrust           map[K]V
	normalizedLocalTrust  map[K]float64
	normalizedGlobalTrust map[K]float64
}

// NewPeerTrustStore creates an empty store. The maps are sized with the
// neighbor count of the config.
func NewPeerTrustStore[K comparable, V types.Score](conf types.TrustConfig[V], opts ...Option) *PeerTrustStore[K, V] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	id := xid.New().String()

	logger := log.Logger
	if o.logger != nil {
		logger = *o.logger
	}

	n := int(conf.NNeighbors())

	s := &PeerTrustStore[K, V]{
		id:   id,
		conf: conf,
		opts: o,
		log:  logger.With().Str("ledger", id).Logger(),

		localTrust:            make(map[K]V, n),
		globalTrust:           make(map[K]V, n),
		normalizedLocalTrust:  make(map[K]float64, n),
		normalizedGlobalTrust: make(map[K]float64, n),
	}

	s.log.Debug().
		Str("config", conf.String()).
		Str("unknown_peer", o.unknownPolicy.String()).
		Str("zero_sum", o.zeroSumPolicy.String()).
		Msg("trust store created")

	return s
}

// ID returns the unique identifier of the store, as found in its logs
func (s *PeerTrustStore[K, V]) ID() string {
	return s.id
}

// Config returns the config the store was created with
func (s *PeerTrustStore[K, V]) Config() types.TrustConfig[V] {
	return s.conf
}

// InitLocalTrust implements peer.TrustLedger
func (s *PeerTrustStore[K, V]) InitLocalTrust(peer K) {
	if _, ok := s.localTrust[peer]; !ok {
		s.localTrust[peer] = s.conf.InitTrust()
	}
}

// InitGlobalTrust implements peer.TrustLedger
func (s *PeerTrustStore[K, V]) InitGlobalTrust(peer K, delta V) {
	if _, ok := s.globalTrust[peer]; !ok {
		s.globalTrust[peer] = delta
	}
}

// UpdateLocalTrust implements peer.TrustLedger
func (s *PeerTrustStore[K, V]) UpdateLocalTrust(peer K, delta V) error {
	err := s.add(LocalTrust, s.localTrust, peer, delta, s.conf.InitTrust())
	if err != nil {
		return xerrors.Errorf("failed to update local trust: %w", err)
	}

	s.NormalizeLocalTrust()
	return nil
}

// UpdateGlobalTrust implements peer.TrustLedger
func (s *PeerTrustStore[K, V]) UpdateGlobalTrust(peer K, delta V) error {
	var zero V

	err := s.add(GlobalTrust, s.globalTrust, peer, delta, zero)
	if err != nil {
		return xerrors.Errorf("failed to update global trust: %w", err)
	}

	s.NormalizeGlobalTrust()
	return nil
}

// add accumulates delta into raw[peer]. init is the value an unknown peer
// starts from under InitUnknownPeer.
func (s *PeerTrustStore[K, V]) add(kind TrustKind, raw map[K]V, peer K, delta V, init V) error {
	score, ok := raw[peer]
	if !ok {
		switch s.opts.unknownPolicy {
		case InitUnknownPeer:
			score = init
		case RejectUnknownPeer:
			return UnknownPeerError{Kind: kind, Peer: peer}
		default:
			s.log.Debug().
				Str("kind", string(kind)).
				Interface("peer", peer).
				Interface("delta", delta).
				Msg("dropping trust delta for unknown peer")
			return nil
		}
	}

	score += delta
	raw[peer] = score

	return nil
}

// GetLocalTrust implements peer.TrustLedger
func (s *PeerTrustStore[K, V]) GetLocalTrust(peer K) (V, bool) {
	v, ok := s.localTrust[peer]
	return v, ok
}

// GetGlobalTrust implements peer.TrustLedger
func (s *PeerTrustStore[K, V]) GetGlobalTrust(peer K) (V, bool) {
	v, ok := s.globalTrust[peer]
	return v, ok
}

// GetNormalizedLocalTrust implements peer.TrustLedger
func (s *PeerTrustStore[K, V]) GetNormalizedLocalTrust(peer K) (float64, bool) {
	v, ok := s.normalizedLocalTrust[peer]
	return v, ok
}

// GetNormalizedGlobalTrust implements peer.TrustLedger
func (s *PeerTrustStore[K, V]) GetNormalizedGlobalTrust(peer K) (float64, bool) {
	v, ok := s.normalizedGlobalTrust[peer]
	return v, ok
}

// ModifyLocalTrust implements peer.TrustLedger
func (s *PeerTrustStore[K, V]) ModifyLocalTrust(peer K, fn func(*V)) bool {
	return modify(s.localTrust, peer, fn)
}

// ModifyGlobalTrust implements peer.TrustLedger
func (s *PeerTrustStore[K, V]) ModifyGlobalTrust(peer K, fn func(*V)) bool {
	return modify(s.globalTrust, peer, fn)
}

// ModifyNormalizedLocalTrust implements peer.TrustLedger
func (s *PeerTrustStore[K, V]) ModifyNormalizedLocalTrust(peer K, fn func(*float64)) bool {
	return modify(s.normalizedLocalTrust, peer, fn)
}

// ModifyNormalizedGlobalTrust implements peer.TrustLedger
func (s *PeerTrustStore[K, V]) ModifyNormalizedGlobalTrust(peer K, fn func(*float64)) bool {
	return modify(s.normalizedGlobalTrust, peer, fn)
}

func modify[K comparable, T any](m map[K]T, peer K, fn func(*T)) bool {
	v, ok := m[peer]
	if !ok {
		return false
	}

	fn(&v)
	m[peer] = v

	return true
}

// NormalizeLocalTrust implements peer.TrustLedger
func (s *PeerTrustStore[K, V]) NormalizeLocalTrust() {
	s.normalizedLocalTrust = s.normalize(LocalTrust, s.localTrust)
}

// NormalizeGlobalTrust implements peer.TrustLedger
func (s *PeerTrustStore[K, V]) NormalizeGlobalTrust() {
	s.normalizedGlobalTrust = s.normalize(GlobalTrust, s.globalTrust)
}

func (s *PeerTrustStore[K, V]) normalize(kind TrustKind, raw map[K]V) map[K]float64 {
	normalized, ok := normalize(raw, s.opts.zeroSumPolicy)
	if !ok {
		s.log.Warn().
			Str("kind", string(kind)).
			Int("peers", len(raw)).
			Str("policy", s.opts.zeroSumPolicy.String()).
			Msg("trust sums to zero")
	}

	return normalized
}

// RankLocalTrust implements peer.TrustLedger
func (s *PeerTrustStore[K, V]) RankLocalTrust() []types.PeerScore[K] {
	return rank(s.normalizedLocalTrust)
}

// RankGlobalTrust implements peer.TrustLedger
func (s *PeerTrustStore[K, V]) RankGlobalTrust() []types.PeerScore[K] {
	return rank(s.normalizedGlobalTrust)
}

// LocalTrust returns a copy of the raw local trust
func (s *PeerTrustStore[K, V]) LocalTrust() map[K]V {
	return maps.Clone(s.localTrust)
}

// GlobalTrust returns a copy of the raw global trust
func (s *PeerTrustStore[K, V]) GlobalTrust() map[K]V {
	return maps.Clone(s.globalTrust)
}

// NormalizedLocalTrust returns a copy of the normalized local trust
func (s *PeerTrustStore[K, V]) NormalizedLocalTrust() map[K]float64 {
	return maps.Clone(s.normalizedLocalTrust)
}

// NormalizedGlobalTrust returns a copy of the normalized global trust
func (s *PeerTrustStore[K, V]) NormalizedGlobalTrust() map[K]float64 {
	return maps.Clone(s.normalizedGlobalTrust)
}
