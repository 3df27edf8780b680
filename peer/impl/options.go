package impl

import "github.com/rs/zerolog"

// UnknownPeerPolicy tells a store what to do when an update names a peer that
// is not in the corresponding raw trust map.
type UnknownPeerPolicy int

const (
	// IgnoreUnknownPeer drops the delta but still renormalizes
	IgnoreUnknownPeer UnknownPeerPolicy = iota
	// InitUnknownPeer initializes the peer first, then applies the delta
	InitUnknownPeer
	// RejectUnknownPeer leaves the store untouched and returns an
	// UnknownPeerError
	RejectUnknownPeer
)

func (p UnknownPeerPolicy) String() string {
	switch p {
	case IgnoreUnknownPeer:
		return "ignore"
	case InitUnknownPeer:
		return "init"
	case RejectUnknownPeer:
		return "reject"
	default:
		return "unknown"
	}
}

// ZeroSumPolicy tells a store how to normalize a non-empty map whose scores
// sum to zero.
type ZeroSumPolicy int

const (
	// ZeroSumPropagate keeps the result of the float division (NaN or ±Inf)
	ZeroSumPropagate ZeroSumPolicy = iota
	// ZeroSumUniform gives every peer 1/N
	ZeroSumUniform
)

func (p ZeroSumPolicy) String() string {
	switch p {
	case ZeroSumPropagate:
		return "propagate"
	case ZeroSumUniform:
		return "uniform"
	default:
		return "unknown"
	}
}

type options struct {
	logger        *zerolog.Logger
	unknownPolicy UnknownPeerPolicy
	zeroSumPolicy ZeroSumPolicy
}

// Option is a functional option for NewPeerTrustStore
type Option func(*options)

// WithLogger sets the logger of the store. By default the global zerolog
// logger is used.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}

// WithUnknownPeerPolicy sets how updates on unknown peers are handled
func WithUnknownPeerPolicy(p UnknownPeerPolicy) Option {
	return func(o *options) {
		o.unknownPolicy = p
	}
}

// WithZeroSumPolicy sets how a zero total is normalized
func WithZeroSumPolicy(p ZeroSumPolicy) Option {
	return func(o *options) {
		o.zeroSumPolicy = p
	}
}
