package impl

import (
	"fmt"
)

// TrustKind names which of the two trust maps an operation targeted
type TrustKind string

const (
	LocalTrust  TrustKind = "local"
	GlobalTrust TrustKind = "global"
)

// UnknownPeerError occurs when a store configured with RejectUnknownPeer is
// asked to update a peer that was never initialized.
type UnknownPeerError struct {
	Kind TrustKind
	Peer any
}

func (err UnknownPeerError) Error() string {
	return fmt.Sprintf("unknown %s trust peer: %v", err.Kind, err.Peer)
}
