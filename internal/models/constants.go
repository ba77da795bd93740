package models

// ============================================================================
// ORDERING CONSTANTS
// ============================================================================

// PosStep is the gap the remote service leaves between consecutive cards.
// It is used to estimate a local pos for Top/Bottom placements until the
// service answers with the authoritative value.
const PosStep = 65536.0

// ============================================================================
// FIELD LIMITS
// ============================================================================

const (
	// MaxCardNameLength mirrors the service's card name limit
	MaxCardNameLength = 16384

	// MaxCardDescLength mirrors the service's card description limit
	MaxCardDescLength = 16384
)
