package bls

import (
	"errors"
)

// Sentinel errors returned by key and element operations. Callers are
// expected to test for them with errors.Is; wrapped forms carry extra
// detail such as the offending length.
var (
	// ErrInvalidKeySize is returned when private key bytes are not
	// exactly PrivateKeySize long.
	ErrInvalidKeySize = errors.New("private key must be 32 bytes")

	// ErrKeyOutOfRange is returned by PrivateKeyFromBytes in strict
	// mode when the input encodes a value not below the group order.
	ErrKeyOutOfRange = errors.New("private key bytes must be less than the group order")

	// ErrKeyNotInitialized is returned when a key whose secret storage
	// has been moved away or destroyed is used.
	ErrKeyNotInitialized = errors.New("private key storage not initialized")

	// ErrNoPrivateKeys is returned by Aggregate for an empty input.
	ErrNoPrivateKeys = errors.New("number of private keys must be at least 1")

	// ErrNilBuffer is returned when a caller-supplied destination
	// buffer is nil.
	ErrNilBuffer = errors.New("destination buffer is nil")

	// ErrNilElement is returned when a group element argument is nil.
	ErrNilElement = errors.New("group element is nil")

	// ErrSeedTooShort is returned by KeyGen for seed material shorter
	// than the minimum the derivation allows.
	ErrSeedTooShort = errors.New("seed must be at least 32 bytes")

	// ErrInvalidElementSize is returned when element bytes are not the
	// compressed size for the group.
	ErrInvalidElementSize = errors.New("invalid group element length")

	// ErrInvalidElement is returned when element bytes do not decode
	// to a valid point in the prime-order subgroup.
	ErrInvalidElement = errors.New("invalid group element")
)
