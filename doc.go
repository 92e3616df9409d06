// Package bls implements BLS12-381 private signing keys and the group
// element operations built on them: public key derivation, scalar
// multiplication in both source groups, key aggregation, and G2
// signing with caller-chosen domain separation tags.
//
// # Keys
//
// A [PrivateKey] wraps a scalar in [0, r), where r is the order of the
// prime-order subgroup. Keys come from seed derivation ([KeyGen],
// [GenerateKey]), from explicit bytes ([PrivateKeyFromBytes]), or from
// summing other keys ([Aggregate]). Fixed-width serialization is
// big-endian and exactly [PrivateKeySize] bytes:
//
//	sk, err := bls.KeyGen(seed)
//	if err != nil {
//		...
//	}
//	defer sk.Destroy()
//	pk, err := sk.G1Element()
//
// # Key Material
//
// Secret scalars live in dedicated storage that the library wipes
// exactly once: Destroy erases it, Move hands it to a new key without
// copying, and a finalizer covers keys that are dropped without
// either. Operations on a destroyed or moved-from key fail with
// [ErrKeyNotInitialized]. Temporary scalar material inside operations
// is wiped before they return.
//
// # Elements
//
// [G1Element] holds public keys (48 byte compressed encoding) and
// [G2Element] holds signatures (96 bytes). Decoding rejects points
// outside the prime-order subgroup. Multiplying an element by a key
// can be written from either side; both forms produce the same point.
//
// # Concurrency
//
// Read-only operations on a key are safe to run concurrently. Move and
// Destroy are not; callers must serialize them against all other use
// of the same key.
package bls
