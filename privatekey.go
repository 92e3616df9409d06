package bls

import (
	"bytes"
	"crypto/subtle"
	"fmt"
	"math/big"
	"runtime"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// PrivateKeySize is the serialized width of a private key in bytes.
const PrivateKeySize = fr.Bytes

// Domain separation tags for the standard BLS12-381 G2 ciphersuites.
// SignG2 takes the tag as an argument so callers pick the scheme.
const (
	DSTBasic               = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_NUL_"
	DSTMessageAugmentation = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_AUG_"
	DSTProofOfPossession   = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_"
	DSTPopProve            = "BLS_POP_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_"
)

var (
	// groupOrder is the order r of the prime-order subgroup.
	groupOrder *big.Int

	// groupOrderBytes is r in big-endian form, for range checks on
	// candidate key bytes.
	groupOrderBytes [PrivateKeySize]byte

	g1Gen bls12381.G1Affine
	g2Gen bls12381.G2Affine
)

func init() {
	groupOrder = fr.Modulus()
	groupOrder.FillBytes(groupOrderBytes[:])
	_, _, g1Gen, g2Gen = bls12381.Generators()
}

// PrivateKey is a scalar in [0, r) used as a BLS signing key. The
// scalar lives in a dedicated buffer that is wiped on Destroy, on
// Move, and by a finalizer if the owner forgets. The zero value is
// uninitialized; construct keys with PrivateKeyFromBytes, KeyGen,
// GenerateKey or Aggregate.
//
// A PrivateKey is not safe for concurrent use with Move or Destroy.
type PrivateKey struct {
	keydata *[PrivateKeySize]byte
}

func newPrivateKey() *PrivateKey {
	k := &PrivateKey{keydata: new([PrivateKeySize]byte)}
	// Backup cleanup for keys that are never destroyed explicitly.
	runtime.SetFinalizer(k, (*PrivateKey).finalize)
	return k
}

func (k *PrivateKey) finalize() {
	if k.keydata != nil {
		ZeroBytes(k.keydata[:])
	}
}

// check reports whether the key still owns secret storage.
func (k *PrivateKey) check() error {
	if k == nil || k.keydata == nil {
		return ErrKeyNotInitialized
	}
	return nil
}

// loadScalar sets e to the key's scalar value. The stored bytes are
// always canonical, so no reduction happens here.
func (k *PrivateKey) loadScalar(e *fr.Element) {
	e.SetBytes(k.keydata[:])
}

// storeScalar writes the canonical big-endian form of e into dst and
// wipes the intermediate encoding.
func storeScalar(dst *[PrivateKeySize]byte, e *fr.Element) {
	b := e.Bytes()
	copy(dst[:], b[:])
	ZeroBytes(b[:])
}

// bigScalar copies the key's scalar into a big.Int for point
// multiplication. Callers must wipe it with zeroBigInt when done.
func (k *PrivateKey) bigScalar() *big.Int {
	var e fr.Element
	k.loadScalar(&e)
	defer zeroScalar(&e)
	return e.BigInt(new(big.Int))
}

// PrivateKeyFromBytes builds a private key from exactly PrivateKeySize
// big-endian bytes. With modOrder true the value is reduced modulo the
// group order; with modOrder false any value not below the order is
// rejected with ErrKeyOutOfRange.
func PrivateKeyFromBytes(b []byte, modOrder bool) (*PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeySize, len(b))
	}
	k := newPrivateKey()
	if modOrder {
		var e fr.Element
		e.SetBytes(b)
		storeScalar(k.keydata, &e)
		zeroScalar(&e)
		return k, nil
	}
	if bytes.Compare(b, groupOrderBytes[:]) >= 0 {
		return nil, ErrKeyOutOfRange
	}
	copy(k.keydata[:], b)
	return k, nil
}

// Clone returns an independent copy of the key with its own secret
// storage.
func (k *PrivateKey) Clone() (*PrivateKey, error) {
	if err := k.check(); err != nil {
		return nil, err
	}
	c := newPrivateKey()
	copy(c.keydata[:], k.keydata[:])
	return c, nil
}

// Move transfers ownership of the secret storage to a new key and
// leaves the receiver uninitialized. No copy of the scalar is made,
// so exactly one erasure covers it. Every later operation on the
// receiver fails with ErrKeyNotInitialized.
func (k *PrivateKey) Move() *PrivateKey {
	c := &PrivateKey{keydata: k.keydata}
	runtime.SetFinalizer(c, (*PrivateKey).finalize)
	k.keydata = nil
	runtime.SetFinalizer(k, nil)
	return c
}

// Destroy wipes the secret storage and marks the key uninitialized.
// Calling it again, or on a moved-from key, is a no-op.
func (k *PrivateKey) Destroy() {
	if k == nil || k.keydata == nil {
		return
	}
	ZeroBytes(k.keydata[:])
	k.keydata = nil
	runtime.SetFinalizer(k, nil)
}

// G1Element returns the public key, the key's scalar times the G1
// generator. A zero key yields the identity element.
func (k *PrivateKey) G1Element() (*G1Element, error) {
	if err := k.check(); err != nil {
		return nil, err
	}
	s := k.bigScalar()
	defer zeroBigInt(s)
	var p bls12381.G1Affine
	p.ScalarMultiplication(&g1Gen, s)
	return &G1Element{p: p}, nil
}

// G2Element returns the key's scalar times the G2 generator. A zero
// key yields the identity element.
func (k *PrivateKey) G2Element() (*G2Element, error) {
	if err := k.check(); err != nil {
		return nil, err
	}
	s := k.bigScalar()
	defer zeroBigInt(s)
	var p bls12381.G2Affine
	p.ScalarMultiplication(&g2Gen, s)
	return &G2Element{p: p}, nil
}

// MulG1 returns the key's scalar times a. The argument is not
// modified.
func (k *PrivateKey) MulG1(a *G1Element) (*G1Element, error) {
	if err := k.check(); err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNilElement
	}
	s := k.bigScalar()
	defer zeroBigInt(s)
	var p bls12381.G1Affine
	p.ScalarMultiplication(&a.p, s)
	return &G1Element{p: p}, nil
}

// MulG2 returns the key's scalar times a. The argument is not
// modified.
func (k *PrivateKey) MulG2(a *G2Element) (*G2Element, error) {
	if err := k.check(); err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNilElement
	}
	s := k.bigScalar()
	defer zeroBigInt(s)
	var p bls12381.G2Affine
	p.ScalarMultiplication(&a.p, s)
	return &G2Element{p: p}, nil
}

// SignG2 hashes msg to the G2 group under the domain separation tag
// dst and multiplies the result by the key's scalar. The same key,
// message and tag always produce the same signature.
func (k *PrivateKey) SignG2(msg, dst []byte) (*G2Element, error) {
	if err := k.check(); err != nil {
		return nil, err
	}
	pt, err := bls12381.HashToG2(msg, dst)
	if err != nil {
		return nil, fmt.Errorf("hash to G2: %w", err)
	}
	s := k.bigScalar()
	defer zeroBigInt(s)
	pt.ScalarMultiplication(&pt, s)
	return &G2Element{p: pt}, nil
}

// Aggregate sums the keys' scalars modulo the group order into a new
// key. The sum is taken left to right, so the result is deterministic
// for a given ordering. An empty input fails with ErrNoPrivateKeys.
func Aggregate(keys []*PrivateKey) (*PrivateKey, error) {
	if len(keys) == 0 {
		return nil, ErrNoPrivateKeys
	}
	var acc, term fr.Element
	defer zeroScalar(&acc)
	defer zeroScalar(&term)
	for i, key := range keys {
		if err := key.check(); err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
		key.loadScalar(&term)
		acc.Add(&acc, &term)
	}
	out := newPrivateKey()
	storeScalar(out.keydata, &acc)
	return out, nil
}

// IsZero reports whether the key's scalar is zero. The comparison
// runs in constant time.
func (k *PrivateKey) IsZero() (bool, error) {
	if err := k.check(); err != nil {
		return false, err
	}
	var zero [PrivateKeySize]byte
	return subtle.ConstantTimeCompare(k.keydata[:], zero[:]) == 1, nil
}

// Equal reports whether both keys hold the same scalar. Distinct keys
// with equal values compare equal. The comparison runs in constant
// time.
func (k *PrivateKey) Equal(other *PrivateKey) (bool, error) {
	if err := k.check(); err != nil {
		return false, err
	}
	if err := other.check(); err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(k.keydata[:], other.keydata[:]) == 1, nil
}

// Serialize returns the key's scalar as PrivateKeySize big-endian
// bytes in a fresh slice. The caller owns the slice and should wipe
// it with ZeroBytes when done.
func (k *PrivateKey) Serialize() ([]byte, error) {
	if err := k.check(); err != nil {
		return nil, err
	}
	out := make([]byte, PrivateKeySize)
	copy(out, k.keydata[:])
	return out, nil
}

// SerializeTo writes the key's scalar into dst, which must be exactly
// PrivateKeySize bytes.
func (k *PrivateKey) SerializeTo(dst []byte) error {
	if dst == nil {
		return ErrNilBuffer
	}
	if len(dst) != PrivateKeySize {
		return fmt.Errorf("%w: destination is %d bytes", ErrInvalidKeySize, len(dst))
	}
	if err := k.check(); err != nil {
		return err
	}
	copy(dst, k.keydata[:])
	return nil
}
