package bls

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Compressed sizes of serialized group elements in bytes.
const (
	G1ElementSize = bls12381.SizeOfG1AffineCompressed
	G2ElementSize = bls12381.SizeOfG2AffineCompressed
)

// G1Element is a point in the G1 prime-order subgroup, the group of
// public keys. The zero value is the identity element.
type G1Element struct {
	p bls12381.G1Affine
}

// G2Element is a point in the G2 prime-order subgroup, the group of
// signatures. The zero value is the identity element.
type G2Element struct {
	p bls12381.G2Affine
}

// G1ElementFromBytes decodes a compressed G1 point. The bytes must
// decode to a point on the curve and inside the prime-order subgroup.
func G1ElementFromBytes(b []byte) (*G1Element, error) {
	if len(b) != G1ElementSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidElementSize, G1ElementSize, len(b))
	}
	var p bls12381.G1Affine
	if _, err := p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidElement, err)
	}
	return &G1Element{p: p}, nil
}

// G2ElementFromBytes decodes a compressed G2 point. The bytes must
// decode to a point on the curve and inside the prime-order subgroup.
func G2ElementFromBytes(b []byte) (*G2Element, error) {
	if len(b) != G2ElementSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidElementSize, G2ElementSize, len(b))
	}
	var p bls12381.G2Affine
	if _, err := p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidElement, err)
	}
	return &G2Element{p: p}, nil
}

// G1ElementFromMessage hashes msg to a G1 point under the domain
// separation tag dst.
func G1ElementFromMessage(msg, dst []byte) (*G1Element, error) {
	p, err := bls12381.HashToG1(msg, dst)
	if err != nil {
		return nil, fmt.Errorf("hash to G1: %w", err)
	}
	return &G1Element{p: p}, nil
}

// G2ElementFromMessage hashes msg to a G2 point under the domain
// separation tag dst.
func G2ElementFromMessage(msg, dst []byte) (*G2Element, error) {
	p, err := bls12381.HashToG2(msg, dst)
	if err != nil {
		return nil, fmt.Errorf("hash to G2: %w", err)
	}
	return &G2Element{p: p}, nil
}

// G1Generator returns the fixed G1 generator.
func G1Generator() *G1Element {
	return &G1Element{p: g1Gen}
}

// G2Generator returns the fixed G2 generator.
func G2Generator() *G2Element {
	return &G2Element{p: g2Gen}
}

// G1Identity returns the G1 identity element.
func G1Identity() *G1Element {
	var e G1Element
	e.p.X.SetZero()
	e.p.Y.SetZero()
	return &e
}

// G2Identity returns the G2 identity element.
func G2Identity() *G2Element {
	var e G2Element
	e.p.X.SetZero()
	e.p.Y.SetZero()
	return &e
}

// Bytes returns the compressed encoding, G1ElementSize bytes.
func (a *G1Element) Bytes() []byte {
	b := a.p.Bytes()
	return b[:]
}

// Bytes returns the compressed encoding, G2ElementSize bytes.
func (a *G2Element) Bytes() []byte {
	b := a.p.Bytes()
	return b[:]
}

// String returns the compressed encoding as lowercase hex.
func (a *G1Element) String() string {
	return hex.EncodeToString(a.Bytes())
}

// String returns the compressed encoding as lowercase hex.
func (a *G2Element) String() string {
	return hex.EncodeToString(a.Bytes())
}

// Equal reports whether both elements are the same point.
func (a *G1Element) Equal(b *G1Element) bool {
	if b == nil {
		return false
	}
	return a.p.Equal(&b.p)
}

// Equal reports whether both elements are the same point.
func (a *G2Element) Equal(b *G2Element) bool {
	if b == nil {
		return false
	}
	return a.p.Equal(&b.p)
}

// IsIdentity reports whether the element is the identity point.
func (a *G1Element) IsIdentity() bool {
	return a.p.IsInfinity()
}

// IsIdentity reports whether the element is the identity point.
func (a *G2Element) IsIdentity() bool {
	return a.p.IsInfinity()
}

// Add returns the group sum of a and b. Neither argument is modified.
func (a *G1Element) Add(b *G1Element) (*G1Element, error) {
	if b == nil {
		return nil, ErrNilElement
	}
	var sum bls12381.G1Affine
	sum.Add(&a.p, &b.p)
	return &G1Element{p: sum}, nil
}

// Add returns the group sum of a and b. Neither argument is modified.
func (a *G2Element) Add(b *G2Element) (*G2Element, error) {
	if b == nil {
		return nil, ErrNilElement
	}
	var sum bls12381.G2Affine
	sum.Add(&a.p, &b.p)
	return &G2Element{p: sum}, nil
}

// Mul returns the element multiplied by the key's scalar. It is the
// same operation as the key's MulG1 with the operands swapped.
func (a *G1Element) Mul(k *PrivateKey) (*G1Element, error) {
	return k.MulG1(a)
}

// Mul returns the element multiplied by the key's scalar. It is the
// same operation as the key's MulG2 with the operands swapped.
func (a *G2Element) Mul(k *PrivateKey) (*G2Element, error) {
	return k.MulG2(a)
}

// Fingerprint returns a short identifier for a public key: the first
// four bytes of the SHA-256 digest of the compressed encoding, as a
// big-endian integer.
func (a *G1Element) Fingerprint() uint32 {
	h := sha256.Sum256(a.Bytes())
	return binary.BigEndian.Uint32(h[:4])
}
