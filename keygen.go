package bls

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"
)

// keyGenSalt is the initial HKDF salt for seed key derivation. Each
// rejection round replaces the salt with its SHA-256 digest.
const keyGenSalt = "BLS-SIG-KEYGEN-SALT-"

// minSeedSize is the least seed length KeyGen accepts.
const minSeedSize = 32

// keyGenExpandSize is the HKDF output width per round. Reducing this
// many uniform bytes modulo the group order keeps the bias negligible.
const keyGenExpandSize = 48

// KeyGen derives a private key from seed material using HKDF over
// SHA-256. The derivation is deterministic, never yields the zero
// scalar, and rejects seeds shorter than 32 bytes with
// ErrSeedTooShort. The caller keeps ownership of ikm and should wipe
// it when done.
func KeyGen(ikm []byte) (*PrivateKey, error) {
	if len(ikm) < minSeedSize {
		return nil, fmt.Errorf("%w: got %d", ErrSeedTooShort, len(ikm))
	}

	// Extract input is ikm with a zero byte appended; expand info is
	// the output width as two big-endian bytes.
	secret := make([]byte, len(ikm)+1)
	copy(secret, ikm)
	defer ZeroBytes(secret)
	info := []byte{0, keyGenExpandSize}

	salt := []byte(keyGenSalt)
	okm := make([]byte, keyGenExpandSize)
	defer ZeroBytes(okm)
	v := new(big.Int)
	defer zeroBigInt(v)
	for {
		sum := sha256.Sum256(salt)
		salt = sum[:]
		hkdfReader := hkdf.New(sha256.New, secret, salt, info)
		if _, err := io.ReadFull(hkdfReader, okm); err != nil {
			return nil, fmt.Errorf("failed to derive bytes from HKDF: %w", err)
		}
		v.SetBytes(okm)
		v.Mod(v, groupOrder)
		if v.Sign() != 0 {
			break
		}
	}

	k := newPrivateKey()
	v.FillBytes(k.keydata[:])
	return k, nil
}

// GenerateKey derives a private key from fresh system randomness.
func GenerateKey() (*PrivateKey, error) {
	ikm := make([]byte, minSeedSize)
	if _, err := rand.Read(ikm); err != nil {
		return nil, fmt.Errorf("failed to generate secure randomness: %w", err)
	}
	defer ZeroBytes(ikm)
	return KeyGen(ikm)
}
