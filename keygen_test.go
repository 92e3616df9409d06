package bls

import (
	"bytes"
	"errors"
	"testing"
)

// TestKeyGen verifies deterministic seed derivation.
func TestKeyGen(t *testing.T) {
	seed := bytes.Repeat([]byte{0x2a}, 32)

	t.Run("Deterministic", func(t *testing.T) {
		k1, err := KeyGen(seed)
		if err != nil {
			t.Fatalf("Failed to derive key: %v", err)
		}
		k2, err := KeyGen(seed)
		if err != nil {
			t.Fatalf("Failed to derive key again: %v", err)
		}
		eq, err := k1.Equal(k2)
		if err != nil {
			t.Fatalf("Failed to compare keys: %v", err)
		}
		if !eq {
			t.Error("The same seed should always derive the same key")
		}
	})

	t.Run("SeedSensitivity", func(t *testing.T) {
		other := bytes.Repeat([]byte{0x2b}, 32)
		k1, err := KeyGen(seed)
		if err != nil {
			t.Fatalf("Failed to derive key: %v", err)
		}
		k2, err := KeyGen(other)
		if err != nil {
			t.Fatalf("Failed to derive key: %v", err)
		}
		eq, err := k1.Equal(k2)
		if err != nil {
			t.Fatalf("Failed to compare keys: %v", err)
		}
		if eq {
			t.Error("Different seeds should derive different keys")
		}
	})

	t.Run("ShortSeed", func(t *testing.T) {
		if _, err := KeyGen(make([]byte, 31)); !errors.Is(err, ErrSeedTooShort) {
			t.Errorf("A 31 byte seed should fail with ErrSeedTooShort, got %v", err)
		}
		if _, err := KeyGen(nil); !errors.Is(err, ErrSeedTooShort) {
			t.Errorf("A nil seed should fail with ErrSeedTooShort, got %v", err)
		}
	})

	t.Run("LongSeed", func(t *testing.T) {
		if _, err := KeyGen(make([]byte, 64)); err != nil {
			t.Errorf("A 64 byte seed should be accepted, got %v", err)
		}
	})

	t.Run("InRange", func(t *testing.T) {
		k, err := KeyGen(seed)
		if err != nil {
			t.Fatalf("Failed to derive key: %v", err)
		}
		out, err := k.Serialize()
		if err != nil {
			t.Fatalf("Failed to serialize key: %v", err)
		}
		if bytes.Compare(out, groupOrderBytes[:]) >= 0 {
			t.Error("Derived scalar should be below the group order")
		}
	})

	t.Run("NonZero", func(t *testing.T) {
		k, err := KeyGen(seed)
		if err != nil {
			t.Fatalf("Failed to derive key: %v", err)
		}
		zero, err := k.IsZero()
		if err != nil {
			t.Fatalf("Failed to check zero: %v", err)
		}
		if zero {
			t.Error("Seed derivation should never yield the zero scalar")
		}
	})

	t.Run("SeedNotConsumed", func(t *testing.T) {
		in := bytes.Repeat([]byte{0x2c}, 32)
		if _, err := KeyGen(in); err != nil {
			t.Fatalf("Failed to derive key: %v", err)
		}
		if !bytes.Equal(in, bytes.Repeat([]byte{0x2c}, 32)) {
			t.Error("Derivation should not modify the caller's seed")
		}
	})
}

// TestGenerateKey verifies random key generation.
func TestGenerateKey(t *testing.T) {
	k1, err := GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	k2, err := GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	eq, err := k1.Equal(k2)
	if err != nil {
		t.Fatalf("Failed to compare keys: %v", err)
	}
	if eq {
		t.Error("Two fresh keys should not be equal")
	}

	out, err := k1.Serialize()
	if err != nil {
		t.Fatalf("Failed to serialize key: %v", err)
	}
	if bytes.Compare(out, groupOrderBytes[:]) >= 0 {
		t.Error("Generated scalar should be below the group order")
	}
}
