package bls

import (
	"crypto/subtle"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ZeroBytes overwrites b with zeros. The copy goes through
// crypto/subtle so the compiler cannot elide the store.
func ZeroBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	zeros := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zeros)
}

// ZeroSlices wipes every given slice.
func ZeroSlices(slices ...[]byte) {
	for _, s := range slices {
		ZeroBytes(s)
	}
}

// zeroScalar clears the limbs of a field element used as scratch.
func zeroScalar(e *fr.Element) {
	for i := range e {
		e[i] = 0
	}
}

// zeroBigInt clears the word buffer of a big.Int used as scratch.
// Bits exposes the live backing slice, so writing through it wipes
// the value the integer held.
func zeroBigInt(x *big.Int) {
	words := x.Bits()
	for i := range words {
		words[i] = 0
	}
	x.SetInt64(0)
}
