//go:build ctnum32
// +build ctnum32

package ctnum

import "math/bits"

// Word is a single digit of an Int's magnitude.
//
// The ctnum32 build tag selects 32-bit words on any platform, which is mostly
// useful for exercising the carry paths with shorter operands.
type Word uint32

const _W = 32

func mulWW(x, y Word) (hi, lo Word) {
	h, l := bits.Mul32(uint32(x), uint32(y))
	return Word(h), Word(l)
}

func addWW(x, y, carry Word) (sum, carryOut Word) {
	s, c := bits.Add32(uint32(x), uint32(y), uint32(carry))
	return Word(s), Word(c)
}

func subWW(x, y, borrow Word) (diff, borrowOut Word) {
	d, b := bits.Sub32(uint32(x), uint32(y), uint32(borrow))
	return Word(d), Word(b)
}
