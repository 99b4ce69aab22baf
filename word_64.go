//go:build !ctnum32
// +build !ctnum32

package ctnum

import "math/bits"

// Word is a single digit of an Int's magnitude.
type Word uint64

const _W = 64

func mulWW(x, y Word) (hi, lo Word) {
	h, l := bits.Mul64(uint64(x), uint64(y))
	return Word(h), Word(l)
}

func addWW(x, y, carry Word) (sum, carryOut Word) {
	s, c := bits.Add64(uint64(x), uint64(y), uint64(carry))
	return Word(s), Word(c)
}

func subWW(x, y, borrow Word) (diff, borrowOut Word) {
	d, b := bits.Sub64(uint64(x), uint64(y), uint64(borrow))
	return Word(d), Word(b)
}
