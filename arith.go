package ctnum

// This file contains the word and word-vector kernels used by Int and the
// division engine. None of them branch on, or index memory by, the value of
// a word; loop trip counts depend only on slice lengths.
//
// Many of the loops are of the form
//	for i := 0; i < len(z) && i < len(x); i++
// where i < len(z) is the real condition; the extra checks let the compiler
// drop the bounds checks in the body.

// madd2 returns the low word of a*b + *c and stores the high word in *c.
func madd2(a, b Word, c *Word) Word {
	hi, lo := mulWW(a, b)
	lo, cc := addWW(lo, *c, 0)
	*c = hi + cc
	return lo
}

// divWW returns the low _W bits of (hi<<_W | lo) / d using restoring
// division, one quotient bit per step.
//
// The result is exact when hi < d. When hi >= d the true quotient doesn't fit
// in a Word; divWW still returns a value without faulting, which callers
// must discard. Unlike bits.Div this never panics and has no data-dependent
// timing.
func divWW(hi, lo, d Word) (q Word) {
	r := hi
	for i := _W - 1; i >= 0; i-- {
		top := r >> (_W - 1)
		r = r<<1 | (lo>>uint(i))&1

		// (top, r) >= d if the shift overflowed, or if r - d doesn't borrow.
		diff, borrow := subWW(r, d, 0)
		take := MaskExpand(top).Or(MaskFromBit(borrow).Not())
		r = take.Select(diff, r)
		q |= take.Bit() << uint(i)
	}
	return q
}

// nlz returns the number of leading zero bits in x, or _W if x is zero.
// bits.LeadingZeros is avoided as its portable fallback uses a lookup table
// indexed by the value.
func nlz(x Word) uint {
	var n Word
	for s := uint(_W / 2); s > 0; s >>= 1 {
		m := MaskIsZero(x >> (_W - s))
		n += m.IfSet(Word(s))
		x = m.Select(x<<s, x)
	}
	n += MaskIsZero(x).Bit()
	return uint(n)
}

// The resulting carry c is either 0 or 1.
func addVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = addWW(x[i], y[i], c)
	}
	return c
}

// The resulting borrow c is either 0 or 1.
func subVV(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = subWW(x[i], y[i], c)
	}
	return c
}

// addVVMasked computes z = x + (y & m) and returns the carry.
func addVVMasked(z, x, y []Word, m Mask) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = addWW(x[i], m.IfSet(y[i]), c)
	}
	return c
}

// subVVMasked computes z = x - (y & m) and returns the borrow.
func subVVMasked(z, x, y []Word, m Mask) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = subWW(x[i], m.IfSet(y[i]), c)
	}
	return c
}

// addVW computes z = x + y and returns the carry.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		z[i], c = addWW(x[i], c, 0)
	}
	return c
}

// mulVW computes z = x * y and returns the high word of the product.
func mulVW(z, x []Word, y Word) (c Word) {
	for i := 0; i < len(z) && i < len(x); i++ {
		z[i] = madd2(x[i], y, &c)
	}
	return c
}

// shlVU sets z = x << s for 0 <= s < _W and returns the bits shifted out of
// the top word. Go defines shifts of _W or more as zero, so s == 0 needs no
// special case.
func shlVU(z, x []Word, s uint) (c Word) {
	if len(z) == 0 || len(x) == 0 {
		return 0
	}
	ŝ := _W - s
	n := len(z)
	if len(x) < n {
		n = len(x)
	}
	c = x[n-1] >> ŝ
	for i := n - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>ŝ
	}
	z[0] = x[0] << s
	return c
}

// shrVU sets z = x >> s for 0 <= s < _W and returns the bits shifted out of
// the bottom word, left-aligned.
func shrVU(z, x []Word, s uint) (c Word) {
	if len(z) == 0 || len(x) == 0 {
		return 0
	}
	ŝ := _W - s
	n := len(z)
	if len(x) < n {
		n = len(x)
	}
	c = x[0] << ŝ
	for i := 0; i < n-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<ŝ
	}
	z[n-1] = x[n-1] >> s
	return c
}

// ctLessThan returns a set Mask if x < y, treating both as little-endian
// magnitudes. The slices may differ in length; missing words read as zero.
func ctLessThan(x, y []Word) Mask {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	var borrow Word
	for i := 0; i < n; i++ {
		_, borrow = subWW(wordAt(x, i), wordAt(y, i), borrow)
	}
	return MaskFromBit(borrow)
}

// ctIsZero returns a set Mask if every word of x is zero.
func ctIsZero(x []Word) Mask {
	var acc Word
	for _, w := range x {
		acc |= w
	}
	return MaskIsZero(acc)
}

func wordAt(x []Word, i int) Word {
	if i < 0 || i >= len(x) {
		return 0
	}
	return x[i]
}
