package ctnum

// Mask is a constant-time boolean. A set Mask has every bit set, a clear Mask
// has none, which lets a decision be applied with bitwise arithmetic instead
// of a branch. Any other value is invalid and produces undefined results.
//
// Only convert a Mask to a bool (with IsSet) when the result is about to
// leave the package anyway.
type Mask Word

const (
	MaskSet   Mask = Mask(MaxWord)
	MaskClear Mask = 0
)

// MaskFromBit expands b, which must be 0 or 1, into a Mask.
func MaskFromBit(b Word) Mask { return Mask(-b) }

// MaskExpand returns a set Mask if w is nonzero.
func MaskExpand(w Word) Mask { return MaskIsZero(w).Not() }

// MaskIsZero returns a set Mask if w == 0.
func MaskIsZero(w Word) Mask {
	// The top bit of ^w & (w-1) is only set when w is zero.
	return MaskFromBit((^w & (w - 1)) >> (_W - 1))
}

// MaskIsEqual returns a set Mask if x == y.
func MaskIsEqual(x, y Word) Mask { return MaskIsZero(x ^ y) }

// MaskIsLess returns a set Mask if x < y.
func MaskIsLess(x, y Word) Mask {
	_, borrow := subWW(x, y, 0)
	return MaskFromBit(borrow)
}

func (m Mask) Not() Mask          { return ^m }
func (m Mask) And(o Mask) Mask    { return m & o }
func (m Mask) Or(o Mask) Mask     { return m | o }
func (m Mask) Xor(o Mask) Mask    { return m ^ o }
func (m Mask) AndNot(o Mask) Mask { return m &^ o }

// Bit returns 1 if the mask is set, 0 otherwise.
func (m Mask) Bit() Word { return Word(m) & 1 }

// IsSet converts the mask to a bool. This is a branch point for the caller;
// don't use it on secret data.
func (m Mask) IsSet() bool { return m != 0 }

// Select returns x if the mask is set, y otherwise.
func (m Mask) Select(x, y Word) Word {
	return y ^ (Word(m) & (x ^ y))
}

// IfSet returns x if the mask is set, 0 otherwise.
func (m Mask) IfSet(x Word) Word { return Word(m) & x }

// IfNotSet returns x if the mask is clear, 0 otherwise.
func (m Mask) IfNotSet(x Word) Word { return ^Word(m) & x }

// SelectSign returns x if the mask is set, y otherwise.
func (m Mask) SelectSign(x, y Sign) Sign {
	return Sign(m.Select(Word(x), Word(y)))
}

// SelectWords sets z[i] to x[i] if the mask is set, y[i] otherwise. All
// three slices must have the same length.
func (m Mask) SelectWords(z, x, y []Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i] = m.Select(x[i], y[i])
	}
}
