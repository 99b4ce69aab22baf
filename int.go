package ctnum

// Sign is the sign of an Int. Zero is always Positive.
type Sign uint8

const (
	Positive Sign = 0
	Negative Sign = 1
)

// Int is a sign-magnitude arbitrary-precision integer.
//
// The number of words an Int stores (its announced length) is treated as
// public: operations may take longer for longer Ints. Nothing an operation
// does depends on the values of the words, with the exception of the few
// methods documented as converting a result for the caller (String, Cmp and
// friends).
//
// The zero value is a valid Int holding 0.
type Int struct {
	sign  Sign
	words []Word // little-endian; may carry high-order zero words
}

func NewInt(v int64) *Int {
	var x Int
	mag := uint64(v)
	if v < 0 {
		mag = -mag
		x.sign = Negative
	}
	x.words = wordsFromUint64(mag)
	return &x
}

// IntFromWords creates an Int from a little-endian word slice. The slice is
// copied; its length becomes the Int's announced length.
func IntFromWords(sign Sign, words []Word) *Int {
	x := &Int{sign: sign & 1, words: append([]Word(nil), words...)}
	x.norm()
	return x
}

func wordsFromUint64(v uint64) []Word {
	ws := make([]Word, wordsPerUint64)
	for i := range ws {
		ws[i] = Word(v >> (uint(i) * _W))
	}
	return ws
}

func (x *Int) clone() *Int {
	return &Int{sign: x.sign, words: append([]Word(nil), x.words...)}
}

// norm clears the sign of a zero magnitude.
func (x *Int) norm() {
	x.sign &= Sign(ctIsZero(x.words).Not().Bit())
}

// WordAt returns the word at index i, or 0 if i is outside the stored words.
func (x *Int) WordAt(i int) Word { return wordAt(x.words, i) }

// Words returns a copy of the stored magnitude, least significant word first.
func (x *Int) Words() []Word { return append([]Word(nil), x.words...) }

// Len returns the announced length of x in words.
func (x *Int) Len() int { return len(x.words) }

// SigWords returns the number of words up to and including the most
// significant nonzero word. Every stored word is visited.
func (x *Int) SigWords() int {
	var sig Word
	for i, w := range x.words {
		sig = MaskExpand(w).Select(Word(i+1), sig)
	}
	return int(sig)
}

// BitLen returns the length of the absolute value of x in bits.
func (x *Int) BitLen() int {
	sw := x.SigWords()
	if sw == 0 {
		return 0
	}
	return sw*_W - int(nlz(x.words[sw-1]))
}

// TopBitsFree returns the number of leading zero bits in the most
// significant nonzero word of x, or _W if x is zero.
func (x *Int) TopBitsFree() uint {
	return nlz(x.WordAt(x.SigWords() - 1))
}

// GrowTo extends the announced length of x to n words. It never shrinks x.
func (x *Int) GrowTo(n int) {
	if len(x.words) >= n {
		return
	}
	if cap(x.words) >= n {
		old := len(x.words)
		x.words = x.words[:n]
		for i := old; i < n; i++ {
			x.words[i] = 0
		}
		return
	}
	ws := make([]Word, n)
	copy(ws, x.words)
	x.words = ws
}

// mutableWords exposes the storage for in-package writers such as the
// division engine's quotient buffer.
func (x *Int) mutableWords() []Word { return x.words }

func (x *Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.sign == Negative {
		return -1
	}
	return 1
}

func (x *Int) SignBit() Sign { return x.sign }

// SetSign sets the sign of x. A zero x stays Positive.
func (x *Int) SetSign(s Sign) {
	x.sign = s & 1
	x.norm()
}

// CondFlipSign flips the sign of x if m is set.
func (x *Int) CondFlipSign(m Mask) {
	x.sign ^= Sign(m.Bit())
	x.norm()
}

func (x *Int) IsZero() bool     { return ctIsZero(x.words).IsSet() }
func (x *Int) IsNegative() bool { return x.sign == Negative }

func (x *Int) isZeroMask() Mask     { return ctIsZero(x.words) }
func (x *Int) isNegativeMask() Mask { return MaskFromBit(Word(x.sign)) }

// Abs returns a copy of x with a Positive sign.
func (x *Int) Abs() *Int {
	z := x.clone()
	z.sign = Positive
	return z
}

// Neg returns a copy of x with the sign flipped.
func (x *Int) Neg() *Int {
	z := x.clone()
	z.CondFlipSign(MaskSet)
	return z
}

// Lsh returns x << s. The magnitude is shifted; the sign is kept. The result
// is one word longer than needed to hold the shifted announced length.
func (x *Int) Lsh(s uint) *Int {
	ws, bs := int(s/_W), s%_W
	z := &Int{sign: x.sign, words: make([]Word, len(x.words)+ws+1)}
	n := len(x.words)
	z.words[ws+n] = shlVU(z.words[ws:ws+n], x.words, bs)
	return z
}

// Rsh returns x >> s. The magnitude is shifted; the sign is kept unless the
// result is zero, so unlike big.Int, negative values round toward zero.
func (x *Int) Rsh(s uint) *Int {
	ws, bs := int(s/_W), s%_W
	n := len(x.words) - ws
	if n <= 0 {
		return &Int{}
	}
	z := &Int{sign: x.sign, words: make([]Word, n)}
	shrVU(z.words, x.words[ws:], bs)
	z.norm()
	return z
}

// Add returns x + y.
func (x *Int) Add(y *Int) *Int { return addSigned(x, y, Positive) }

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int { return addSigned(x, y, Negative) }

// addSigned computes x + (-1)^flip * y on sign-magnitude operands. Both the
// sum and the two differences of the magnitudes are computed every time and
// the answer is selected with masks.
func addSigned(x, y *Int, flip Sign) *Int {
	xs, ys := x.sign, y.sign^flip

	n := len(x.words)
	if len(y.words) > n {
		n = len(y.words)
	}
	n++

	a, b := make([]Word, n), make([]Word, n)
	copy(a, x.words)
	copy(b, y.words)

	sum := make([]Word, n)
	aMinusB := make([]Word, n)
	bMinusA := make([]Word, n)
	addVV(sum, a, b)
	borrow := subVV(aMinusB, a, b)
	subVV(bMinusA, b, a)

	same := MaskIsEqual(Word(xs), Word(ys))
	aLess := MaskFromBit(borrow)

	z := &Int{words: make([]Word, n)}
	aLess.SelectWords(z.words, bMinusA, aMinusB)
	same.SelectWords(z.words, sum, z.words)
	z.sign = same.Or(aLess.Not()).SelectSign(xs, ys)
	z.norm()
	return z
}

// MulWord returns x * w.
func (x *Int) MulWord(w Word) *Int {
	z := &Int{sign: x.sign, words: make([]Word, len(x.words)+1)}
	n := len(x.words)
	z.words[n] = mulVW(z.words[:n], x.words, w)
	z.norm()
	return z
}

// CmpAbs compares |x| and |y| and returns -1, 0 or +1.
func (x *Int) CmpAbs(y *Int) int {
	lt := ctLessThan(x.words, y.words)
	gt := ctLessThan(y.words, x.words)
	return int(gt.Bit()) - int(lt.Bit())
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Int) Cmp(y *Int) int {
	c := x.CmpAbs(y)
	xn, yn := x.isNegativeMask(), y.isNegativeMask()

	// Differing signs: the negative one is smaller. Zero is never negative,
	// so x == y == 0 lands in the same-sign case.
	differ := xn.Xor(yn)
	flip := xn.And(differ.Not())
	cm := Word(c) // two's complement of -1, 0, +1
	cm = flip.Select(-cm, cm)
	cm = differ.Select(xn.Select(MaxWord, 1), cm)
	return int(int64(cm) << (64 - _W) >> (64 - _W))
}

func (x *Int) Equal(y *Int) bool { return x.Cmp(y) == 0 }

// reduceBelow subtracts bound from x if x >= bound and reports whether it
// did (1) or not (0). x and bound must have the same announced length and x
// must be less than 2*bound, which holds whenever the top word of bound has
// its high bit set and x has no more words than bound.
func (x *Int) reduceBelow(bound *Int) Word {
	ws := x.words
	diff := make([]Word, len(ws))
	borrow := subVV(diff, ws, bound.words)
	ge := MaskFromBit(borrow).Not()
	ge.SelectWords(ws, diff, ws)
	return ge.Bit()
}
