package ctnum

import (
	"errors"

	"github.com/shabbyrobe/go-ctnum/internal/assert"
)

// ErrDivideByZero is returned by every division operation when the divisor
// is zero.
var ErrDivideByZero = errors.New("ctnum: division by zero")

// DivTrace records what the division engine did for one call. It holds
// secret-dependent values and exists for tests and debugging only.
type DivTrace struct {
	Shifts uint // normalization shift, in bits
	N, T   int  // index of the top word of the remainder and divisor
	Top    Word // quotient digit n-t, from the initial reduction
	Checks int  // divisionCheck evaluations
	Digits []DigitTrace
}

// DigitTrace describes how one quotient digit of the main loop was produced.
type DigitTrace struct {
	J           int
	Saturated   Word // 1 if the top remainder word equalled the top divisor word
	Estimate    Word // 2-by-1 estimate, after saturation
	Corrections Word // removed by the two correction checks (0 to 2)
	AddBack     Word // 1 if the remainder went negative and was restored
	Digit       Word
}

// QuoRem returns the quotient q and remainder r of x/y, or ErrDivideByZero
// if y is zero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// so r is zero or has the sign of x, and |r| < |y|. See DivMod for Euclidean
// division.
//
// The sequence of operations depends on the announced lengths of x and y and
// on the bit length of y, never on the values of their words. x and y are not
// modified; q and r never share storage with them.
func QuoRem(x, y *Int) (q, r *Int, err error) {
	return quoRem(x, y, nil)
}

// QuoRemTrace is QuoRem that also fills in tr.
func QuoRemTrace(x, y *Int, tr *DivTrace) (q, r *Int, err error) {
	return quoRem(x, y, tr)
}

func quoRem(x, y *Int, tr *DivTrace) (q, r *Int, err error) {
	q, r, err = divide(x, y, tr)
	if err != nil {
		return nil, nil, err
	}
	xn, yn := x.isNegativeMask(), y.isNegativeMask()
	q.CondFlipSign(xn.Xor(yn))
	r.CondFlipSign(xn)
	return q, r, nil
}

// DivMod returns the quotient q and modulus m of x/y, or ErrDivideByZero if
// y is zero.
//
// DivMod implements Euclidean division and modulus (like big.Int.DivMod):
//
//	q = x div y  such that
//	m = x - y*q  with 0 <= m < |y|
func DivMod(x, y *Int) (q, m *Int, err error) {
	q, m, err = divide(x, y, nil)
	if err != nil {
		return nil, nil, err
	}

	xn, yn := x.isNegativeMask(), y.isNegativeMask()

	// For a negative x, -|x| = -q|y| - m = -(q+1)|y| + (|y| - m).
	adj := xn.AndNot(m.isZeroMask())

	qw := q.mutableWords()
	assert.Zero(uint64(addVW(qw, qw, adj.Bit())), "quotient increment carry")

	yw := y.words[:len(m.words)]
	ym := make([]Word, len(yw))
	assert.Zero(uint64(subVV(ym, yw, m.words)), "modulus complement borrow")
	adj.SelectWords(m.words, ym, m.words)
	m.norm()

	q.CondFlipSign(xn.Xor(yn))
	return q, m, nil
}

// QuoRem is shorthand for QuoRem(x, y).
func (x *Int) QuoRem(y *Int) (q, r *Int, err error) { return QuoRem(x, y) }

// DivMod is shorthand for DivMod(x, y).
func (x *Int) DivMod(y *Int) (q, m *Int, err error) { return DivMod(x, y) }

// Quo returns x/y truncated toward zero.
func (x *Int) Quo(y *Int) (*Int, error) {
	q, _, err := QuoRem(x, y)
	return q, err
}

// Rem returns x%y with the sign of x.
func (x *Int) Rem(y *Int) (*Int, error) {
	_, r, err := QuoRem(x, y)
	return r, err
}

// Div returns the Euclidean quotient of x/y.
func (x *Int) Div(y *Int) (*Int, error) {
	q, _, err := DivMod(x, y)
	return q, err
}

// Mod returns the Euclidean modulus of x/y, which is never negative.
func (x *Int) Mod(y *Int) (*Int, error) {
	_, m, err := DivMod(x, y)
	return m, err
}

// divider holds the per-call counters of the engine.
type divider struct {
	checks int
}

// check applies divisionCheck and counts it.
func (d *divider) check(q, yt0, yt1, xj0, xj1, xj2 Word) Word {
	d.checks++
	return divisionCheck(q, yt0, yt1, xj0, xj1, xj2)
}

// divisionCheck computes (y3,y2,y1) = (yt0,yt1) * q and returns 1 if
// (y3,y2,y1) > (xj0,xj1,xj2), 0 otherwise.
func divisionCheck(q, yt0, yt1, xj0, xj1, xj2 Word) Word {
	var y3 Word
	y1 := madd2(q, yt1, &y3)
	y2 := madd2(q, yt0, &y3)

	x := [3]Word{xj2, xj1, xj0}
	y := [3]Word{y1, y2, y3}
	return ctLessThan(x[:], y[:]).Bit()
}

// divide solves |x| = q*|y| + r for nonnegative q and r using the schoolbook
// long division of HAC 14.20 (Knuth's Algorithm D), with every data-dependent
// decision replaced by a mask. The signs of x and y are ignored.
//
// q has n-t+1 words and r has as many words as |y| has significant words,
// where n and t index the top words of the normalized operands.
func divide(x, y *Int, tr *DivTrace) (q, r *Int, err error) {
	yWords := y.SigWords()
	if yWords == 0 {
		return nil, nil, ErrDivideByZero
	}
	t := yWords - 1

	// Normalize so the divisor's top word has its high bit set; HAC 14.23
	// bounds the error of the 3-by-2 estimate only for normalized divisors.
	shifts := nlz(y.words[t])
	yn := make([]Word, yWords)
	assert.Zero(uint64(shlVU(yn, y.words[:yWords], shifts)), "divisor normalization carry")

	r = x.Lsh(shifts)
	r.sign = Positive

	n := max(yWords, r.SigWords()) - 1
	assert.True(n >= t, "remainder top word %d below divisor top word %d", n, t)

	if len(r.words) > n+1 {
		assert.True(ctIsZero(r.words[n+1:]).IsSet(), "remainder words above %d not zero", n)
		r.words = r.words[:n+1]
	} else {
		r.GrowTo(n + 1)
	}

	// shiftedY is y << (_W * (n-t)) for now, and moves down one word each
	// time round the loop.
	shiftedY := &Int{words: make([]Word, n+1)}
	copy(shiftedY.words[n-t:], yn)

	q = &Int{words: make([]Word, n-t+1)}
	qw := q.mutableWords()

	// The top digit is the number of times shiftedY fits into r, which
	// normalization limits to 0 or 1.
	qw[n-t] = r.reduceBelow(shiftedY)
	assert.True(ctLessThan(r.words, shiftedY.words).IsSet(), "remainder not reduced below shifted divisor")

	if tr != nil {
		*tr = DivTrace{Shifts: shifts, N: n, T: t, Top: qw[n-t]}
	}

	var d divider
	yt0, yt1 := wordAt(yn, t), wordAt(yn, t-1)
	prod := make([]Word, n+1)

	for j := n; j != t; j-- {
		xj0, xj1, xj2 := r.WordAt(j), r.WordAt(j-1), r.WordAt(j-2)

		// divWW can't represent the quotient when xj0 == yt0; MaxWord is
		// used instead.
		sat := MaskIsEqual(xj0, yt0)
		qjt := sat.Select(MaxWord, divWW(xj0, xj1, yt0))
		est := qjt

		// Per HAC 14.23, at most two corrections are ever needed. Both are
		// always applied; the second is a no-op if the first was enough.
		qjt -= d.check(qjt, yt0, yt1, xj0, xj1, xj2)
		qjt -= d.check(qjt, yt0, yt1, xj0, xj1, xj2)
		corrections := est - qjt

		copy(shiftedY.words, shiftedY.words[1:])
		shiftedY.words[n] = 0
		// shiftedY == y << (_W * (j-t-1))

		carry := mulVW(prod, shiftedY.words, qjt)
		borrow := subVV(r.words, r.words, prod)

		// The estimate can still be one too large; if so the remainder went
		// negative and one shiftedY is added back.
		neg := MaskFromBit(borrow).Or(MaskExpand(carry))
		qjt -= neg.Bit()
		back := addVVMasked(r.words, r.words, shiftedY.words, neg)
		assert.Zero(uint64(back^neg.Bit()), "add-back carry mismatch")

		qw[j-t-1] = qjt

		if tr != nil {
			tr.Digits = append(tr.Digits, DigitTrace{
				J: j, Saturated: sat.Bit(), Estimate: est, Corrections: corrections,
				AddBack: neg.Bit(), Digit: qjt,
			})
		}
	}

	if tr != nil {
		tr.Checks = d.checks
	}
	assert.EqualInt(2*(n-t), d.checks, "correction checks")

	assert.Zero(uint64(shrVU(r.words, r.words, shifts)), "denormalization remainder bits")
	assert.True(ctIsZero(r.words[yWords:]).IsSet(), "remainder wider than divisor")
	r.words = r.words[:yWords]
	assert.True(ctLessThan(r.words, y.words[:yWords]).IsSet(), "remainder not below divisor")

	return q, r, nil
}
