package ctnum

import "math/big"

// refQuoRem is the slow reference for QuoRem: binary shift-and-subtract long
// division of the magnitudes, one bit at a time, followed by the truncated
// sign convention. It deliberately avoids big.Int.QuoRem so the two can be
// checked against each other.
func refQuoRem(x, y *big.Int) (q, r *big.Int) {
	ax := new(big.Int).Abs(x)
	ay := new(big.Int).Abs(y)

	q, r = new(big.Int), new(big.Int)
	for i := ax.BitLen() - 1; i >= 0; i-- {
		r.Lsh(r, 1)
		r.SetBit(r, 0, ax.Bit(i))
		if r.Cmp(ay) >= 0 {
			r.Sub(r, ay)
			q.SetBit(q, i, 1)
		}
	}

	if (x.Sign() < 0) != (y.Sign() < 0) {
		q.Neg(q)
	}
	if x.Sign() < 0 {
		r.Neg(r)
	}
	return q, r
}

// refDivMod is the Euclidean counterpart of refQuoRem.
func refDivMod(x, y *big.Int) (q, m *big.Int) {
	q, m = refQuoRem(x, y)
	if m.Sign() < 0 {
		m.Add(m, new(big.Int).Abs(y))
		if y.Sign() < 0 {
			q.Add(q, big.NewInt(1))
		} else {
			q.Sub(q, big.NewInt(1))
		}
	}
	return q, m
}
