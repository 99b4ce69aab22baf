package ctnum

import (
	"fmt"
	"math/big"

	"fortio.org/safecast"
)

// IntFromBytes interprets buf as an unsigned big-endian integer. The announced
// length is derived from len(buf) alone; leading zero bytes are kept as zero
// words so that equal-length inputs always produce equal-length Ints.
func IntFromBytes(buf []byte) *Int {
	return new(Int).SetBytes(buf)
}

// SetBytes sets x to the unsigned big-endian integer in buf and returns x.
func (x *Int) SetBytes(buf []byte) *Int {
	n := (len(buf) + _S - 1) / _S
	x.sign = Positive
	x.words = make([]Word, n)
	for i := 0; i < len(buf); i++ {
		// byte i from the end lands in word i/_S at bit offset 8*(i%_S)
		b := buf[len(buf)-1-i]
		x.words[i/_S] |= Word(b) << (8 * uint(i%_S))
	}
	return x
}

// Bytes returns the absolute value of x as a big-endian byte slice. The
// result is exactly Len()*_S bytes long, including leading zeros.
func (x *Int) Bytes() []byte {
	buf := make([]byte, len(x.words)*_S)
	for i := range buf {
		w := x.words[i/_S]
		buf[len(buf)-1-i] = byte(w >> (8 * uint(i%_S)))
	}
	return buf
}

// IntFromBigInt creates an Int from a big.Int. The announced length is the
// minimum needed to hold v.
func IntFromBigInt(v *big.Int) *Int {
	x := new(Int).SetBytes(v.Bytes())
	if v.Sign() < 0 {
		x.sign = Negative
	}
	return x
}

// IntFromString creates an Int from a string in the given base, using the
// same syntax as big.Int.SetString. Base 0 accepts 0x, 0o and 0b prefixes.
func IntFromString(s string, base int) (*Int, error) {
	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("ctnum: int string %q invalid", s)
	}
	return IntFromBigInt(b), nil
}

// AsBigInt converts x to a big.Int. big.Int is not constant-time; use this
// for display and testing, not on secrets you still care about.
func (x *Int) AsBigInt() *big.Int {
	b := new(big.Int).SetBytes(x.Bytes())
	if x.sign == Negative {
		b.Neg(b)
	}
	return b
}

// IntoBigInt sets b to the value of x.
func (x *Int) IntoBigInt(b *big.Int) {
	b.SetBytes(x.Bytes())
	if x.sign == Negative {
		b.Neg(b)
	}
}

// Int64 returns x as an int64 if it fits.
func (x *Int) Int64() (v int64, ok bool) {
	if x.SigWords() > wordsPerUint64 {
		return 0, false
	}
	var mag uint64
	for i := 0; i < wordsPerUint64; i++ {
		mag |= uint64(x.WordAt(i)) << (uint(i) * _W)
	}
	if x.sign == Negative {
		if mag == -minInt64 {
			return minInt64, true
		}
		v, err := safecast.Conv[int64](mag)
		if err != nil {
			return 0, false
		}
		return -v, true
	}
	v, err := safecast.Conv[int64](mag)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (x *Int) String() string {
	// FIXME: big.Int is good enough for display, but it isn't constant-time.
	return x.AsBigInt().String()
}

func (x *Int) Format(s fmt.State, c rune) {
	x.AsBigInt().Format(s, c)
}

func (x *Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts), 10)
	if err != nil {
		return err
	}
	*x = *v
	return nil
}

func (x *Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

func (x *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("ctnum: int invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts), 10)
	if err != nil {
		return err
	}
	*x = *v
	return nil
}
