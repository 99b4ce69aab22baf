/*
Package ctnum provides a sign-magnitude arbitrary-precision integer (Int) and
constant-time division for it.

Division follows the schoolbook long division of Knuth's Algorithm D (HAC
14.20), with every decision that would normally branch on the value of a
word replaced by a Mask select. The sequence of instructions and memory
accesses depends on the lengths of the operands, never on their contents.

Simple example:

	x := NewInt(-7)
	y := NewInt(2)
	q, r, err := QuoRem(x, y)
	fmt.Println(q, r, err)
	// Output: -3 -1 <nil>

Two conventions are available:

	QuoRem(x, y)   // truncated: q = trunc(x/y), r has the sign of x
	DivMod(x, y)   // Euclidean: 0 <= m < |y|

Both return ErrDivideByZero when y is zero.

Int can be created from a variety of sources:

	NewInt(v int64) *Int
	IntFromWords(sign Sign, words []Word) *Int
	IntFromBytes(buf []byte) *Int
	IntFromBigInt(v *big.Int) *Int
	IntFromString(s string, base int) (*Int, error)

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Formatting goes through math/big and is not constant-time.

Words are 64 bits wide by default. Build with the ctnum32 tag to use 32-bit
words.
*/
package ctnum
