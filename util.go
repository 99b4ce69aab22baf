package ctnum

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a nonnegative Int with an announced length of words from
// an external source.
func RandInt(source RandSource, words int) *Int {
	x := &Int{words: make([]Word, words)}
	for i := range x.words {
		x.words[i] = Word(source.Uint64())
	}
	return x
}

// Difference returns |a - b|.
func Difference(a, b *Int) *Int {
	d := a.Sub(b)
	d.sign = Positive
	return d
}
