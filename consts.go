package ctnum

const (
	_S = _W / 8 // word size in bytes

	// MaxWord is the largest value a single Word can hold.
	MaxWord = ^Word(0)

	minInt64 = -1 << 63

	// wordsPerUint64 is the number of Words needed to hold a uint64.
	wordsPerUint64 = 64 / _W
)
