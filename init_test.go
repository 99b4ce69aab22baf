package ctnum

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations = fuzzDefaultIterations
	fuzzOpsActive  = allFuzzOps
	fuzzMaxWords   = 8
	fuzzSeed       int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList

	flag.IntVar(&fuzzIterations, "ctnum.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "ctnum.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.IntVar(&fuzzMaxWords, "ctnum.maxwords", fuzzMaxWords, "Maximum announced length of fuzzed operands, in words")
	flag.Var(&ops, "ctnum.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("max words: ", fuzzMaxWords)
	log.Println("word size: ", _W)

	code := m.Run()
	os.Exit(code)
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// ints parses s (any big.Int.SetString base-0 syntax, spaces ignored) into
// an Int with the minimum announced length.
func ints(s string) *Int {
	return IntFromBigInt(bigs(s))
}

func bigs(s string) *big.Int {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("ctnum: big string %q invalid", s))
	}
	return b
}

// edgeWords are the word values most likely to trip up the quotient estimate:
// saturation needs equal top words, add-back needs the low divisor words to
// dominate.
var edgeWords = []Word{0, 1, MaxWord, MaxWord - 1, 1 << (_W - 1), 1<<(_W-1) - 1, 1<<(_W-1) + 1}

// randomWords returns n words that are either uniformly random or drawn from
// edgeWords.
func randomWords(rng *rand.Rand, n int) []Word {
	ws := make([]Word, n)
	edge := rng.Intn(2) == 0
	for i := range ws {
		if edge {
			ws[i] = edgeWords[rng.Intn(len(edgeWords))]
		} else {
			ws[i] = Word(rng.Uint64())
		}
	}
	return ws
}

// randomInt returns an Int with an announced length of 0 to maxWords words.
// Bit lengths are spread evenly by masking the top word down to a random
// number of bits.
func randomInt(rng *rand.Rand, maxWords int, signed bool) *Int {
	if rng == nil {
		rng = globalRNG
	}
	n := rng.Intn(maxWords + 1)
	ws := randomWords(rng, n)
	if n > 0 && rng.Intn(4) == 0 {
		ws[n-1] >>= uint(rng.Intn(_W))
	}
	sign := Positive
	if signed && rng.Intn(2) == 1 {
		sign = Negative
	}
	return IntFromWords(sign, ws)
}

func randomNonZeroInt(rng *rand.Rand, maxWords int, signed bool) *Int {
	for {
		x := randomInt(rng, maxWords, signed)
		if !x.IsZero() {
			return x
		}
	}
}
