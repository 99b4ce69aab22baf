package main

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"fortio.org/safecast"
	ctnum "github.com/shabbyrobe/go-ctnum"
	"github.com/spf13/cobra"
)

var fuzzCmd = &cobra.Command{
	Use:   "fuzz [flags] <file>...",
	Short: "Run the byte-split division check over input files",
	Long: `fuzz reads each file, takes the first and second len/2 bytes, reads
each as an unsigned big-endian integer and checks the division of the first
by the second against math/big. The last byte of an odd-length file is
ignored. It is meant for replaying fuzzer corpora.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFuzz,
}

func init() {
	fuzzCmd.Flags().Int64("max-bytes", 1<<20, "skip files larger than this")
}

func runFuzz(cmd *cobra.Command, args []string) error {
	maxBytes, err := cmd.Flags().GetInt64("max-bytes")
	if err != nil {
		return fmt.Errorf("failed to get max-bytes flag: %w", err)
	}

	limit, err := safecast.Conv[int](maxBytes)
	if err != nil {
		return fmt.Errorf("bad max-bytes: %w", err)
	}

	var failed int
	for _, file := range args {
		in, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		if len(in) > limit {
			logger.Warn().Str("file", file).Int("size", len(in)).Msg("skipped, too large")
			continue
		}
		if err := checkQuoRemBytes(splitInput(in)); err != nil {
			failed++
			logger.Error().Str("file", file).Err(err).Msg("mismatch")
			continue
		}
		logger.Debug().Str("file", file).Int("bytes", len(in)).Msg("ok")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(args))
	}
	logger.Info().Int("inputs", len(args)).Msg("all inputs passed")
	return nil
}

// splitInput returns the first and second len(in)/2 bytes of in. The last
// byte of an odd-length input is ignored.
func splitInput(in []byte) (xb, yb []byte) {
	half := len(in) / 2
	return in[:half], in[half : 2*half]
}

func checkQuoRemBytes(xb, yb []byte) error {
	x, y := ctnum.IntFromBytes(xb), ctnum.IntFromBytes(yb)
	bx, by := new(big.Int).SetBytes(xb), new(big.Int).SetBytes(yb)

	q, r, err := ctnum.QuoRem(x, y)
	if by.Sign() == 0 {
		if !errors.Is(err, ctnum.ErrDivideByZero) {
			return fmt.Errorf("%d / 0: expected ErrDivideByZero, found %v", bx, err)
		}
		return nil
	}
	if err != nil {
		return err
	}

	bq, br := new(big.Int).QuoRem(bx, by, new(big.Int))
	if q.AsBigInt().Cmp(bq) != 0 {
		return fmt.Errorf("%d / %d: quotient %s != %s", bx, by, q, bq)
	}
	if r.AsBigInt().Cmp(br) != 0 {
		return fmt.Errorf("%d %% %d: remainder %s != %s", bx, by, r, br)
	}
	return nil
}
