package main

import (
	"fmt"

	ctnum "github.com/shabbyrobe/go-ctnum"
	"github.com/spf13/cobra"
)

var quoremCmd = &cobra.Command{
	Use:   "quorem [flags] <x> <y>",
	Short: "Divide x by y and print the quotient and remainder",
	Long: `quorem prints x/y truncated toward zero and the remainder, which has the
sign of x. With --euclid the Euclidean quotient and modulus are printed
instead; the modulus is never negative.`,
	Args: cobra.ExactArgs(2),
	RunE: runQuoRem,
}

func init() {
	quoremCmd.Flags().Bool("euclid", false, "use Euclidean division")
	quoremCmd.Flags().Int("base", 10, "output base (10|16)")
}

// parseOperands reads x and y with big.Int syntax, so 0x, 0o and 0b prefixes
// are accepted.
func parseOperands(args []string) (x, y *ctnum.Int, err error) {
	x, err = ctnum.IntFromString(args[0], 0)
	if err != nil {
		return nil, nil, fmt.Errorf("bad dividend: %w", err)
	}
	y, err = ctnum.IntFromString(args[1], 0)
	if err != nil {
		return nil, nil, fmt.Errorf("bad divisor: %w", err)
	}
	return x, y, nil
}

func runQuoRem(cmd *cobra.Command, args []string) error {
	euclid, err := cmd.Flags().GetBool("euclid")
	if err != nil {
		return fmt.Errorf("failed to get euclid flag: %w", err)
	}
	base, err := cmd.Flags().GetInt("base")
	if err != nil {
		return fmt.Errorf("failed to get base flag: %w", err)
	}

	var verb string
	switch base {
	case 10:
		verb = "%d"
	case 16:
		verb = "%#x"
	default:
		return fmt.Errorf("unsupported base %d", base)
	}

	x, y, err := parseOperands(args)
	if err != nil {
		return err
	}

	logger.Debug().
		Int("xWords", x.Len()).
		Int("yWords", y.Len()).
		Bool("euclid", euclid).
		Msg("dividing")

	div := ctnum.QuoRem
	if euclid {
		div = ctnum.DivMod
	}
	q, r, err := div(x, y)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, verb+"\n", q)
	fmt.Fprintf(out, verb+"\n", r)
	return nil
}
