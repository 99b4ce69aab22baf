package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	ctnum "github.com/shabbyrobe/go-ctnum"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace [flags] <x> <y>",
	Short: "Show what the division engine did for each quotient digit",
	Long: `trace divides x by y and logs the normalization shift, the initial
reduction and, for each quotient digit, the estimate, the corrections and
whether the remainder had to be added back. The output contains the
operands; don't use it on secrets.`,
	Args: cobra.ExactArgs(2),
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().Int("pad", 0, "extend both operands to at least this many words")
	traceCmd.Flags().Bool("dump", false, "dump the raw trace with spew")
}

func runTrace(cmd *cobra.Command, args []string) error {
	pad, err := cmd.Flags().GetInt("pad")
	if err != nil {
		return fmt.Errorf("failed to get pad flag: %w", err)
	}
	dump, err := cmd.Flags().GetBool("dump")
	if err != nil {
		return fmt.Errorf("failed to get dump flag: %w", err)
	}

	x, y, err := parseOperands(args)
	if err != nil {
		return err
	}
	x.GrowTo(pad)
	y.GrowTo(pad)

	var tr ctnum.DivTrace
	q, r, err := ctnum.QuoRemTrace(x, y, &tr)
	if err != nil {
		return err
	}

	logger.Info().
		Uint("shifts", tr.Shifts).
		Int("n", tr.N).
		Int("t", tr.T).
		Uint64("top", uint64(tr.Top)).
		Msg("normalized")

	for _, d := range tr.Digits {
		logger.Info().
			Int("j", d.J).
			Bool("saturated", d.Saturated == 1).
			Str("estimate", fmt.Sprintf("%#x", uint64(d.Estimate))).
			Uint64("corrections", uint64(d.Corrections)).
			Bool("addBack", d.AddBack == 1).
			Str("digit", fmt.Sprintf("%#x", uint64(d.Digit))).
			Msg("digit")
	}

	logger.Info().
		Int("checks", tr.Checks).
		Str("q", q.String()).
		Str("r", r.String()).
		Msg("done")

	if dump {
		spew.Fdump(cmd.OutOrStdout(), tr)
	}
	return nil
}
