package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is reconfigured from the persistent flags before any subcommand runs.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:   "ctdiv",
	Short: "Constant-time integer division tool",
	Long: `ctdiv runs the ctnum division engine on numbers given on the command
line or in files, and can show what the engine did for each quotient digit.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.AddCommand(quoremCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(fuzzCmd)

	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console|json)")
}

// Negative operands must follow "--", e.g. "ctdiv quorem -- -7 2".
func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("ctdiv failed")
		os.Exit(1)
	}
}

func setupLogger(cmd *cobra.Command, args []string) error {
	levelFlag, err := cmd.Root().PersistentFlags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	formatFlag, err := cmd.Root().PersistentFlags().GetString("log-format")
	if err != nil {
		return fmt.Errorf("failed to get log-format flag: %w", err)
	}

	level, err := zerolog.ParseLevel(levelFlag)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelFlag, err)
	}

	switch formatFlag {
	case "console":
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	case "json":
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	default:
		return fmt.Errorf("unknown log format %q", formatFlag)
	}
	logger = logger.Level(level)
	return nil
}
