package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/numcbor/internal/config"
)

var (
	cfgFile string
	verbose bool

	limits config.Limits
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "numcbor",
	Short: "Inspect CBOR and JSON numbers",
	Long: `numcbor decodes and encodes the numeric items of CBOR and shows the
exact values behind floats.

Commands:
  decode   - decode CBOR items given as hex
  encode   - encode a JSON number as canonical CBOR
  float    - show the exact decimal value of a float
  compare  - order two JSON numbers`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "limits file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setup(cmd *cobra.Command, args []string) (err error) {
	logger = zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}

	limits, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	logger.Debug("limits loaded",
		zap.String("config", cfgFile),
		zap.Bool("strict", limits.Decode.Strict),
		zap.String("max_bignum", humanize.IBytes(uint64(limits.Decode.MaxBignumBytes))),
		zap.String("max_string", humanize.IBytes(uint64(limits.Decode.MaxStringBytes))),
		zap.Int("max_depth", limits.Decode.MaxDepth),
		zap.Int("max_exponent_digits", limits.JSON.MaxExponentDigits),
	)

	return nil
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %v\n", msg, err)
}
