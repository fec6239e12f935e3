package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/numcbor"
	"github.com/calebcase/numcbor/number"
)

var encodeRational bool

var encodeCmd = &cobra.Command{
	Use:   "encode <number>",
	Short: "Encode a JSON number as CBOR",
	Long: `Parses a JSON number and prints its canonical CBOR encoding as hex.
With --rational the argument may also be a fraction such as 1/3.

Examples:
  numcbor encode 273.15
  numcbor encode -- -1e400
  numcbor encode --rational 1/3`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().BoolVar(&encodeRational, "rational", false, "accept n/d fractions, infinities and NaN")
}

// parse reads a JSON number, or any number.Parse form when rational is set.
func parse(text string, rational bool) (number.Number, error) {
	if rational {
		return number.Parse(text)
	}

	return limits.JSONOptions().Parse(text)
}

func runEncode(cmd *cobra.Command, args []string) error {
	n, err := parse(args[0], encodeRational)
	if err != nil {
		printError(cmd, "parse", err)

		return err
	}

	data, err := numcbor.Marshal(n)
	if err != nil {
		printError(cmd, "encode", err)

		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))

	return nil
}
