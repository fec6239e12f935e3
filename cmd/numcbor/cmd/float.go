package cmd

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calebcase/numcbor"
	"github.com/calebcase/numcbor/number"
)

var floatWidth int

var floatCmd = &cobra.Command{
	Use:   "float <literal>",
	Short: "Show the exact value of a float",
	Long: `Rounds a literal to the nearest float64 (or float32 with --width 32)
and prints the exact decimal value it holds, its bit pattern and its shortest
CBOR encoding.

Examples:
  numcbor float 0.1
  numcbor float --width 32 40.20107`,
	Args: cobra.ExactArgs(1),
	RunE: runFloat,
}

func init() {
	rootCmd.AddCommand(floatCmd)

	floatCmd.Flags().IntVar(&floatWidth, "width", 64, "float width: 32 or 64")
}

func runFloat(cmd *cobra.Command, args []string) error {
	if floatWidth != 32 && floatWidth != 64 {
		err := fmt.Errorf("unsupported width %d", floatWidth)
		printError(cmd, "float", err)

		return err
	}

	f, err := strconv.ParseFloat(args[0], floatWidth)
	if err != nil {
		printError(cmd, "parse", err)

		return err
	}

	var n number.Number
	var bits string

	switch floatWidth {
	case 32:
		n = number.FromFloat32(float32(f))
		bits = fmt.Sprintf("%08x", math.Float32bits(float32(f)))
	default:
		n = number.FromFloat64(f)
		bits = fmt.Sprintf("%016x", math.Float64bits(f))
	}

	parts := n.String()
	if b, ok := n.(number.BinaryFraction); ok {
		parts = fmt.Sprintf("%s * 2^%s", b.Significand(), b.Exponent())
	}

	data, err := numcbor.Marshal(n)
	if err != nil {
		printError(cmd, "encode", err)

		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "exact\t%s\n", n)
	fmt.Fprintf(out, "binary\t%s\n", parts)
	fmt.Fprintf(out, "bits\t%s\n", bits)
	fmt.Fprintf(out, "cbor\t%s\n", hex.EncodeToString(data))

	return nil
}
