package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/numcbor/number"
)

var compareRational bool

var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Order two numbers",
	Long: `Compares two JSON numbers exactly and prints -1, 0 or 1. With
--rational the arguments may also be fractions, infinities or NaN.

Examples:
  numcbor compare 1.50 1.5
  numcbor compare --rational 1/3 0.3333333333333333`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().BoolVar(&compareRational, "rational", false, "accept n/d fractions, infinities and NaN")
}

func runCompare(cmd *cobra.Command, args []string) error {
	var ns [2]number.Number

	for i, arg := range args {
		n, err := parse(arg, compareRational)
		if err != nil {
			printError(cmd, "parse", err)

			return err
		}

		ns[i] = n
	}

	fmt.Fprintln(cmd.OutOrStdout(), number.Compare(ns[0], ns[1]))

	return nil
}
