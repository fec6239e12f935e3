package cmd

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/numcbor"
	"github.com/calebcase/numcbor/jsonnum"
	"github.com/calebcase/numcbor/number"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode CBOR items",
	Long: `Decodes a sequence of CBOR items and prints the kind, exact value and
JSON rendering of each. Items that are not numbers or simple values are
skipped.

Examples:
  numcbor decode c48221196ab3       # 273.15
  numcbor decode "f9 3e 00"         # 1.5
  numcbor decode fb3fb999999999999a # 0.1`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := hex.DecodeString(strings.Join(strings.Fields(args[0]), ""))
	if err != nil {
		printError(cmd, "invalid hex", err)

		return err
	}

	out := cmd.OutOrStdout()
	d := numcbor.NewDecoder(bytes.NewReader(data), limits.DecOptions())

	count := 0
	for {
		item, err := d.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if numcbor.ErrUnsupported.Has(err) {
			fmt.Fprintf(out, "skipped\t%v\n", err)

			continue
		}
		if err != nil {
			printError(cmd, "decode", err)

			return err
		}

		count++
		logger.Debug("decoded item", zap.Int("index", count), zap.Uint64("consumed", d.Consumed()))

		fmt.Fprintln(out, describe(item))
	}

	fmt.Fprintf(out, "%d items in %s\n", count, humanize.Bytes(d.Consumed()))

	return nil
}

// describe renders an item as kind, value and JSON text.
func describe(item any) string {
	n, ok := item.(number.Number)
	if !ok {
		switch item.(type) {
		case nil:
			return "simple\tnull\tnull"
		case bool:
			return fmt.Sprintf("simple\t%v\t%v", item, item)
		}

		return fmt.Sprintf("simple\t%v\tnull", item)
	}

	text, err := jsonnum.Format(n)
	if err != nil {
		text = err.Error()
	}

	return fmt.Sprintf("%s\t%s\t%s", n.Kind(), n, text)
}
