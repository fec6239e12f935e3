package main

import (
	"os"

	"github.com/calebcase/numcbor/cmd/numcbor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
