package number

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// requireIdentical fails unless got is the same representation as want.
func requireIdentical(t *testing.T, want, got Number) {
	t.Helper()

	require.True(t, Identical(want, got), "want %v (%v), got %v (%v)\n%s", want, kindOf(want), got, kindOf(got), spew.Sdump(got))
}

func kindOf(n Number) string {
	if n == nil {
		return "nil"
	}

	return n.Kind().String()
}
