package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with a relative and absolute tolerance of epsilon.
func approx(epsilon float64) cmp.Option {
	return cmpopts.EquateApprox(epsilon, epsilon)
}
