// Package exact_test contains unit tests for the exact-value formatter.
package exact_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/echelon/exact"
)

// TestFormat_ClosedForms verifies the curated round-trips: each input must
// recover its expected closed form under the documented check order.
func TestFormat_ClosedForms(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0"},
		{"near_zero", 1e-10, "0"},
		{"negative_near_zero", -3e-12, "0"},
		{"integer", 3.0, "3"},
		{"negative_integer", -2.0, "-2"},
		{"half", 0.5, "1/2"},
		{"third", 1.0 / 3.0, "1/3"},
		{"negative_fraction", -7.0 / 4.0, "-7/4"},
		{"large_denominator", 13.0 / 999.0, "13/999"},
		{"inv_sqrt2", 1 / math.Sqrt2, "1/√2"},
		{"two_over_sqrt3", 2 / math.Sqrt(3), "2/√3"},
		{"sqrt2", math.Sqrt2, "√2"},
		{"neg_sqrt7_over4", -math.Sqrt(7) / 4, "-√7/4"},
		{"five_sqrt2_over3", 5 * math.Sqrt2 / 3, "5√2/3"},
		{"sqrt_17_thirds", math.Sqrt(17.0 / 3.0), "√(17/3)"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, exact.Format(tc.in))
		})
	}
}

// TestFormat_FirstMatchWins pins the documented ordering policy: √2 is
// recovered by the unit-surd check (as √2/1) before the squared-rational
// check could propose an equivalent form.
func TestFormat_FirstMatchWins(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "√2", exact.Format(math.Sqrt2))
	// 2/√6 and √(2/3) denote the same value; the earlier check wins.
	assert.Equal(t, "2/√6", exact.Format(math.Sqrt(2.0/3.0)))
}

// TestFormat_Fallback verifies that values without a small closed form come
// back as compact decimals, not as absurd fractions.
func TestFormat_Fallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.1234567", exact.Format(0.1234567))
	assert.Equal(t, "3.141592653589793", exact.Format(math.Pi))
}

// TestFormat_NonFinite pins the pass-through behavior for NaN and ±Inf.
func TestFormat_NonFinite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NaN", exact.Format(math.NaN()))
	assert.Equal(t, "+Inf", exact.Format(math.Inf(1)))
	assert.Equal(t, "-Inf", exact.Format(math.Inf(-1)))
}
