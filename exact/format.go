// SPDX-License-Identifier: MIT

// Package exact: the Format function and its ordered recovery pipeline.
package exact

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultTolerance is the absolute/relative match tolerance of every
// recovery check (relative to max(1,|v|) for the rational check).
const DefaultTolerance = 1e-9

// MaxDenominator bounds the denominator of the rational recovery check.
const MaxDenominator = 1000

// surdK / surdFactor bound the integer search of the surd checks:
// k ∈ [1,surdK] for k/√s and √s/k, (k,d) ∈ [1,surdFactor]² for (k/d)·√s.
const (
	surdK      = 10
	surdFactor = 20
)

// commonSurds is the fixed radicand set probed by the surd checks, in probe
// order. Perfect squares are intentionally absent (they reduce to rationals).
var commonSurds = [...]int{2, 3, 5, 6, 7, 8, 10, 11, 12, 13, 14, 15}

// Format converts a floating-point value into a closed-form string.
// It is a pure, total function: it always returns something and never errors.
//
// The checks run in this fixed order, first match wins:
//
//  1. near-zero          → "0"
//  2. rational n/d       → "n" or "n/d" (d ≤ 1000)
//  3. k/√s and √s/k      → "1/√2", "-√7/4", "√3"
//  4. (k/d)·√s           → "5√2/3", "-2√11", "√5/4"
//  5. v² rational        → "√p", "-√(p/q)"
//  6. fallback           → compact %g decimal
//
// The ordering is deliberate and documented: a later check may match with a
// "simpler" string, but reproducible output takes precedence over minimality.
// Complexity: bounded constant work (≤ a few thousand probes).
func Format(value float64) string {
	// Guard non-finite input straight to the decimal fallback.
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}

	// 1. Near-zero collapses to "0" — never a spurious huge-denominator
	// fraction for values at machine-epsilon scale.
	if math.Abs(value) < DefaultTolerance {
		return "0"
	}

	// 2. Best small rational.
	if s, ok := asRational(value); ok {
		return s
	}

	// 3. k/√s and √s/k.
	if s, ok := asUnitSurdRatio(value); ok {
		return s
	}

	// 4. (k/d)·√s.
	if s, ok := asScaledSurd(value); ok {
		return s
	}

	// 5. √(p/q) via the squared value.
	if s, ok := asSquareRootRational(value); ok {
		return s
	}

	// 6. Fallback: compact, human-readable decimal.
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// asRational scans denominators 1..MaxDenominator for the first d whose
// rounded numerator reproduces value within tolerance. Scanning d upward
// yields the smallest matching denominator.
func asRational(value float64) (string, bool) {
	tol := DefaultTolerance * math.Max(1, math.Abs(value))
	for d := 1; d <= MaxDenominator; d++ {
		n := math.Round(value * float64(d))
		if math.Abs(value-n/float64(d)) <= tol {
			if d == 1 {
				return strconv.FormatInt(int64(n), 10), true
			}

			return fmt.Sprintf("%d/%d", int64(n), d), true
		}
	}

	return "", false
}

// asUnitSurdRatio probes k/√s then √s/k for each k ∈ [1,surdK] and each
// common surd s, in that nesting order (k outer, s inner, k/√s before √s/k).
func asUnitSurdRatio(value float64) (string, bool) {
	mag, sign := math.Abs(value), signPrefix(value)
	for k := 1; k <= surdK; k++ {
		for _, s := range commonSurds {
			root := math.Sqrt(float64(s))
			// k/√s
			if math.Abs(mag-float64(k)/root) <= DefaultTolerance {
				return fmt.Sprintf("%s%d/√%d", sign, k, s), true
			}
			// √s/k (denominator 1 elides the division)
			if math.Abs(mag-root/float64(k)) <= DefaultTolerance {
				if k == 1 {
					return fmt.Sprintf("%s√%d", sign, s), true
				}

				return fmt.Sprintf("%s√%d/%d", sign, s, k), true
			}
		}
	}

	return "", false
}

// asScaledSurd probes (k/d)·√s for k,d ∈ [1,surdFactor]² over the common
// surds (k outer, d middle, s inner).
func asScaledSurd(value float64) (string, bool) {
	mag, sign := math.Abs(value), signPrefix(value)
	for k := 1; k <= surdFactor; k++ {
		for d := 1; d <= surdFactor; d++ {
			for _, s := range commonSurds {
				if math.Abs(mag-float64(k)*math.Sqrt(float64(s))/float64(d)) > DefaultTolerance {
					continue
				}
				switch {
				case k == 1 && d == 1:
					return fmt.Sprintf("%s√%d", sign, s), true
				case d == 1:
					return fmt.Sprintf("%s%d√%d", sign, k, s), true
				case k == 1:
					return fmt.Sprintf("%s√%d/%d", sign, s, d), true
				default:
					return fmt.Sprintf("%s%d√%d/%d", sign, k, s, d), true
				}
			}
		}
	}

	return "", false
}

// asSquareRootRational probes value² ≈ p/q over [1,100]² (p outer, q inner)
// and renders √p or √(p/q) with the original sign preserved.
func asSquareRootRational(value float64) (string, bool) {
	sq := value * value
	tol := DefaultTolerance * math.Max(1, sq)
	sign := signPrefix(value)
	for p := 1; p <= 100; p++ {
		for q := 1; q <= 100; q++ {
			if math.Abs(sq-float64(p)/float64(q)) > tol {
				continue
			}
			if q == 1 {
				return fmt.Sprintf("%s√%d", sign, p), true
			}

			return fmt.Sprintf("%s√(%d/%d)", sign, p, q), true
		}
	}

	return "", false
}

// signPrefix returns "-" for negative values and "" otherwise.
func signPrefix(value float64) string {
	if value < 0 {
		return "-"
	}

	return ""
}
