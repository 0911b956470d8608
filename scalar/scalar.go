// SPDX-License-Identifier: MIT

// Package scalar: the Scalar value type and its arithmetic.
// Scalar is a tagged union over {numeric float64, symbolic expression}; the
// symbolic arm is an opaque go-sympy expression. Dispatch happens through
// capability methods (IsZero, HasParameters, Add, ...) rather than runtime
// type inspection at call sites.
package scalar

import (
	"math"
	"sort"
	"strconv"

	gosymbol "github.com/njchilds90/gosymbol"
)

// Tolerance is the numeric zero threshold used by IsZero and Div.
// Floating-point entries within ±Tolerance of zero are treated as zero.
const Tolerance = 1e-10

// Scalar is a single matrix entry: a finite float64 or a symbolic expression.
// The zero value is the numeric 0. A Scalar never changes arm after creation
// (monomorphic for its lifetime); arithmetic between mixed arms promotes the
// result to the symbolic arm.
type Scalar struct {
	sym gosymbol.Expr // non-nil ⇒ symbolic arm
	num float64       // numeric arm payload (valid when sym == nil)
}

// Num wraps a float64 as a numeric Scalar. Complexity: O(1).
func Num(v float64) Scalar { return Scalar{num: v} }

// Sym wraps a go-sympy expression as a symbolic Scalar.
// A nil expression yields the numeric zero Scalar. Complexity: O(1).
func Sym(e gosymbol.Expr) Scalar {
	if e == nil {
		return Scalar{}
	}

	return Scalar{sym: e}
}

// Param builds a symbolic Scalar holding the bare free parameter name,
// e.g. Param("a") for entries like a−3. Complexity: O(1).
func Param(name string) Scalar { return Scalar{sym: gosymbol.S(name)} }

// IsNumeric reports whether the Scalar is on the numeric (float64) arm.
func (s Scalar) IsNumeric() bool { return s.sym == nil }

// IsSymbolic reports whether the Scalar is on the symbolic arm.
func (s Scalar) IsSymbolic() bool { return s.sym != nil }

// Float returns the numeric payload. For a symbolic Scalar it returns the
// evaluated value when the expression is parameter-free, and NaN otherwise.
// Complexity: O(1) numeric, O(size of expression) symbolic.
func (s Scalar) Float() float64 {
	// Numeric arm: direct payload.
	if s.sym == nil {
		return s.num
	}
	// Symbolic arm: best-effort exact evaluation.
	if n, ok := canonical(s.sym).Eval(); ok {
		return n.Float64()
	}

	return math.NaN()
}

// Expr returns the go-sympy view of the Scalar. Numeric Scalars are lifted
// into an exact rational expression. Complexity: O(1).
func (s Scalar) Expr() gosymbol.Expr {
	if s.sym != nil {
		return s.sym
	}

	return gosymbol.NFloat(s.num)
}

// IsZero reports equality with zero: within Tolerance for the numeric arm,
// by exact evaluation of the simplified expression for the symbolic arm.
// Symbolic expressions that still contain free parameters are never zero here
// (they may be zero only for specific parameter values).
func (s Scalar) IsZero() bool {
	if s.sym == nil {
		return abs(s.num) <= Tolerance
	}
	if n, ok := canonical(s.sym).Eval(); ok {
		return n.IsZero()
	}

	return false
}

// IsOne reports exact equality with 1 (within Tolerance on the numeric arm).
func (s Scalar) IsOne() bool {
	if s.sym == nil {
		return abs(s.num-1) <= Tolerance
	}
	if n, ok := canonical(s.sym).Eval(); ok {
		return n.IsOne()
	}

	return false
}

// IsNegOne reports exact equality with −1 (within Tolerance on the numeric arm).
func (s Scalar) IsNegOne() bool {
	if s.sym == nil {
		return abs(s.num+1) <= Tolerance
	}
	if n, ok := canonical(s.sym).Eval(); ok {
		return n.IsNegOne()
	}

	return false
}

// HasParameters reports whether the Scalar depends on at least one free
// parameter. Numeric Scalars never do; symbolic Scalars may simplify to a
// parameter-free constant and still report false.
func (s Scalar) HasParameters() bool {
	if s.sym == nil {
		return false
	}

	return len(gosymbol.FreeSymbols(s.sym)) > 0
}

// Parameters returns the sorted free parameter names of the Scalar.
// Numeric Scalars return nil. Complexity: O(size of expression + k log k).
func (s Scalar) Parameters() []string {
	if s.sym == nil {
		return nil
	}
	set := gosymbol.FreeSymbols(s.sym)
	if len(set) == 0 {
		return nil
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	// Deterministic order for reproducible case reporting.
	sort.Strings(names)

	return names
}

// Add returns s + t. Numeric+numeric stays numeric; any symbolic operand
// promotes the result to the symbolic arm (already simplified by go-sympy).
func (s Scalar) Add(t Scalar) Scalar {
	if s.sym == nil && t.sym == nil {
		return Scalar{num: s.num + t.num}
	}

	return Scalar{sym: gosymbol.AddOf(s.Expr(), t.Expr())}
}

// Sub returns s − t under the same promotion rule as Add.
func (s Scalar) Sub(t Scalar) Scalar {
	if s.sym == nil && t.sym == nil {
		return Scalar{num: s.num - t.num}
	}

	return Scalar{sym: gosymbol.AddOf(s.Expr(), gosymbol.MulOf(gosymbol.N(-1), t.Expr()))}
}

// Mul returns s · t under the same promotion rule as Add.
func (s Scalar) Mul(t Scalar) Scalar {
	if s.sym == nil && t.sym == nil {
		return Scalar{num: s.num * t.num}
	}

	return Scalar{sym: gosymbol.MulOf(s.Expr(), t.Expr())}
}

// Neg returns −s on the same arm as s.
func (s Scalar) Neg() Scalar {
	if s.sym == nil {
		return Scalar{num: -s.num}
	}

	return Scalar{sym: gosymbol.MulOf(gosymbol.N(-1), s.sym)}
}

// Div returns s / t, or ErrZeroDivide when t is zero (within Tolerance
// numerically, or identically zero symbolically). Division by a symbolic
// divisor that merely COULD be zero for some parameter value is allowed;
// callers that must avoid it (pivot normalization) check HasParameters first.
func (s Scalar) Div(t Scalar) (Scalar, error) {
	if t.IsZero() {
		return Scalar{}, ErrZeroDivide
	}
	if s.sym == nil && t.sym == nil {
		return Scalar{num: s.num / t.num}, nil
	}

	return Scalar{sym: gosymbol.MulOf(s.Expr(), gosymbol.PowOf(t.Expr(), gosymbol.N(-1)))}, nil
}

// Simplify returns the Scalar with its symbolic arm normalized through
// go-sympy. Numeric Scalars are returned unchanged; the arm never switches.
func (s Scalar) Simplify() Scalar {
	if s.sym == nil {
		return s
	}

	return Scalar{sym: canonical(s.sym)}
}

// String renders the Scalar for traces and debugging: %g for the numeric arm,
// the engine's printed form for the symbolic arm. Display layers that want
// closed fractional/surd forms should use package exact instead.
func (s Scalar) String() string {
	if s.sym == nil {
		return strconv.FormatFloat(s.num, 'g', -1, 64)
	}

	return s.sym.String()
}

// abs is a local shorthand for math.Abs in the hot zero tests.
func abs(v float64) float64 { return math.Abs(v) }
