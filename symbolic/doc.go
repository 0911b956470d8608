// Package symbolic defines the contract between echelon's control logic and
// the symbolic-mathematics engine it delegates to.
//
// The symbolic package provides:
//
//   - Engine: the capability surface the analyzers need — solve a polynomial
//     equation for a variable, list free variables, substitute, simplify,
//     and test identical-zero — expressed as plain result-returning calls.
//   - GoSym: the default Engine backed by github.com/njchilds90/go-sympy.
//
// Failure is data, not control flow: an equation the engine cannot solve
// surfaces as ErrUnsolvable from Solve, which callers recover from per entry
// (skip, record a diagnostic, continue). Nothing in this package panics on
// user input.
package symbolic
