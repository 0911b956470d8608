// Package exact recovers closed-form strings from floating-point scalars.
//
// Format turns a float back into the value a student would write by hand:
// an integer ("3"), a simple fraction ("1/2"), or a simple surd expression
// ("1/√2", "5√2/3", "√(2/3)"), falling back to compact decimal notation when
// no small closed form matches.
//
// The recovery checks run in a FIXED order and the first satisfying form
// wins, even when a later check would produce a simpler-looking string.
// That ordering is part of the contract: callers that render worked examples
// rely on reproducible output.
package exact
