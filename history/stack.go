// SPDX-License-Identifier: MIT

// Package history: the snapshot Stack.
package history

import (
	"errors"

	"github.com/katalvlaran/echelon/scalar"
)

// ErrEmpty is returned by Undo and Peek on an empty stack.
var ErrEmpty = errors.New("history: empty stack")

// Stack is a push-only sequence of matrix snapshots with an explicit pop on
// undo. The zero value is an empty, ready-to-use stack. Not safe for
// concurrent use; each caller owns its own Stack.
type Stack struct {
	snaps []*scalar.Matrix
}

// Push records a deep copy of m. Nil matrices are rejected.
func (s *Stack) Push(m *scalar.Matrix) error {
	if m == nil {
		return scalar.ErrNilMatrix
	}
	s.snaps = append(s.snaps, m.Clone())

	return nil
}

// Undo removes and returns the most recent snapshot, or ErrEmpty.
// The returned matrix is the stored copy; the caller takes ownership.
func (s *Stack) Undo() (*scalar.Matrix, error) {
	if len(s.snaps) == 0 {
		return nil, ErrEmpty
	}
	top := s.snaps[len(s.snaps)-1]
	s.snaps = s.snaps[:len(s.snaps)-1]

	return top, nil
}

// Peek returns the most recent snapshot without removing it, or ErrEmpty.
func (s *Stack) Peek() (*scalar.Matrix, error) {
	if len(s.snaps) == 0 {
		return nil, ErrEmpty
	}

	return s.snaps[len(s.snaps)-1], nil
}

// Len reports the number of stored snapshots.
func (s *Stack) Len() int { return len(s.snaps) }

// Clear drops all snapshots.
func (s *Stack) Clear() { s.snaps = nil }
