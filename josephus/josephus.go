// Package josephus solves the Josephus counting-out problem: n people stand
// in a circle, every k-th person is eliminated, and the position of the
// last survivor is wanted.
package josephus

import (
	"errors"
	"fmt"
)

// ErrInvalidArgs reports a non-positive circle size or step.
var ErrInvalidArgs = errors.New("josephus: n and k must be positive")

// Survivor returns the 0-based position of the last survivor among n people
// with step k, using the recurrence J(1) = 0, J(n) = (J(n-1) + k) mod n
// unrolled into a loop.
func Survivor(n, k int) (int, error) {
	if n < 1 || k < 1 {
		return 0, fmt.Errorf("%w: n=%d k=%d", ErrInvalidArgs, n, k)
	}
	pos := 0
	for i := 2; i <= n; i++ {
		pos = (pos + k) % i
	}
	return pos, nil
}

// SurvivorRecursive is the direct recursive form of the recurrence, kept as
// the readable reference next to the iterative Survivor.
func SurvivorRecursive(n, k int) (int, error) {
	if n < 1 || k < 1 {
		return 0, fmt.Errorf("%w: n=%d k=%d", ErrInvalidArgs, n, k)
	}
	return survivor(n, k), nil
}

func survivor(n, k int) int {
	if n == 1 {
		return 0
	}
	return (survivor(n-1, k) + k) % n
}
