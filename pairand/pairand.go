// Package pairand computes the maximum value obtainable by bitwise-ANDing
// any two distinct-position elements of a collection of non-negative
// integers.
//
// Instead of the naive O(n^2) all-pairs scan, the answer is built greedily
// one bit at a time, from the most significant position down. A candidate
// mask starts at zero; at every position the mask is tentatively extended by
// that bit, and the bit is committed only if at least two elements still
// contain the whole extended mask. Declining a satisfiable high bit can
// never be recovered by lower bits, so the greedy choice is always safe.
// Total cost is O(W*n) time and O(1) extra space, W being the bit width.
package pairand

import (
	"errors"
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

var (
	// ErrInsufficientElements reports that fewer than two elements were
	// supplied, so no pair exists. It is deliberately distinct from a
	// legitimate zero result (two elements sharing no bits).
	ErrInsufficientElements = errors.New("pairand: need at least two elements")

	// ErrNegativeValue reports a value outside the supported non-negative
	// domain on the signed entry point.
	ErrNegativeValue = errors.New("pairand: negative value not supported")
)

// Impl selects one of the interchangeable maximizer implementations.
type Impl int

const (
	// ScanImpl rescans every element for every bit position.
	ScanImpl Impl = iota
	// FilterImpl keeps a shrinking candidate set of element positions and
	// rescans survivors only.
	FilterImpl
)

// SelectedImpl is the implementation used by Max and MaxBits.
const SelectedImpl = ScanImpl

// Max returns the maximum pairwise AND over values, using the full bit
// width of T. It fails with ErrInsufficientElements when len(values) < 2.
func Max[T constraints.Unsigned](values []T) (T, error) {
	return MaxBits(values, typeWidth[T]())
}

// MaxBits is Max with an explicit bit width. width must lie in
// [1, bit width of T] and cover the highest set bit of every input.
func MaxBits[T constraints.Unsigned](values []T, width int) (T, error) {
	return MaxBitsUsing(SelectedImpl, values, width)
}

// MaxBitsUsing is MaxBits with an explicit implementation choice.
func MaxBitsUsing[T constraints.Unsigned](impl Impl, values []T, width int) (T, error) {
	if len(values) < 2 {
		return 0, ErrInsufficientElements
	}
	if err := checkWidth(values, width); err != nil {
		return 0, err
	}
	switch impl {
	case ScanImpl:
		return maxScan(values, width), nil
	case FilterImpl:
		return maxFilter(values, width), nil
	default:
		return 0, fmt.Errorf("pairand: unknown implementation %d", impl)
	}
}

// MaxInt matches the signed signature of the original routine. Negative
// values are rejected with ErrNegativeValue rather than being fed into the
// bitwise reasoning, which assumes no sign-bit interference.
func MaxInt(values []int) (int, error) {
	if len(values) < 2 {
		return 0, ErrInsufficientElements
	}
	us := make([]uint, len(values))
	for i, v := range values {
		if v < 0 {
			return 0, fmt.Errorf("%w: values[%d] = %d", ErrNegativeValue, i, v)
		}
		us[i] = uint(v)
	}
	r, err := MaxBits(us, bits.UintSize-1)
	return int(r), err
}

func checkWidth[T constraints.Unsigned](values []T, width int) error {
	if w := typeWidth[T](); width < 1 || width > w {
		return fmt.Errorf("pairand: width %d out of range [1, %d]", width, w)
	}
	for i, v := range values {
		if highBit(v) >= width {
			return fmt.Errorf("pairand: values[%d] = %d exceeds %d-bit width", i, v, width)
		}
	}
	return nil
}

// maxScan is the direct form of the greedy construction: one pass over all
// elements per bit position, high to low.
func maxScan[T constraints.Unsigned](values []T, width int) T {
	var result T
	for bit := width - 1; bit >= 0; bit-- {
		temp := result | T(1)<<uint(bit)
		count := 0
		for _, v := range values {
			if v&temp == temp {
				count++
				if count == 2 {
					break
				}
			}
		}
		if count >= 2 {
			result = temp
		}
	}
	return result
}

// scanTrace is maxScan with the candidate mask recorded after every bit
// position, most significant first. Tests use it to verify that the mask
// never decreases and gains at most one bit per step.
func scanTrace[T constraints.Unsigned](values []T, width int) (T, []T) {
	trace := make([]T, 0, width)
	var result T
	for bit := width - 1; bit >= 0; bit-- {
		temp := result | T(1)<<uint(bit)
		count := 0
		for _, v := range values {
			if v&temp == temp {
				count++
			}
		}
		if count >= 2 {
			result = temp
		}
		trace = append(trace, result)
	}
	return result, trace
}

func typeWidth[T constraints.Unsigned]() int {
	return bits.OnesCount64(uint64(^T(0)))
}

// highBit returns the index of the highest set bit of v, -1 for zero.
func highBit[T constraints.Unsigned](v T) int {
	return 63 - bits.LeadingZeros64(uint64(v))
}
