package pairand

import (
	"github.com/bits-and-blooms/bitset"

	"golang.org/x/exp/constraints"

	"github.com/ParasPidurkar/Datastructure-and-Algorithm/errutil"
)

// maxFilter is the candidate-set form of the greedy construction. Element
// positions live in a bitset; whenever a bit is committed, the set shrinks
// to the positions that still contain the whole mask, so later counting
// passes touch survivors only. Results are identical to maxScan: an element
// survives exactly when its value is a superset of every committed bit, so
// testing survivors against the extended mask is the same cumulative-mask
// test maxScan performs from scratch each pass.
func maxFilter[T constraints.Unsigned](values []T, width int) T {
	n := uint(len(values))
	candidates := bitset.New(n)
	for i := uint(0); i < n; i++ {
		candidates.Set(i)
	}

	var result T
	for bit := width - 1; bit >= 0; bit-- {
		temp := result | T(1)<<uint(bit)
		matched := bitset.New(n)
		count := 0
		for i, ok := candidates.NextSet(0); ok; i, ok = candidates.NextSet(i + 1) {
			if values[i]&temp == temp {
				matched.Set(i)
				count++
			}
		}
		if count >= 2 {
			errutil.BugOn(uint(count) != matched.Count(), "survivor count mismatch")
			result = temp
			candidates = matched
		}
	}
	return result
}
