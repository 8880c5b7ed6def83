package josephus

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

// simulate eliminates every k-th person from an explicit circle and returns
// the survivor's original position. Oracle for the recurrence.
func simulate(n, k int) int {
	circle := make([]int, n)
	for i := range circle {
		circle[i] = i
	}
	idx := 0
	for len(circle) > 1 {
		idx = (idx + k - 1) % len(circle)
		circle = append(circle[:idx], circle[idx+1:]...)
	}
	return circle[0]
}

func TestSurvivorKnownValues(t *testing.T) {
	t.Parallel()
	cases := []struct {
		n, k, want int
	}{
		{1, 1, 0},
		{1, 7, 0},
		{2, 1, 1},
		{5, 2, 2},
		{7, 3, 3},
		{41, 3, 30}, // the classical 41-soldier, step-3 story
		{10, 1, 9},
	}

	for _, tc := range cases {
		got, err := Survivor(tc.n, tc.k)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "Survivor(%d, %d)", tc.n, tc.k)
	}
}

func TestSurvivorInvalidArgs(t *testing.T) {
	t.Parallel()

	_, err := Survivor(0, 3)
	require.ErrorIs(t, err, ErrInvalidArgs)

	_, err = Survivor(5, 0)
	require.ErrorIs(t, err, ErrInvalidArgs)

	_, err = SurvivorRecursive(-1, 2)
	require.ErrorIs(t, err, ErrInvalidArgs)
}

func TestSurvivorMatchesSimulation(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 50; n++ {
		for k := 1; k <= 10; k++ {
			want := simulate(n, k)

			got, err := Survivor(n, k)
			require.NoError(t, err)
			require.Equal(t, want, got, "Survivor(%d, %d)", n, k)
		}
	}
}

func TestRecursiveIterativeAgree(t *testing.T) {
	t.Parallel()
	f := func(a, b uint8) bool {
		n := int(a)%200 + 1
		k := int(b)%20 + 1

		it, err1 := Survivor(n, k)
		rec, err2 := SurvivorRecursive(n, k)
		if err1 != nil || err2 != nil {
			t.Errorf("unexpected error: %v %v", err1, err2)
			return false
		}
		if it != rec {
			t.Errorf("Survivor(%d, %d): iterative %d != recursive %d", n, k, it, rec)
			return false
		}
		return true
	}

	cfg := &quick.Config{MaxCount: 200}
	if err := quick.Check(f, cfg); err != nil {
		t.Fatalf("Agreement property failed: %v", err)
	}
}
