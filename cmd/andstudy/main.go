// Command andstudy exercises the pairwise AND maximizer.
//
// Direct mode takes the values on the command line:
//
//	andstudy 4 8 12 16
//
// Study mode (-rand) generates random inputs and cross-checks the scan and
// filter implementations against the quadratic brute-force definition:
//
//	andstudy -rand 4096 -trials 100 -seed 1
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/ParasPidurkar/Datastructure-and-Algorithm/bitutil"
	"github.com/ParasPidurkar/Datastructure-and-Algorithm/pairand"
)

func main() {
	var (
		randN  = flag.Int("rand", 0, "Study mode: number of random values per trial")
		trials = flag.Int("trials", 20, "Study mode: number of trials")
		width  = flag.Int("width", 32, "Bit width of generated values")
		seed   = flag.Int64("seed", time.Now().UnixNano(), "RNG seed")
	)
	flag.Parse()

	if *randN > 0 {
		runStudy(*randN, *trials, *width, *seed)
		return
	}

	values := parseValues(flag.Args())
	if len(values) == 0 {
		fail("no values given; pass integers as arguments or use -rand")
	}

	result, err := pairand.Max(values)
	if err != nil {
		fail(err.Error())
	}
	fmt.Printf("Maximum AND value: %d (binary %s)\n", result, bitutil.FormatBinary(result))
}

func runStudy(n, trials, width int, seed int64) {
	if width < 1 || width > 63 {
		fail("width must be in [1, 63]")
	}
	if trials < 1 {
		fail("trials must be > 0")
	}

	fmt.Printf("Study: %s values per trial, %s trials, width %d, seed %d\n",
		humanize.Comma(int64(n)), humanize.Comma(int64(trials)), width, seed)

	r := rand.New(rand.NewSource(seed))
	limit := uint64(1) << uint(width)
	bar := progressbar.Default(int64(trials))

	var scanBest uint64
	for trial := 0; trial < trials; trial++ {
		values := make([]uint64, n)
		for i := range values {
			values[i] = r.Uint64() % limit
		}

		scan, err := pairand.MaxBitsUsing(pairand.ScanImpl, values, width)
		if err != nil {
			fail(fmt.Sprintf("trial %d: scan: %v", trial, err))
		}
		filter, err := pairand.MaxBitsUsing(pairand.FilterImpl, values, width)
		if err != nil {
			fail(fmt.Sprintf("trial %d: filter: %v", trial, err))
		}
		if scan != filter {
			fail(fmt.Sprintf("trial %d: scan %d != filter %d (seed %d)", trial, scan, filter, seed))
		}

		if n <= 8192 {
			brute := bruteMax(values)
			if scan != brute {
				fail(fmt.Sprintf("trial %d: greedy %d != brute force %d (seed %d)", trial, scan, brute, seed))
			}
		}

		if scan > scanBest {
			scanBest = scan
		}
		_ = bar.Add(1)
	}

	fmt.Printf("OK: %s trials agreed; best AND seen: %d (binary %s)\n",
		humanize.Comma(int64(trials)), scanBest, bitutil.FormatBinary(scanBest))
}

func bruteMax(values []uint64) uint64 {
	best := uint64(0)
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if v := values[i] & values[j]; v > best {
				best = v
			}
		}
	}
	return best
}

func parseValues(args []string) []uint64 {
	values := make([]uint64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			fail(fmt.Sprintf("invalid value %q: %v", arg, err))
		}
		values = append(values, v)
	}
	return values
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, "error:", msg)
	os.Exit(1)
}
