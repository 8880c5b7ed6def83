package pairand

import (
	"encoding/binary"
	"math/rand"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/slices"
)

// randomValues generates n random values below limit.
func randomValues(r *rand.Rand, n int, limit uint64) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = r.Uint64() % limit
	}
	return out
}

// clusteredValues generates n values sharing a common high-bit prefix, the
// regime where the filter implementation shines.
func clusteredValues(r *rand.Rand, n int, prefix uint64) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = prefix | r.Uint64()%256
	}
	return out
}

// fingerprint returns a stable digest of the value multiset, independent of
// element order. Failing property cases are reported with it so a case can
// be identified across runs.
func fingerprint(values []uint64) uint64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	h := xxh3.New()
	var buf [8]byte
	for _, v := range sorted {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	return h.Sum64()
}
