package pages

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleIndices_DistinctAndBounded(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for count := 0; count <= 12; count++ {
		for n := 0; n <= 8; n++ {
			got := SampleIndices(rng, count, n)

			want := count
			if want < 0 {
				want = 0
			}
			if want > n {
				want = n
			}
			if count <= 0 || n <= 0 {
				want = 0
			}
			require.Len(t, got, want, "count=%d n=%d", count, n)

			seen := make(map[int]struct{}, len(got))
			for _, idx := range got {
				assert.GreaterOrEqual(t, idx, 0)
				assert.Less(t, idx, n)
				_, dup := seen[idx]
				assert.False(t, dup, "duplicate index %d for count=%d n=%d", idx, count, n)
				seen[idx] = struct{}{}
			}
		}
	}
}

func TestSampleIndices_CountAboveCatalogSelectsAll(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))

	got := SampleIndices(rng, 10, 6)
	require.Len(t, got, 6)

	seen := make(map[int]struct{})
	for _, idx := range got {
		seen[idx] = struct{}{}
	}
	assert.Len(t, seen, 6, "all catalog positions selected exactly once")
}

func TestSampleIndices_NonPositiveCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	assert.Empty(t, SampleIndices(rng, 0, 6))
	assert.Empty(t, SampleIndices(rng, -1, 6))
	assert.Empty(t, SampleIndices(rng, 3, 0))
}

// scripted replays fixed draws, including duplicates the rejection loop
// must skip.
type scripted struct {
	values []int
	pos    int
}

func (s *scripted) IntN(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

func TestSampleIndices_RejectsDuplicateDraws(t *testing.T) {
	picker := &scripted{values: []int{1, 1, 4, 4, 4, 5}}

	got := SampleIndices(picker, 3, 6)
	assert.Equal(t, []int{1, 4, 5}, got, "duplicates skipped, draw order kept")
}

func TestSampleIndices_DrawOrderPreserved(t *testing.T) {
	picker := &scripted{values: []int{5, 0, 3}}

	got := SampleIndices(picker, 3, 6)
	assert.Equal(t, []int{5, 0, 3}, got)
}
