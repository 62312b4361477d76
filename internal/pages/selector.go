package pages

// IndexPicker supplies uniform random integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it directly; tests inject scripted pickers for
// deterministic draws.
type IndexPicker interface {
	IntN(n int) int
}

// SampleIndices draws min(count, n) distinct indices uniformly from [0, n)
// without replacement, returned in draw order.
//
// Uniqueness is enforced by rejection sampling against the set of indices
// already drawn. The index space here is small and fixed, so this terminates
// in expected O(k) draws and avoids shuffling the whole catalog when only a
// few entries are wanted.
//
// count <= 0 or n <= 0 yields an empty result.
func SampleIndices(picker IndexPicker, count, n int) []int {
	if count <= 0 || n <= 0 {
		return nil
	}
	k := count
	if k > n {
		k = n
	}

	drawn := make(map[int]struct{}, k)
	order := make([]int, 0, k)
	for len(order) < k {
		idx := picker.IntN(n)
		if _, dup := drawn[idx]; dup {
			continue
		}
		drawn[idx] = struct{}{}
		order = append(order, idx)
	}
	return order
}
