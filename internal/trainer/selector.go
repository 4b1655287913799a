package trainer

import "math/rand"

// pickFromPool draws one item proportionally to weight using a
// cumulative-weight roulette. excludeTerm avoids an immediate repeat but
// is ignored when filtering it out would empty the pool. Every call makes
// a fresh draw.
func pickFromPool(rng *rand.Rand, pool []weightedItem, excludeTerm string) *weightedItem {
	base := pool
	if excludeTerm != "" && len(pool) > 1 {
		filtered := make([]weightedItem, 0, len(pool))
		for _, candidate := range pool {
			if candidate.item.Term != excludeTerm {
				filtered = append(filtered, candidate)
			}
		}
		if len(filtered) > 0 {
			base = filtered
		}
	}

	if len(base) == 0 {
		return nil
	}

	total := 0
	for _, candidate := range base {
		total += candidate.weight
	}

	r := rng.Float64() * float64(total)
	for i := range base {
		r -= float64(base[i].weight)
		if r <= 0 {
			return &base[i]
		}
	}
	// Floating-point leftovers land on the last item.
	return &base[len(base)-1]
}
