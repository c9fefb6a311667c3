package geocanon

import "github.com/agnivade/levenshtein"

// fuzzyBest scans candidates' Names for the entry closest to k by edit
// distance, returning the owning entity if the best distance is within
// maxDistance. This is the opt-in fallback referenced in SPEC_FULL §4.G:
// it only proposes a candidate; the resolvers report a fuzzy win to the
// scrubber, which marks a fuzzy-resolved country or state as Modified —
// grounded on the teacher's fuzzyMatch/maxFuzzyDistance design in
// geobed.go.
func fuzzyBest(k string, candidates []Entity, maxDistance int) (Entity, bool) {
	if maxDistance <= 0 {
		return Entity{}, false
	}

	best := maxDistance + 1
	var bestEntity Entity
	found := false

	for _, e := range candidates {
		for _, n := range e.Names {
			d := levenshtein.ComputeDistance(k, n)
			if d < best {
				best = d
				bestEntity = e
				found = true
			}
		}
	}

	if !found || best > maxDistance {
		return Entity{}, false
	}
	return bestEntity, true
}
