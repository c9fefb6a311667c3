package geocanon

// resolveCity implements §4.F resolve_city. admin1Code may be empty to
// loosen the search to the country-only filter. The returned int is
// the size of the winning candidate set, before tie-breaking (§4.G
// step 6's "count"). The final bool reports whether the winner came
// from the bounded Levenshtein fallback (§4.G addition) rather than a
// rule-based match.
func resolveCity(idx Index, cfg *Config, token, countryCode, admin1Code string) (Entity, int, bool, bool) {
	log := cfg.logger
	k := Normalize(token)
	if k == "" {
		return Entity{}, 0, false, false
	}

	kind := KindCity
	candidates := findCityCandidates(idx, kind, k, countryCode, admin1Code)

	if len(candidates) == 0 && countryCode != "" && cfg.isNonEnglishSpeaking(countryCode) {
		kind = KindAdmd
		candidates = findCityCandidates(idx, kind, k, countryCode, admin1Code)
		if len(candidates) == 0 {
			kind = KindAdmin2
			candidates = findCityCandidates(idx, kind, k, countryCode, admin1Code)
		}
	}

	if len(candidates) > 0 {
		winner := candidates[0]
		if len(candidates) > 1 {
			log.Debugw("ambiguous city match, picked largest population", "token", token, "winner", winner.Name, "candidates", len(candidates))
		}
		return winner, len(candidates), true, false
	}

	if cfg.fuzzyDistance > 0 {
		pool := fuzzyCityPool(idx, KindCity, countryCode, admin1Code)
		if countryCode != "" && cfg.isNonEnglishSpeaking(countryCode) {
			pool = append(pool, fuzzyCityPool(idx, KindAdmd, countryCode, admin1Code)...)
			pool = append(pool, fuzzyCityPool(idx, KindAdmin2, countryCode, admin1Code)...)
		}
		if e, ok := fuzzyBest(k, pool, cfg.fuzzyDistance); ok {
			log.Debugw("city resolved by fuzzy fallback", "token", token, "countryCode", countryCode, "winner", e.Name)
			return e, 1, true, true
		}
	}

	log.Debugw("city not resolved", "token", token, "countryCode", countryCode, "admin1", admin1Code)
	return Entity{}, 0, false, false
}

// findCityCandidates tries the most-specific-to-least-specific filter
// cascade from §4.F step 2: {countryCode, admin1, names} -> {countryCode,
// names} -> {names}.
func findCityCandidates(idx Index, kind Kind, k, countryCode, admin1Code string) []Entity {
	if countryCode != "" && admin1Code != "" {
		if m := idx.Find(kind, Query{CountryCode: countryCode, Admin1: admin1Code, Name: k}); len(m) > 0 {
			return m
		}
	}
	if countryCode != "" {
		if m := idx.Find(kind, Query{CountryCode: countryCode, Name: k}); len(m) > 0 {
			return m
		}
	}
	return idx.Find(kind, Query{Name: k})
}

// fuzzyCityPool narrows the Levenshtein scan to the same countryCode/
// admin1Code filter resolveCity would have used for an exact match,
// falling back to an unfiltered scan of kind when no filter applies —
// keeping the fallback bounded to a country's cities rather than the
// whole gazetteer whenever a country is known.
func fuzzyCityPool(idx Index, kind Kind, countryCode, admin1Code string) []Entity {
	if countryCode != "" && admin1Code != "" {
		if m := idx.Find(kind, Query{CountryCode: countryCode, Admin1: admin1Code}); len(m) > 0 {
			return m
		}
	}
	if countryCode != "" {
		return idx.Find(kind, Query{CountryCode: countryCode})
	}
	return idx.Find(kind, Query{})
}
