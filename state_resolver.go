package geocanon

import "strings"

// usOutlyingAreas are US territory ISO2 codes that can surface as the
// "state" field instead of a true ADM1 (San Juan, PR — scenario #8).
// When a state token resolves to one of these as a Country record, the
// resolver yields it as the effective countryCode per §4.E's special
// case.
var usOutlyingAreas = map[string]bool{
	"PR": true, "VI": true, "GU": true, "AS": true, "MP": true,
}

// resolveState implements §4.E resolve_state. countryCode may be empty
// to search without a country filter (step 5). The returned int is the
// size of the winning candidate set, before tie-breaking. The final
// bool reports whether the winner came from the bounded Levenshtein
// fallback (§4.G addition) rather than a rule-based match.
func resolveState(idx Index, cfg *Config, token, countryCode string) (Entity, int, bool, bool) {
	log := cfg.logger
	k := Normalize(token)
	if k == "" {
		return Entity{}, 0, false, false
	}

	q := Query{CountryCode: countryCode, Name: k}
	candidates := idx.Find(KindAdmin1, q)
	if len(candidates) == 0 {
		candidates = idx.Find(KindAdmin1, Query{CountryCode: countryCode, Abbr: k})
	}
	if len(candidates) == 0 && countryCode != "" && cfg.isNonEnglishSpeaking(countryCode) {
		candidates = idx.Find(KindAdmin2, Query{CountryCode: countryCode, Name: k})
	}

	if len(candidates) > 0 {
		winner := candidates[0] // already ordered (-population, gid)
		if len(candidates) > 1 {
			log.Debugw("ambiguous state match, picked largest population", "token", token, "winner", winner.Name, "candidates", len(candidates))
		}
		return winner, len(candidates), true, false
	}

	if cfg.fuzzyDistance > 0 {
		pool := idx.Find(KindAdmin1, Query{CountryCode: countryCode})
		if countryCode != "" && cfg.isNonEnglishSpeaking(countryCode) {
			pool = append(pool, idx.Find(KindAdmin2, Query{CountryCode: countryCode})...)
		}
		if e, ok := fuzzyBest(k, pool, cfg.fuzzyDistance); ok {
			log.Debugw("state resolved by fuzzy fallback", "token", token, "countryCode", countryCode, "winner", e.Name)
			return e, 1, true, true
		}
	}

	log.Debugw("state not resolved", "token", token, "countryCode", countryCode)
	return Entity{}, 0, false, false
}

// resolveUSOutlyingArea checks whether token itself names a US outlying
// area as a Country record (e.g. "PR"), supporting §4.E's territory
// special case.
func resolveUSOutlyingArea(idx Index, token string) (Entity, bool) {
	upper := strings.ToUpper(strings.TrimSpace(token))
	if !usOutlyingAreas[upper] {
		return Entity{}, false
	}
	m := idx.Find(KindCountry, Query{ISO: upper})
	if len(m) != 1 {
		return Entity{}, false
	}
	return m[0], true
}
