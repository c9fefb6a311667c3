package geocanon

import (
	"strings"

	"go.uber.org/zap"
)

// resolveCountry implements §4.D resolve_country. The returned int is
// the size of the winning candidate set — the diagnostic flag spec.md
// calls for on ambiguity is surfaced by the caller checking count > 1;
// a debug line is still emitted here either way. The final bool reports
// whether the winner came from the bounded Levenshtein fallback (§4.G
// addition) rather than a rule-based match.
func resolveCountry(idx Index, cfg *Config, token string) (Entity, int, bool, bool) {
	log := cfg.logger
	if strings.TrimSpace(token) == "" {
		return Entity{}, 0, false, false
	}

	k := Normalize(token)
	upper := strings.ToUpper(strings.TrimSpace(token))

	if m := idx.Find(KindCountry, Query{ISO: upper}); len(m) == 1 {
		log.Debugw("country resolved by iso", "token", token, "iso", upper)
		return m[0], 1, true, false
	}
	if m := idx.Find(KindCountry, Query{ISO3: upper}); len(m) == 1 {
		log.Debugw("country resolved by iso3", "token", token, "iso3", upper)
		return m[0], 1, true, false
	}
	if m := idx.Find(KindCountry, Query{Name: k}); len(m) > 0 {
		return pickCountry(m, log, "names"), len(m), true, false
	}
	for _, lang := range commonLangs {
		if m := idx.Find(KindCountry, Query{Lang: lang, LangName: k}); len(m) > 0 {
			return pickCountry(m, log, "names_lang"), len(m), true, false
		}
	}

	if cfg.fuzzyDistance > 0 {
		if e, ok := fuzzyBest(k, idx.Find(KindCountry, Query{}), cfg.fuzzyDistance); ok {
			log.Debugw("country resolved by fuzzy fallback", "token", token, "winner", e.ISO)
			return e, 1, true, true
		}
	}

	log.Debugw("country not resolved", "token", token)
	return Entity{}, 0, false, false
}

// commonLangs bounds the "∃ lang" search in step 6 to languages the
// gazetteer is actually expected to carry alternate names in, avoiding
// an unbounded scan over every NamesLang key in the index.
var commonLangs = []string{"en", "fr", "de", "es", "pt", "ru", "ja", "zh", "ar"}

func pickCountry(candidates []Entity, log *zap.SugaredLogger, via string) Entity {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Population > best.Population {
			best = c
		}
	}
	if len(candidates) > 1 {
		log.Debugw("ambiguous country match, picked largest population", "via", via, "winner", best.ISO, "candidates", len(candidates))
	}
	return best
}
