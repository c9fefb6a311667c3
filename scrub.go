package geocanon

import "strings"

// ScrubOptions tunes a single CscScrub call (§4.G.3/§4.G.7).
type ScrubOptions struct {
	// Verbose, when true, populates Result.Candidates with every
	// surviving candidate instead of just the winner.
	Verbose bool
}

// Result is the output record of CscScrub: {result, score, cc_status,
// st_status, count} (§4.G, §6 Query API).
type Result struct {
	// Place is the resolved entity, or nil on NoMatch.
	Place *Entity
	// CountryCode is the effective resolved ISO2, which may differ from
	// the input cc if it was overridden.
	CountryCode string
	// State is the resolved admin1/territory display name, feeding
	// back into CscScrub for the §8 idempotency property.
	State    string
	CCStatus Status
	StStatus Status
	Score    float64
	// Count is the cardinality of the final city candidate set, before
	// tie-breaking.
	Count int
	// Candidates holds every surviving candidate when Verbose is set.
	Candidates []Entity
}

// Found reports whether scrubbing produced a candidate.
func (r Result) Found() bool { return r.Place != nil }

// CscScrub implements the §4.G state machine: it orchestrates the
// Country, State and City resolvers, trying progressively looser
// combinations of trusting/overriding each input field, and reports a
// confidence score plus per-field status. It never returns a Go error:
// user-input problems surface as Result{Place: nil} per §7.
func CscScrub(idx Index, cfg *Config, city, state, cc string, opts ScrubOptions) Result {
	log := cfg.logger
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	cc = strings.TrimSpace(cc)

	if city == "" && state == "" && cc == "" {
		log.Debugw("csc scrub: malformed query, all fields empty")
		return Result{}
	}

	var ccCandidate string
	var ccStatus Status = StatusAbsent

	if cc != "" {
		country, count, ok, fuzzy := resolveCountry(idx, cfg, cc)
		if ok {
			ccCandidate = country.ISO
			switch {
			case fuzzy:
				ccStatus = StatusModified
			case strings.EqualFold(ccCandidate, strings.ToUpper(cc)):
				ccStatus = StatusOriginal
			default:
				ccStatus = StatusModified
			}
			if count > 1 {
				log.Debugw("csc scrub: country candidate set ambiguous", "cc", cc, "count", count)
			}
		}
	}

	// Territory special case (§4.E): a state token that is itself a US
	// outlying-area code (e.g. "PR") overrides cc directly.
	var stStatus Status = StatusAbsent
	var stateEntity Entity
	var stateOK bool
	var admin1 string
	var stateName string

	if state != "" {
		if terr, ok := resolveUSOutlyingArea(idx, state); ok {
			if !strings.EqualFold(terr.ISO, strings.ToUpper(cc)) {
				ccStatus = StatusModified
			} else {
				ccStatus = StatusOriginal
			}
			ccCandidate = terr.ISO
			stStatus = StatusOriginal
			stateOK = false // no ADM1 entity backs a territory-as-country match
			admin1 = ""
			stateName = state
		}
	}

	if stStatus == StatusAbsent && state != "" {
		var count int
		var fuzzy bool
		stateEntity, count, stateOK, fuzzy = resolveState(idx, cfg, state, ccCandidate)

		// Step 3 override: the cc-filtered search found nothing, but the
		// state name is unambiguous in some other country — trust it and
		// overturn cc instead of giving up.
		if !stateOK && ccCandidate != "" {
			global, globalCount, globalOK, globalFuzzy := resolveState(idx, cfg, state, "")
			if globalOK && globalCount == 1 && global.CountryCode != "" && global.CountryCode != ccCandidate {
				ccCandidate = global.CountryCode
				ccStatus = StatusModified
				stateEntity, count, stateOK, fuzzy = global, globalCount, true, globalFuzzy
			}
		}

		if stateOK {
			if fuzzy {
				stStatus = StatusModified
			} else {
				stStatus = StatusOriginal
			}
			admin1 = stateEntity.Admin1
			stateName = stateEntity.Name
			if count > 1 {
				log.Debugw("csc scrub: state candidate set ambiguous", "state", state, "count", count)
			}
			if ccCandidate == "" && stateEntity.CountryCode != "" {
				ccCandidate = stateEntity.CountryCode
			}
		}
	}

	// Step 4: resolve city, using the tightest filter first.
	cityEntity, cityCount, cityOK, _ := resolveCity(idx, cfg, city, ccCandidate, admin1)
	if !cityOK && admin1 != "" {
		cityEntity, cityCount, cityOK, _ = resolveCity(idx, cfg, city, ccCandidate, "")
		if cityOK {
			stStatus = StatusModified
		}
	}

	// Step 5: global fallback, dropping cc entirely.
	if !cityOK {
		cityEntity, cityCount, cityOK, _ = resolveCity(idx, cfg, city, "", "")
		if cityOK {
			ccCandidate = cityEntity.CountryCode
			ccStatus = StatusModified
			if state != "" {
				stStatus = StatusModified
			}
		}
	}

	if !cityOK {
		log.Debugw("csc scrub: no candidate survived", "city", city, "state", state, "cc", cc)
		return Result{}
	}

	if ccCandidate == "" {
		ccCandidate = cityEntity.CountryCode
	}

	// State was missing but the winning city uniquely implies one
	// (§4.G step 3's "city uniquely implies [a state]").
	if state == "" && stStatus == StatusAbsent && cityEntity.Admin1 != "" {
		if m := idx.Find(KindAdmin1, Query{CountryCode: ccCandidate, Admin1: cityEntity.Admin1}); len(m) == 1 {
			stateName = m[0].Name
			stStatus = StatusDerived
		}
	}

	// Derive statuses left unset because the corresponding input field
	// was empty but the resolver supplied a value anyway (null -> D).
	if cc == "" && ccCandidate != "" && ccStatus == StatusAbsent {
		ccStatus = StatusDerived
	}

	score := 1.0
	for _, s := range []Status{ccStatus, stStatus} {
		switch s {
		case StatusModified:
			score -= 0.1
		case StatusDerived:
			score -= 0.2
		}
	}
	if score < 0 {
		score = 0
	}

	result := Result{
		Place:       &cityEntity,
		CountryCode: ccCandidate,
		State:       stateName,
		CCStatus:    ccStatus,
		StStatus:    stStatus,
		Score:       score,
		Count:       cityCount,
	}
	if opts.Verbose {
		result.Candidates = findCityCandidates(idx, cityEntity.Kind, Normalize(city), ccCandidate, admin1)
	}
	return result
}
