package geocanon

import "sort"

// BuildIndex constructs the in-memory reference index from already-
// parsed entities (the ingest pipeline that produces these from
// GeoNames TSV dumps is an out-of-scope external collaborator, §1).
// It normalizes every name/abbr/lang field, runs the Name Expander
// (§4.B) over every City/Admin1/Admin2/Admd entity, denormalizes parent
// Admin1/Admin2 name sets onto their children, and finally applies the
// declarative per-country patch rules (§4.C addition) before handing
// the result to NewMemoryIndex. version is stamped as the build's
// version record (§6 Versioning); callers building a real index pass
// the build timestamp, tests may pass any non-zero value.
func BuildIndex(entities []Entity, postcodes []Postcode, version int64) *MemoryIndex {
	built := make([]Entity, len(entities))
	copy(built, entities)

	sort.Slice(built, func(i, j int) bool { return built[i].GID < built[j].GID })

	claimed := make(map[string]map[string]bool) // "cc|admin1" -> claimed normalized names

	for i := range built {
		e := &built[i]
		normalizeEntityScalars(e)

		key := e.CountryCode + "|" + e.Admin1
		if claimed[key] == nil {
			claimed[key] = make(map[string]bool)
		}
		for _, n := range e.Names {
			claimed[key][n] = true
		}

		if isExpandable(e.Kind) {
			clash := func(barename string) bool {
				return claimed[key][Normalize(barename)]
			}
			variants := ExpandNames(e.CountryCode, e.Admin1, e.Name, clash)
			var normalizedVariants []string
			for _, v := range variants {
				normalizedVariants = append(normalizedVariants, Normalize(v))
			}
			e.Names = dedupSorted(e.Names, normalizedVariants)
			for _, n := range normalizedVariants {
				claimed[key][n] = true
			}
		}
	}

	denormalizeParentNames(built)

	built = applyPatches(built, defaultPatches)

	idx := NewMemoryIndex(built, postcodes)
	idx.SetVersion(version)
	return idx
}

func isExpandable(k Kind) bool {
	return k == KindCity || k == KindAdmin1 || k == KindAdmin2 || k == KindAdmd
}

// normalizeEntityScalars normalizes Name/ASCIIName/Names/Abbr/NamesLang
// in place, folding the primary name and asciiname (invariant 1), every
// abbreviation and every alternate-language name into Names.
func normalizeEntityScalars(e *Entity) {
	primary := Normalize(e.Name)
	ascii := Normalize(e.ASCIIName)

	rawNames := make([]string, 0, len(e.Names)+2)
	rawNames = append(rawNames, primary, ascii)
	for _, n := range e.Names {
		rawNames = append(rawNames, Normalize(n))
	}
	e.Names = dedupSorted(rawNames)

	if len(e.Abbr) > 0 {
		rawAbbr := make([]string, 0, len(e.Abbr))
		for _, a := range e.Abbr {
			rawAbbr = append(rawAbbr, Normalize(a))
		}
		e.Abbr = dedupSorted(rawAbbr)
		e.Names = dedupSorted(e.Names, e.Abbr)
	}

	if len(e.NamesLang) > 0 {
		normalized := make(map[string][]string, len(e.NamesLang))
		for lang, names := range e.NamesLang {
			normalized[lang] = dedupPreserveOrder(normalizeAll(names))
			e.Names = dedupSorted(e.Names, normalized[lang])
		}
		e.NamesLang = normalized
	}
}

func normalizeAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = Normalize(n)
	}
	return out
}

func dedupPreserveOrder(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// denormalizeParentNames copies each Admin1/Admin2 entity's own Names
// onto its children's Admin1Names/Admin2Names fields, so the City
// Resolver and CSC Scrubber can match a state/county token against a
// city document directly (model.go's Entity.Admin1Names doc comment).
func denormalizeParentNames(entities []Entity) {
	admin1Names := make(map[string][]string) // "cc|code" -> names
	admin2Names := make(map[string][]string)

	for _, e := range entities {
		switch e.Kind {
		case KindAdmin1:
			admin1Names[e.CountryCode+"|"+e.Admin1] = e.Names
		case KindAdmin2:
			admin2Names[e.CountryCode+"|"+e.Admin2] = e.Names
		}
	}

	for i := range entities {
		e := &entities[i]
		switch e.Kind {
		case KindCity, KindAdmd:
			e.Admin1Names = admin1Names[e.CountryCode+"|"+e.Admin1]
			e.Admin2Names = admin2Names[e.CountryCode+"|"+e.Admin2]
		case KindAdmin2:
			e.Admin1Names = admin1Names[e.CountryCode+"|"+e.Admin1]
		}
	}
}
