package geocanon

// patch is a declarative per-country index fixup applied once, after
// the base index and all name-expansion variants are built (§4.C
// addition, §9 design note — these were build-pipeline JS scripts in
// the original and are reproduced here as ordered Go-native rules, not
// resolver-time logic).
type patch struct {
	description string
	apply       func(entities []Entity) []Entity
}

// defaultPatches is the ordered list applied by BuildIndex.
var defaultPatches = []patch{
	{description: "removeMoscowAsAdmin1", apply: removeMoscowAsAdmin1},
	{description: "addRepOfIrelandAlias", apply: addRepOfIrelandAlias},
	{description: "stripDublinAdmin2Alias", apply: stripDublinAdmin2Alias},
	{description: "addRussianCyrillicAlias", apply: addRussianCyrillicAlias},
}

// removeMoscowAsAdmin1 drops Moscow as an ADM1 candidate for RU: it is
// a federal city, not the administrative division containing itself.
func removeMoscowAsAdmin1(entities []Entity) []Entity {
	out := make([]Entity, 0, len(entities))
	for _, e := range entities {
		if e.Kind == KindAdmin1 && e.CountryCode == "RU" && Normalize(e.Name) == "moscow" {
			continue
		}
		out = append(out, e)
	}
	return out
}

// addRepOfIrelandAlias adds "rep of ireland" as a country alias for IE.
func addRepOfIrelandAlias(entities []Entity) []Entity {
	for i := range entities {
		e := &entities[i]
		if e.Kind == KindCountry && e.ISO == "IE" {
			e.Names = dedupSorted(e.Names, []string{"rep of ireland"})
		}
	}
	return entities
}

// stripDublinAdmin2Alias removes the Dublin ADM2 alias that collides
// with the Dublin city name, so a bare "Dublin" city query doesn't also
// surface the containing ADM2 division as a same-scoring candidate. An
// ADM2 whose own primary name is "Dublin" keeps it (§3 invariant 1).
func stripDublinAdmin2Alias(entities []Entity) []Entity {
	for i := range entities {
		e := &entities[i]
		if e.Kind == KindAdmin2 && e.CountryCode == "IE" && Normalize(e.Name) != "dublin" {
			e.Names = removeName(e.Names, "dublin")
		}
	}
	return entities
}

// addRussianCyrillicAlias adds "рф" (Cyrillic abbreviation) as a
// country alias for RU.
func addRussianCyrillicAlias(entities []Entity) []Entity {
	for i := range entities {
		e := &entities[i]
		if e.Kind == KindCountry && e.ISO == "RU" {
			e.Names = dedupSorted(e.Names, []string{"рф"})
		}
	}
	return entities
}

func removeName(names []string, victim string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != victim {
			out = append(out, n)
		}
	}
	return out
}

// applyPatches runs every patch in order.
func applyPatches(entities []Entity, patches []patch) []Entity {
	for _, p := range patches {
		entities = p.apply(entities)
	}
	return entities
}
