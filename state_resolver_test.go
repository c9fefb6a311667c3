package geocanon

import "testing"

func TestResolveStateByName(t *testing.T) {
	idx := buildFixtureIndex()
	cfg := NewConfig()
	e, count, ok, fuzzy := resolveState(idx, cfg, "New South Wales", "AU")
	if !ok || count != 1 || e.Abbr[0] != "nsw" || fuzzy {
		t.Fatalf("resolveState(New South Wales,AU) = %+v, %d, %v, %v", e, count, ok, fuzzy)
	}
}

func TestResolveStateByAbbr(t *testing.T) {
	idx := buildFixtureIndex()
	cfg := NewConfig()
	e, _, ok, _ := resolveState(idx, cfg, "WI", "US")
	if !ok || e.Name != "Wisconsin" {
		t.Fatalf("resolveState(WI,US) = %+v, %v", e, ok)
	}
}

func TestResolveStateNonEnglishAdmin2Fallback(t *testing.T) {
	// A dedicated minimal index: fixtureEntities' own IE Admin2 (Dublin)
	// has its "dublin" alias stripped by stripDublinAdmin2Alias to avoid
	// colliding with the Dublin city query, so exercise the ADM2
	// fallback path with a county name that patch never touches. IE is
	// not in the default non-English set, so the test enables it
	// explicitly.
	entities := []Entity{
		{Kind: KindCountry, GID: 2963597, Name: "Ireland", ASCIIName: "Ireland", ISO: "IE", ISO3: "IRL"},
		{Kind: KindAdmin2, GID: 7100001, Name: "Cork", ASCIIName: "Cork", CountryCode: "IE", Admin1: "M", Admin2: "04", Population: 542000},
	}
	idx := BuildIndex(entities, nil, 1)
	cfg := NewConfig(WithNonEnglishCountries("IE"))

	e, _, ok, _ := resolveState(idx, cfg, "Cork", "IE")
	if !ok {
		t.Fatal("expected IE (configured as non-English) fallback to admin2 to resolve Cork")
	}
	if e.Kind != KindAdmin2 || e.Name != "Cork" {
		t.Fatalf("resolveState(Cork,IE) = %+v, want the Cork admin2 entity", e)
	}
}

func TestResolveStateWithoutCountryFilter(t *testing.T) {
	idx := buildFixtureIndex()
	cfg := NewConfig()
	e, count, ok, _ := resolveState(idx, cfg, "Wisconsin", "")
	if !ok || count != 1 || e.CountryCode != "US" {
		t.Fatalf("resolveState(Wisconsin,) = %+v, %d, %v", e, count, ok)
	}
}

func TestResolveStateNotFound(t *testing.T) {
	idx := buildFixtureIndex()
	cfg := NewConfig()
	_, count, ok, _ := resolveState(idx, cfg, "Atlantis", "US")
	if ok || count != 0 {
		t.Fatalf("resolveState(Atlantis) = %d, %v, want not found", count, ok)
	}
}

func TestResolveStateEmptyToken(t *testing.T) {
	idx := buildFixtureIndex()
	cfg := NewConfig()
	_, _, ok, _ := resolveState(idx, cfg, "  ", "US")
	if ok {
		t.Error("resolveState with blank token should not resolve")
	}
}

func TestResolveUSOutlyingArea(t *testing.T) {
	idx := buildFixtureIndex()
	e, ok := resolveUSOutlyingArea(idx, "PR")
	if !ok || e.ISO != "PR" {
		t.Fatalf("resolveUSOutlyingArea(PR) = %+v, %v", e, ok)
	}

	_, ok = resolveUSOutlyingArea(idx, "WI")
	if ok {
		t.Error("WI is not a US outlying area code")
	}

	_, ok = resolveUSOutlyingArea(idx, "pr")
	if !ok {
		t.Error("resolveUSOutlyingArea should be case-insensitive")
	}
}

func TestResolveStateFuzzyFallbackRequiresOption(t *testing.T) {
	idx := buildFixtureIndex()

	_, _, ok, _ := resolveState(idx, NewConfig(), "Wisconson", "US")
	if ok {
		t.Fatal("resolveState(Wisconson,US) should not resolve without WithFuzzyDistance")
	}

	cfg := NewConfig(WithFuzzyDistance(2))
	e, count, ok, fuzzy := resolveState(idx, cfg, "Wisconson", "US")
	if !ok || count != 1 || e.Name != "Wisconsin" || !fuzzy {
		t.Fatalf("resolveState(Wisconson,US) with fuzzy enabled = %+v, %d, %v, %v", e, count, ok, fuzzy)
	}
}
