package geocanon

import "testing"

func TestResolverCscScrub(t *testing.T) {
	r := fixtureResolver()
	got := r.CscScrub("Sydney", "NSW", "AU", ScrubOptions{})
	if !got.Found() || got.Place.Name != "Sydney" {
		t.Fatalf("Resolver.CscScrub(Sydney,NSW,AU) = %+v", got)
	}
}

func TestResolverCountryInfo(t *testing.T) {
	r := fixtureResolver()
	e, ok := r.CountryInfo("usa")
	if !ok || e.ISO != "US" {
		t.Fatalf("Resolver.CountryInfo(usa) = %+v, %v", e, ok)
	}

	_, ok = r.CountryInfo("nowhereland")
	if ok {
		t.Error("Resolver.CountryInfo(nowhereland) should not resolve")
	}
}

func TestResolverNorm(t *testing.T) {
	r := fixtureResolver()

	if got := r.Norm("country", "", "au"); got != "Australia" {
		t.Errorf("Norm(country,,au) = %q, want Australia", got)
	}
	if got := r.Norm("admin1", "US", "WI"); got != "Wisconsin" {
		t.Errorf("Norm(admin1,US,WI) = %q, want Wisconsin", got)
	}
	if got := r.Norm("admin2", "IE", "Dublin"); got != "" {
		t.Errorf("Norm(admin2,IE,Dublin) = %q, want empty (alias stripped by patch)", got)
	}
	if got := r.Norm("country", "", "nowhereland"); got != "" {
		t.Errorf("Norm(country,,nowhereland) = %q, want empty", got)
	}
}

func TestResolverFindCities(t *testing.T) {
	r := fixtureResolver()
	got := r.FindCities("Springfield")
	if len(got) != 2 {
		t.Fatalf("FindCities(Springfield) = %+v, want 2 results", got)
	}
	if got[0].Admin1 != "MO" {
		t.Errorf("expected higher-population Springfield (MO) first, got %+v", got[0])
	}
}

func TestNewResolverAppliesOptions(t *testing.T) {
	idx := buildFixtureIndex()

	plain := New(idx)
	got := plain.CscScrub("Sydny", "NSW", "AU", ScrubOptions{})
	if got.Found() {
		t.Fatalf("CscScrub(Sydny,...) without WithFuzzyDistance should not resolve, got %+v", got)
	}

	fuzzy := New(idx, WithFuzzyDistance(2))
	got = fuzzy.CscScrub("Sydny", "NSW", "AU", ScrubOptions{})
	if !got.Found() || got.Place.Name != "Sydney" {
		t.Fatalf("CscScrub(Sydny,...) with WithFuzzyDistance(2) = %+v, want Sydney resolved", got)
	}
}
