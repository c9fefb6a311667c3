package geocanon

// fixtureEntities returns a small but representative gazetteer covering
// every concrete scenario in spec.md §8's scenario table, used across
// the resolver and scrubber test suites. Names/abbr are given in raw
// display form; BuildIndex normalizes and expands them.
func fixtureEntities() []Entity {
	return []Entity{
		// Countries.
		{Kind: KindCountry, GID: 2077456, Name: "Australia", ASCIIName: "Australia", ISO: "AU", ISO3: "AUS", Population: 25000000},
		{Kind: KindCountry, GID: 2635167, Name: "United Kingdom", ASCIIName: "United Kingdom", ISO: "GB", ISO3: "GBR", Population: 67000000},
		{Kind: KindCountry, GID: 6252001, Name: "United States", ASCIIName: "United States", ISO: "US", ISO3: "USA", Population: 331000000,
			Names: []string{"united states of america", "usa"}},
		{Kind: KindCountry, GID: 2963597, Name: "Ireland", ASCIIName: "Ireland", ISO: "IE", ISO3: "IRL", Population: 5000000},
		{Kind: KindCountry, GID: 1861060, Name: "Japan", ASCIIName: "Japan", ISO: "JP", ISO3: "JPN", Population: 125000000},
		{Kind: KindCountry, GID: 2017370, Name: "Russia", ASCIIName: "Russia", ISO: "RU", ISO3: "RUS", Population: 144000000},
		{Kind: KindCountry, GID: 4566966, Name: "Puerto Rico", ASCIIName: "Puerto Rico", ISO: "PR", ISO3: "PRI", Population: 3200000},

		// Admin1.
		{Kind: KindAdmin1, GID: 2155400, Name: "New South Wales", ASCIIName: "New South Wales", CountryCode: "AU", Admin1: "02", Abbr: []string{"NSW"}, Population: 7000000},
		{Kind: KindAdmin1, GID: 5001836, Name: "Michigan", ASCIIName: "Michigan", CountryCode: "US", Admin1: "MI", Abbr: []string{"MI"}, Population: 10000000},
		{Kind: KindAdmin1, GID: 5279468, Name: "Wisconsin", ASCIIName: "Wisconsin", CountryCode: "US", Admin1: "WI", Abbr: []string{"WI"}, Population: 5800000},
		{Kind: KindAdmin1, GID: 2130037, Name: "Hokkaido", ASCIIName: "Hokkaido", CountryCode: "JP", Admin1: "01", Names: []string{"北海道"}, Population: 5300000},
		{Kind: KindAdmin1, GID: 5332921, Name: "California", ASCIIName: "California", CountryCode: "US", Admin1: "CA", Abbr: []string{"CA"}, Population: 39000000},
		{Kind: KindAdmin1, GID: 5128638, Name: "New York", ASCIIName: "New York", CountryCode: "US", Admin1: "NY", Abbr: []string{"NY"}, Population: 19000000},
		{Kind: KindAdmin1, GID: 524894, Name: "Moscow", ASCIIName: "Moscow", CountryCode: "RU", Admin1: "48", Population: 12600000},

		// Admin2.
		{Kind: KindAdmin2, GID: 7000001, Name: "County Dublin", ASCIIName: "County Dublin", CountryCode: "IE", Admin1: "L", Admin2: "07", Names: []string{"Dublin"}, Population: 1400000},

		// Cities.
		{Kind: KindCity, GID: 2147714, Name: "Sydney", ASCIIName: "Sydney", CountryCode: "AU", Admin1: "02", Population: 5000000, FeatureClass: "P", FeatureCode: "PPLA"},
		{Kind: KindCity, GID: 5007935, Name: "Clinton", ASCIIName: "Clinton", CountryCode: "US", Admin1: "MI", Names: []string{"Clinton Township"}, Population: 100000, FeatureClass: "P", FeatureCode: "PPL"},
		{Kind: KindCity, GID: 5280096, Name: "Saint Francis", ASCIIName: "Saint Francis", CountryCode: "US", Admin1: "WI", Population: 9000, FeatureClass: "P", FeatureCode: "PPL"},
		{Kind: KindCity, GID: 2128378, Name: "Sapporo", ASCIIName: "Sapporo", CountryCode: "JP", Admin1: "01", Names: []string{"札幌市"}, Population: 1950000, FeatureClass: "P", FeatureCode: "PPLA"},
		{Kind: KindCity, GID: 4568127, Name: "San Juan", ASCIIName: "San Juan", CountryCode: "PR", Population: 2700000, FeatureClass: "P", FeatureCode: "PPLC"},
		{Kind: KindCity, GID: 5326314, Name: "Cardiff-by-the-Sea", ASCIIName: "Cardiff-by-the-Sea", CountryCode: "US", Admin1: "CA", Population: 12000, FeatureClass: "P", FeatureCode: "PPL"},
		{Kind: KindCity, GID: 5038120, Name: "Annandale-on-Hudson", ASCIIName: "Annandale-on-Hudson", CountryCode: "US", Admin1: "NY", Population: 5000, FeatureClass: "P", FeatureCode: "PPL"},
		{Kind: KindCity, GID: 524901, Name: "Moscow", ASCIIName: "Moscow", CountryCode: "RU", Admin1: "48", Population: 12600000, FeatureClass: "P", FeatureCode: "PPLC"},
		{Kind: KindCity, GID: 7000002, Name: "Dublin", ASCIIName: "Dublin", CountryCode: "IE", Admin1: "L", Admin2: "07", Population: 1200000, FeatureClass: "P", FeatureCode: "PPLC"},

		// Ambiguous-namesake cities, used by resolver ambiguity tests.
		{Kind: KindCity, GID: 4887398, Name: "Springfield", ASCIIName: "Springfield", CountryCode: "US", Admin1: "IL", Population: 114000, FeatureClass: "P", FeatureCode: "PPLA2"},
		{Kind: KindCity, GID: 4409896, Name: "Springfield", ASCIIName: "Springfield", CountryCode: "US", Admin1: "MO", Population: 167000, FeatureClass: "P", FeatureCode: "PPLA2"},
	}
}

func buildFixtureIndex() *MemoryIndex {
	return BuildIndex(fixtureEntities(), nil, 1)
}

func fixtureResolver() *Resolver {
	return New(buildFixtureIndex())
}
