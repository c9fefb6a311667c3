package geocanon

import "sort"

// Kind identifies which of the six GeoNames-derived entity variants a
// record belongs to.
type Kind uint8

const (
	KindCountry Kind = iota
	KindAdmin1
	KindAdmin2
	KindAdmd
	KindCity
	KindPostcode
)

// String returns the collection name used throughout find/count queries,
// matching the GeoNames feature-code family each kind represents.
func (k Kind) String() string {
	switch k {
	case KindCountry:
		return "countries"
	case KindAdmin1:
		return "admin1"
	case KindAdmin2:
		return "admin2"
	case KindAdmd:
		return "admind"
	case KindCity:
		return "cities"
	case KindPostcode:
		return "postcodes"
	default:
		return "unknown"
	}
}

// Entity is the single sum type backing Country, Admin1, Admin2, Admd and
// City records (§3). Fields that don't apply to a given Kind are left at
// their zero value; Postcode is modeled separately since it carries no
// gid and a disjoint set of fields (§3 invariant 5).
type Entity struct {
	Kind Kind

	GID         int64
	Name        string
	ASCIIName   string
	CountryCode string // ISO2; empty on Country itself, where ISO plays this role
	// Admin1/Admin2 carry the parent-admin codes (e.g. "06") for City,
	// Admin2 and Admd records; on an Admin1/Admin2 entity itself the
	// field instead holds that entity's OWN code, the value its
	// children reference — this is what lets resolveCity match a City's
	// Admin1 field directly against the State Resolver's winning
	// Admin1 entity without a separate code-to-code join table.
	Admin1 string
	Admin2 string

	Latitude   float64
	Longitude  float64
	Population int64

	FeatureClass string
	FeatureCode  string

	// Names is the set of normalized lookup keys for this entity: its
	// own primary name, asciiname, every name-expander variant, every
	// abbreviation, and every alternate-language name (§3 invariant 1).
	Names []string

	// NamesLang maps ISO 639-1 code -> ordered, deduplicated normalized
	// names in that language (§3 invariant 3).
	NamesLang map[string][]string

	// Abbr is the set of normalized abbreviations this entity is known by.
	Abbr []string

	// Admin1Names/Admin2Names are denormalized copies of the parent
	// Admin1/Admin2 entity's Names, attached to City/Admd/Admin2 records
	// so the scrubber can match a state token against a city document
	// directly (§4.C, grounded on pygeons' csc_find which filters the
	// cities collection by "admin1names" without a join).
	Admin1Names []string
	Admin2Names []string

	// Country-only fields.
	ISO        string
	ISO3       string
	Capital    int64
	Neighbours []string
	Languages  []string
}

// Postcode carries only countryCode, postCode, placeName, adminName —
// no gid (§3 invariant 5).
type Postcode struct {
	CountryCode string
	PostCode    string
	PlaceName   string
	AdminName   string
}

// HasName reports whether k is present in e.Names.
func (e Entity) HasName(k string) bool {
	return contains(e.Names, k)
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// dedupSorted returns the sorted, deduplicated union of the given string
// slices — the Go equivalent of pygeons' `sorted(set(x))` (derive.py's
// `_dedup`), used everywhere a names/abbr set is assembled.
func dedupSorted(lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, list := range lists {
		for _, s := range list {
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
