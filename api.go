package geocanon

import "strings"

// Resolver is the public facade over an Index: CscScrub, CountryInfo,
// Norm and FindCities (§6 Query API), mirroring the teacher's GeoBed
// object — one long-lived value built once over a loaded index, then
// queried repeatedly and concurrently (§5: safe for concurrent read
// access once built).
type Resolver struct {
	idx Index
	cfg *Config
}

// New builds a Resolver over idx, configured by opts.
func New(idx Index, opts ...Option) *Resolver {
	return &Resolver{idx: idx, cfg: NewConfig(opts...)}
}

// CscScrub resolves a noisy (city, state, cc) triple (§4.G).
func (r *Resolver) CscScrub(city, state, cc string, opts ScrubOptions) Result {
	return CscScrub(r.idx, r.cfg, city, state, cc, opts)
}

// CountryInfo matches a country token to its canonical record (§4.D).
func (r *Resolver) CountryInfo(token string) (Entity, bool) {
	e, _, ok, _ := resolveCountry(r.idx, r.cfg, token)
	return e, ok
}

// Norm normalizes an admin1/admin2/country token to its canonical name
// within a country (§6 Query API norm).
func (r *Resolver) Norm(field, cc, value string) string {
	switch strings.ToLower(field) {
	case "country":
		if e, ok := r.CountryInfo(value); ok {
			return e.Name
		}
	case "admin1":
		if e, _, ok, _ := resolveState(r.idx, r.cfg, value, cc); ok {
			return e.Name
		}
	case "admin2":
		if m := r.idx.Find(KindAdmin2, Query{CountryCode: cc, Name: Normalize(value)}); len(m) > 0 {
			return m[0].Name
		}
	}
	return ""
}

// FindCities returns every city matching name, ordered by population
// descending (§6 Query API find_cities).
func (r *Resolver) FindCities(name string) []Entity {
	return r.idx.Find(KindCity, Query{Name: Normalize(name)})
}
