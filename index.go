package geocanon

import "sort"

// Query is a conjunction of equality predicates over normalized fields,
// the abstract shape find/count operate on (§4.C). A zero-value field
// means "unfiltered" — every field this package ever queries with is
// either a normalized name/code (never legitimately empty) or is left
// unset entirely, so there is no ambiguity between "unset" and "match
// empty string".
type Query struct {
	CountryCode string // countryCode
	Admin1      string // parent-admin code (entity's Admin1 field), exact match
	Name        string // matches against Names
	Admin1Name  string // matches against Admin1Names ({countryCode, admin1names})
	Admin2Name  string // matches against Admin2Names ({countryCode, admin2names})
	Abbr        string // matches against Abbr
	Lang        string // paired with LangName to match NamesLang[Lang]
	LangName    string
	ISO         string // Country.ISO, exact match
	ISO3        string // Country.ISO3, exact match
}

// Index is the abstract Gazetteer Index contract (§4.C): read-only
// lookups over typed collections. Implementations may be backed by any
// persistent store provided these ordering and equality semantics hold.
type Index interface {
	// Find returns every entity of the given kind matching query,
	// ordered by (−population, gid) ascending gid.
	Find(kind Kind, q Query) []Entity
	// Count returns the cardinality Find(kind, q) would return, without
	// materializing the slice.
	Count(kind Kind, q Query) int
	// Get returns the entity with the given gid, or false if absent.
	Get(gid int64) (Entity, bool)
	// Postcodes returns every postcode matching countryCode and/or
	// placeName (either may be empty to mean unfiltered).
	Postcodes(countryCode, placeName string) []Postcode
	// Version returns the build-time version stamp and whether one was
	// ever set (§6 Versioning) — a zero/false pair means the build
	// pipeline never completed and the resolver must refuse to start.
	Version() (int64, bool)
}

// MemoryIndex is the in-process reference implementation of Index,
// generalizing the teacher's sorted-slice-plus-inverted-map nameIndex
// (geobed.go) from one collection to six typed ones.
type MemoryIndex struct {
	byKind map[Kind][]*Entity
	byGID  map[int64]*Entity

	nameIdx       map[Kind]map[string][]*Entity
	admin1NameIdx map[Kind]map[string][]*Entity
	admin2NameIdx map[Kind]map[string][]*Entity
	abbrIdx       map[Kind]map[string][]*Entity
	langIdx       map[Kind]map[string]map[string][]*Entity
	isoIdx        map[string]*Entity
	iso3Idx       map[string]*Entity

	postcodes []Postcode
	version   int64

	// ambiguousGIDs is set when two entities share a gid, meaning
	// (population, gid) tie-breaking cannot produce a total order —
	// a build-time corruption, surfaced by CheckReady via
	// ErrAmbiguousIndex rather than by any individual query.
	ambiguousGIDs bool
}

// NewMemoryIndex builds a MemoryIndex over entities and postcodes. The
// caller is responsible for having already run name expansion (§4.B)
// and normalization (§4.A) over every name/abbr/lang entry — the index
// itself performs no normalization, matching the teacher's pattern of
// building the nameIndex from names its caller already prepared.
func NewMemoryIndex(entities []Entity, postcodes []Postcode) *MemoryIndex {
	idx := &MemoryIndex{
		byKind:        make(map[Kind][]*Entity),
		byGID:         make(map[int64]*Entity, len(entities)),
		nameIdx:       make(map[Kind]map[string][]*Entity),
		admin1NameIdx: make(map[Kind]map[string][]*Entity),
		admin2NameIdx: make(map[Kind]map[string][]*Entity),
		abbrIdx:       make(map[Kind]map[string][]*Entity),
		langIdx:       make(map[Kind]map[string]map[string][]*Entity),
		isoIdx:        make(map[string]*Entity),
		iso3Idx:       make(map[string]*Entity),
		postcodes:     postcodes,
	}

	stored := make([]Entity, len(entities))
	copy(stored, entities)

	for i := range stored {
		e := &stored[i]
		idx.byKind[e.Kind] = append(idx.byKind[e.Kind], e)
		if _, collide := idx.byGID[e.GID]; collide {
			idx.ambiguousGIDs = true
		}
		idx.byGID[e.GID] = e

		if e.Kind == KindCountry {
			if e.ISO != "" {
				idx.isoIdx[e.ISO] = e
			}
			if e.ISO3 != "" {
				idx.iso3Idx[e.ISO3] = e
			}
		}

		for _, n := range e.Names {
			idx.index(idx.nameIdx, e.Kind, n, e)
		}
		for _, n := range e.Admin1Names {
			idx.index(idx.admin1NameIdx, e.Kind, n, e)
		}
		for _, n := range e.Admin2Names {
			idx.index(idx.admin2NameIdx, e.Kind, n, e)
		}
		for _, a := range e.Abbr {
			idx.index(idx.abbrIdx, e.Kind, a, e)
		}
		for lang, names := range e.NamesLang {
			if idx.langIdx[e.Kind] == nil {
				idx.langIdx[e.Kind] = make(map[string]map[string][]*Entity)
			}
			if idx.langIdx[e.Kind][lang] == nil {
				idx.langIdx[e.Kind][lang] = make(map[string][]*Entity)
			}
			for _, n := range names {
				idx.langIdx[e.Kind][lang][n] = append(idx.langIdx[e.Kind][lang][n], e)
			}
		}
	}

	for _, bucket := range idx.byKind {
		sortByPopulationThenGID(bucket)
	}

	return idx
}

func (idx *MemoryIndex) index(m map[Kind]map[string][]*Entity, kind Kind, key string, e *Entity) {
	if m[kind] == nil {
		m[kind] = make(map[string][]*Entity)
	}
	m[kind][key] = append(m[kind][key], e)
}

// candidateSet picks the narrowest index available for q, matching the
// teacher's approach of consulting nameIndex before falling back to a
// full scan.
func (idx *MemoryIndex) candidateSet(kind Kind, q Query) []*Entity {
	switch {
	case q.ISO != "":
		if e, ok := idx.isoIdx[q.ISO]; ok {
			return []*Entity{e}
		}
		return nil
	case q.ISO3 != "":
		if e, ok := idx.iso3Idx[q.ISO3]; ok {
			return []*Entity{e}
		}
		return nil
	case q.Name != "":
		return idx.nameIdx[kind][q.Name]
	case q.Admin1Name != "":
		return idx.admin1NameIdx[kind][q.Admin1Name]
	case q.Admin2Name != "":
		return idx.admin2NameIdx[kind][q.Admin2Name]
	case q.Abbr != "":
		return idx.abbrIdx[kind][q.Abbr]
	case q.Lang != "" && q.LangName != "":
		return idx.langIdx[kind][q.Lang][q.LangName]
	default:
		return idx.byKind[kind]
	}
}

func matches(e *Entity, q Query) bool {
	if q.CountryCode != "" && e.CountryCode != q.CountryCode {
		return false
	}
	if q.Admin1 != "" && e.Admin1 != q.Admin1 {
		return false
	}
	return true
}

// Find implements Index.
func (idx *MemoryIndex) Find(kind Kind, q Query) []Entity {
	var out []Entity
	for _, e := range idx.candidateSet(kind, q) {
		if matches(e, q) {
			out = append(out, *e)
		}
	}
	sortEntitiesByPopulationThenGID(out)
	return out
}

// Count implements Index.
func (idx *MemoryIndex) Count(kind Kind, q Query) int {
	n := 0
	for _, e := range idx.candidateSet(kind, q) {
		if matches(e, q) {
			n++
		}
	}
	return n
}

// Get implements Index.
func (idx *MemoryIndex) Get(gid int64) (Entity, bool) {
	e, ok := idx.byGID[gid]
	if !ok {
		return Entity{}, false
	}
	return *e, true
}

// SetVersion stamps idx with a build-completion version, normally
// called once by BuildIndex right before returning.
func (idx *MemoryIndex) SetVersion(v int64) {
	idx.version = v
}

// Version implements Index.
func (idx *MemoryIndex) Version() (int64, bool) {
	return idx.version, idx.version != 0
}

// Ambiguous reports whether two entities in the index share a gid,
// meaning (population, gid) tie-breaking cannot produce a total order
// (§7 AmbiguousWithoutResolution). CheckReady consults this through a
// narrow interface so Index implementations that can't collide (e.g. a
// backing store with a unique-gid constraint) don't need to provide it.
func (idx *MemoryIndex) Ambiguous() bool {
	return idx.ambiguousGIDs
}

// Postcodes implements Index.
func (idx *MemoryIndex) Postcodes(countryCode, placeName string) []Postcode {
	var out []Postcode
	for _, p := range idx.postcodes {
		if countryCode != "" && p.CountryCode != countryCode {
			continue
		}
		if placeName != "" && p.PlaceName != placeName {
			continue
		}
		out = append(out, p)
	}
	return out
}

func sortByPopulationThenGID(entities []*Entity) {
	sort.Slice(entities, func(i, j int) bool {
		if entities[i].Population != entities[j].Population {
			return entities[i].Population > entities[j].Population
		}
		return entities[i].GID < entities[j].GID
	})
}

func sortEntitiesByPopulationThenGID(entities []Entity) {
	sort.Slice(entities, func(i, j int) bool {
		if entities[i].Population != entities[j].Population {
			return entities[i].Population > entities[j].Population
		}
		return entities[i].GID < entities[j].GID
	})
}
