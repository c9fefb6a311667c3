package geocanon

import "errors"

// ErrIndexMissing is returned at startup when the backing store or its
// version record is unavailable (§7 IndexMissing) — fatal, never
// surfaced from a query.
var ErrIndexMissing = errors.New("geocanon: index missing or version record absent")

// ErrAmbiguousIndex is returned only when tie-breaking by (population,
// gid) is itself undefined — two entities sharing a gid (§7
// AmbiguousWithoutResolution). This indicates a corrupt build, not a
// user-input problem.
var ErrAmbiguousIndex = errors.New("geocanon: candidates cannot be tie-broken, index is corrupt")

// Status describes what a scrubber did to reach a field's final value.
type Status string

const (
	// StatusOriginal means the input field matched directly.
	StatusOriginal Status = "O"
	// StatusModified means the input field was present but overridden.
	StatusModified Status = "M"
	// StatusDerived means the input field was missing and supplied by the resolver.
	StatusDerived Status = "D"
	// StatusAbsent means resolution failed for this field.
	StatusAbsent Status = ""
)
