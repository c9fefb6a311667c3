// Package geocanon resolves noisy (city, state, country) triples against
// a GeoNames-derived gazetteer.
//
// It answers the question "what place did the user mean?" given free-form,
// possibly abbreviated, possibly misspelled text in any of several
// languages, and reports a confidence score plus a per-field status
// (Original/Modified/Derived) describing what it had to change to get
// there.
//
// The resolver is a pure function of (query, index). The index itself —
// the gazetteer built from GeoNames dumps — is an external concern;
// [Index] is the abstract contract a backing store must satisfy, and
// [NewMemoryIndex] is an in-process reference implementation suitable for
// tests and small deployments.
package geocanon
