package geocanon

// ambiguityChecker is implemented by Index backends that can detect
// colliding gids at build time (MemoryIndex does); backends with a
// unique-gid constraint at the storage layer have nothing to report.
type ambiguityChecker interface {
	Ambiguous() bool
}

// CheckReady implements the §6/§7 startup contract: the resolver
// refuses to start if the backing index has no version record, which
// signals the offline build pipeline never completed, or if the index
// itself contains gid collisions that make (population, gid)
// tie-breaking undefined. These are the only two places an
// index-integrity problem is fatal rather than surfaced as a NoMatch
// result.
func CheckReady(idx Index) error {
	if _, ok := idx.Version(); !ok {
		return ErrIndexMissing
	}
	if checker, ok := idx.(ambiguityChecker); ok && checker.Ambiguous() {
		return ErrAmbiguousIndex
	}
	return nil
}
