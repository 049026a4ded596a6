package dedup

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// SeenSet tracks which source messages have already been inspected, by their
// opaque message identifier. Scoped to one monitoring run - the source
// synthesizes ids per scan mode (position-based for history, timestamp-based
// for live), so they are not stable across restarts and persisting them would
// only pin stale ids.
type SeenSet struct {
	seen mapset.Set[string]
}

func NewSeenSet() *SeenSet {
	return &SeenSet{
		//thread-safe set: live polling and a manual rescan may overlap
		seen: mapset.NewSet[string](),
	}
}

// HasProcessed reports whether a message id was already inspected, whether it
// produced a record or was rejected.
func (s *SeenSet) HasProcessed(messageID string) bool {
	return s.seen.Contains(messageID)
}

// MarkProcessed records a message id as inspected.
func (s *SeenSet) MarkProcessed(messageID string) {
	s.seen.Add(messageID)
}

// Len returns the number of inspected messages this run.
func (s *SeenSet) Len() int {
	return s.seen.Cardinality()
}
