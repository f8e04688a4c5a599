package dataset

import (
	"sync/atomic"
)

// current is the snapshot the API serves from. It is stored behind an
// atomic pointer so that a dataset replacement swaps the whole view at
// once, requests never see a half-updated dataset.
var current atomic.Pointer[Snapshot]

// Activate makes a snapshot the one served by the API.
func Activate(s *Snapshot) {
	current.Store(s)
}

// Current returns the active snapshot. The second return value is
// false when no dataset has been loaded, which callers must report as
// the "data could not be loaded" state, not as an empty result.
func Current() (*Snapshot, bool) {
	s := current.Load()
	return s, s != nil
}
