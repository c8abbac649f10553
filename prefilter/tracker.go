package prefilter

// Tracker wraps a Prefilter for one search and retires it when it stops
// paying off.
//
// A prefilter that keeps reporting candidates the matcher rejects costs a
// call per candidate on top of the matcher's own work. After a warmup, the
// tracker compares confirmed matches to candidates every CheckInterval
// candidates and turns itself off below MinEfficiency. Once off, Find
// returns -1 and the caller scans the rest of the text without it.
//
// A Tracker is not safe for concurrent use; create one per search.
//
// Example usage:
//
//	tracker := prefilter.NewTracker(pf)
//	for start := 0; tracker.IsActive(); {
//	    pos := tracker.Find(haystack, start)
//	    if pos < 0 {
//	        break
//	    }
//	    if matcher.MatchAt(haystack, pos) {
//	        tracker.ConfirmMatch()
//	        return pos
//	    }
//	    start = pos + 1
//	}
type Tracker struct {
	inner  Prefilter
	config TrackerConfig

	candidates     uint64
	confirms       uint64
	lastCheckpoint uint64
	active         bool
}

// TrackerConfig tunes when a tracker gives up on its prefilter.
type TrackerConfig struct {
	// CheckInterval is the number of candidates between checks. Default: 64.
	CheckInterval uint64

	// MinEfficiency is the lowest acceptable confirms/candidates ratio.
	// Default: 0.1.
	MinEfficiency float64

	// WarmupPeriod is the number of candidates seen before the first
	// check. Default: 128.
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinEfficiency: 0.1,
		WarmupPeriod:  128,
	}
}

// NewTracker wraps inner with the default configuration.
// It returns nil if inner is nil.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig wraps inner with config. It returns nil if inner is nil.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}
	return &Tracker{inner: inner, config: config, active: true}
}

// Find returns the next candidate at or after start, or -1 when there is
// none or the tracker has retired the prefilter.
func (t *Tracker) Find(haystack []byte, start int) int {
	if !t.active {
		return -1
	}
	pos := t.inner.Find(haystack, start)
	if pos >= 0 {
		t.candidates++
		t.check()
	}
	return pos
}

// ConfirmMatch records that the last candidate was a match.
func (t *Tracker) ConfirmMatch() {
	t.confirms++
}

// IsActive reports whether the prefilter is still in use.
func (t *Tracker) IsActive() bool {
	return t.active
}

// Inner returns the wrapped prefilter.
func (t *Tracker) Inner() Prefilter {
	return t.inner
}

// Stats returns the candidate and confirm counts and their ratio.
func (t *Tracker) Stats() (candidates, confirms uint64, efficiency float64) {
	if t.candidates > 0 {
		efficiency = float64(t.confirms) / float64(t.candidates)
	}
	return t.candidates, t.confirms, efficiency
}

func (t *Tracker) check() {
	if t.candidates < t.config.WarmupPeriod {
		return
	}
	if t.candidates-t.lastCheckpoint < t.config.CheckInterval {
		return
	}
	t.lastCheckpoint = t.candidates
	if float64(t.confirms)/float64(t.candidates) < t.config.MinEfficiency {
		t.active = false
	}
}
