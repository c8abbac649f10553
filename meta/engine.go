package meta

import (
	"sync/atomic"

	"github.com/duarterr/miniregex/backtrack"
	"github.com/duarterr/miniregex/literal"
	"github.com/duarterr/miniregex/prefilter"
	"github.com/duarterr/miniregex/syntax"
)

// Engine searches text with one compiled program.
//
// An Engine is immutable after construction apart from its statistics,
// which are updated atomically; it is safe for concurrent use.
type Engine struct {
	prog      *syntax.Prog
	matcher   *backtrack.Matcher
	prefilter prefilter.Prefilter
	strategy  Strategy
	config    Config
	stats     Stats
}

// Stats tracks search statistics.
type Stats struct {
	// Searches counts calls to Find and IsMatch.
	Searches uint64

	// PrefilterCandidates counts candidate offsets reported by the
	// prefilter.
	PrefilterCandidates uint64

	// PrefilterConfirmed counts candidates the matcher accepted.
	PrefilterConfirmed uint64

	// PrefilterAbandoned counts searches that dropped the prefilter
	// midway because too few candidates matched.
	PrefilterAbandoned uint64
}

// Compile compiles pattern with the limits of config and builds an engine.
//
// Example:
//
//	engine, err := meta.Compile(`\d+`, meta.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	pos := engine.Find([]byte("abc 123")) // 4
func Compile(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	prog, err := syntax.Compile(pattern, config.Limits())
	if err != nil {
		return nil, err
	}
	return NewEngine(prog, config)
}

// NewEngine builds an engine for an already compiled program. The limits
// of config are not re-applied to prog.
func NewEngine(prog *syntax.Prog, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		prog:    prog,
		matcher: backtrack.New(prog),
		config:  config,
	}
	e.strategy, e.prefilter = e.selectStrategy()
	return e, nil
}

func (e *Engine) selectStrategy() (Strategy, prefilter.Prefilter) {
	if e.matcher.IsStartAnchored() {
		return UseAnchored, nil
	}
	if !e.config.EnablePrefilter {
		return UseBacktrack, nil
	}

	extractor := literal.New(literal.Config{
		MaxLiterals:       e.config.MaxPrefilterLiterals,
		MaxClassExpansion: e.config.MaxClassExpansion,
	})
	pf := prefilter.NewBuilder(extractor.ExtractPrefixes(e.prog)).Build()
	switch {
	case pf == nil:
		return UseBacktrack, nil
	case pf.IsComplete():
		return UseLiteral, pf
	default:
		return UsePrefilter, pf
	}
}

// Find returns the offset of the leftmost match in text, or -1.
func (e *Engine) Find(text []byte) int {
	atomic.AddUint64(&e.stats.Searches, 1)

	switch e.strategy {
	case UseLiteral:
		return e.prefilter.Find(text, 0)
	case UsePrefilter:
		return e.findPrefilter(text)
	default:
		return e.matcher.Find(text)
	}
}

// IsMatch reports whether text contains a match.
func (e *Engine) IsMatch(text []byte) bool {
	return e.Find(text) >= 0
}

// findPrefilter confirms prefilter candidates with the matcher. Offsets
// skipped by the prefilter cannot start a match, so when the tracker gives
// up the plain scan resumes where the candidates stopped.
func (e *Engine) findPrefilter(text []byte) int {
	tracker := prefilter.NewTracker(e.prefilter)
	start := 0
	for {
		pos := tracker.Find(text, start)
		if pos < 0 {
			break
		}
		atomic.AddUint64(&e.stats.PrefilterCandidates, 1)
		if e.matcher.MatchAt(text, pos) {
			tracker.ConfirmMatch()
			atomic.AddUint64(&e.stats.PrefilterConfirmed, 1)
			return pos
		}
		start = pos + 1
	}

	if tracker.IsActive() {
		return -1
	}
	atomic.AddUint64(&e.stats.PrefilterAbandoned, 1)
	return e.matcher.FindFrom(text, start)
}

// Prog returns the compiled program.
func (e *Engine) Prog() *syntax.Prog {
	return e.prog
}

// Strategy returns the search strategy selected for this engine.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.config
}

// Prefilter returns the prefilter in use, or nil.
func (e *Engine) Prefilter() prefilter.Prefilter {
	return e.prefilter
}

// Stats returns a snapshot of the search statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		Searches:            atomic.LoadUint64(&e.stats.Searches),
		PrefilterCandidates: atomic.LoadUint64(&e.stats.PrefilterCandidates),
		PrefilterConfirmed:  atomic.LoadUint64(&e.stats.PrefilterConfirmed),
		PrefilterAbandoned:  atomic.LoadUint64(&e.stats.PrefilterAbandoned),
	}
}

// ResetStats resets the search statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.Searches, 0)
	atomic.StoreUint64(&e.stats.PrefilterCandidates, 0)
	atomic.StoreUint64(&e.stats.PrefilterConfirmed, 0)
	atomic.StoreUint64(&e.stats.PrefilterAbandoned, 0)
}
