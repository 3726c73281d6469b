package minimax

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Counters collected during the search, shared by the root workers
type SearchStats struct {
	nodes     atomic.Uint64
	cutoffs   atomic.Uint64
	cacheHits atomic.Uint64
	start     time.Time
	end       time.Time
}

// Number of positions visited in the last search
func (s *SearchStats) Nodes() uint64 {
	return s.nodes.Load()
}

// Number of alpha-beta cutoffs in the last search
func (s *SearchStats) Cutoffs() uint64 {
	return s.cutoffs.Load()
}

// Number of positions decided by the transposition table
func (s *SearchStats) CacheHits() uint64 {
	return s.cacheHits.Load()
}

// Duration of the last search, or time since it started if it's still running
func (s *SearchStats) Elapsed() time.Duration {
	if s.end.IsZero() {
		return time.Since(s.start)
	}
	return s.end.Sub(s.start)
}

func (s *SearchStats) stop() {
	s.end = time.Now()
}

func (s *SearchStats) reset() {
	s.nodes.Store(0)
	s.cutoffs.Store(0)
	s.cacheHits.Store(0)
	s.start = time.Now()
	s.end = time.Time{}
}

// Exhaustive minimax engine. The AI is always the maximizing side, to search
// for the human's side use Board.Swapped.
//
// An Engine is not safe for concurrent use, with Config.NThreads > 1 it spawns
// its own workers for the root moves.
type Engine struct {
	stats    *SearchStats
	config   *Config
	listener StatsListener
	cache    *Cache
	logger   zerolog.Logger
}

func NewEngine(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	e := &Engine{
		stats:    &SearchStats{},
		listener: NewStatsListener(),
		logger:   zerolog.Nop(),
	}
	e.SetConfig(config)
	return e
}

// Worker sharing the counters and config, but with its own cache
func (e *Engine) worker() *Engine {
	w := &Engine{
		stats:  e.stats,
		config: e.config,
		logger: zerolog.Nop(),
	}
	if e.config.Cache {
		w.cache = NewCache()
	}
	return w
}

func (e *Engine) SetConfig(config *Config) {
	e.config = config
	if config.Cache && e.cache == nil {
		e.cache = NewCache()
	} else if !config.Cache {
		e.cache = nil
	}
}

func (e *Engine) Config() *Config {
	return e.config
}

func (e *Engine) SetListener(listener StatsListener) {
	e.listener = listener
}

// Logger for the per-search debug event, silent by default
func (e *Engine) SetLogger(logger zerolog.Logger) {
	e.logger = logger
}

func (e *Engine) ResetListener() {
	e.listener.OnRootMove(nil).OnStop(nil)
}

func (e *Engine) Stats() *SearchStats {
	return e.stats
}

// Transposition table, nil if disabled
func (e *Engine) Cache() *Cache {
	return e.cache
}

func (e *Engine) listenerStats(lines []RootLine) ListenerStats {
	return ListenerStats{
		Nodes:     e.stats.Nodes(),
		Cutoffs:   e.stats.Cutoffs(),
		CacheHits: e.stats.CacheHits(),
		TimeMs:    int(e.stats.Elapsed().Milliseconds()),
		Lines:     lines,
	}
}

func (e *Engine) String() string {
	return fmt.Sprintf("Engine={Config:%v, Stats:{nodes=%d, cutoffs=%d, cache_hits=%d}}",
		*e.config, e.stats.Nodes(), e.stats.Cutoffs(), e.stats.CacheHits())
}
