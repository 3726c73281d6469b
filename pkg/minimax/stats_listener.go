package minimax

import "github.com/IlikeChooros/go-ttt/pkg/ttt"

// Score of a single root move
type RootLine struct {
	Move  ttt.Move
	Score Score
}

type ListenerStats struct {
	Nodes     uint64
	Cutoffs   uint64
	CacheHits uint64
	TimeMs    int
	// Root moves scored so far, in row-major order
	Lines []RootLine
}

// Listener function callback, receives current search statistics
type ListenerFunc func(ListenerStats)

type StatsListener struct {
	// called after a root move is scored
	onRootMove ListenerFunc

	// called once, when the search is done
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

// Attach new 'root move scored' callback. With root-parallel search the
// callbacks are invoked after all workers are done, still in row-major order
func (listener *StatsListener) OnRootMove(onRootMove ListenerFunc) *StatsListener {
	listener.onRootMove = onRootMove
	return listener
}

// Attach 'on search end' callback
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invoke(f ListenerFunc, e *Engine, lines []RootLine) {
	if f != nil {
		f(e.listenerStats(lines))
	}
}
