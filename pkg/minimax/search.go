package minimax

import (
	"fmt"
	"time"

	"github.com/IlikeChooros/go-ttt/pkg/ttt"
	"golang.org/x/sync/errgroup"
)

type SearchResult struct {
	BestMove ttt.Move
	Score    Score
	// False if there was no legal move, BestMove is ttt.NoMove then
	Found bool
	// Every root move with its score, in row-major order
	Lines     []RootLine
	Nodes     uint64
	Cutoffs   uint64
	CacheHits uint64
	Elapsed   time.Duration
}

func (r SearchResult) String() string {
	if !r.Found {
		return "bestmove none"
	}
	return fmt.Sprintf("bestmove %v score %v nodes %d cutoffs %d cachehits %d time %s lines %v",
		r.BestMove, r.Score, r.Nodes, r.Cutoffs, r.CacheHits, r.Elapsed, r.Lines)
}

// Score of a terminal board: win if the AI has a line, loss if the human has one,
// draw if the board is full. Returns false for boards still in progress.
func Evaluate(b *ttt.Board) (Score, bool) {
	if winner, ok := b.CheckWinner(); ok {
		if winner == ttt.AI {
			return ScoreWin, true
		}
		return ScoreLoss, true
	}
	if b.IsFull() {
		return ScoreDraw, true
	}
	return 0, false
}

// Alpha-beta search of the board, the AI moves when maximizing is true.
// The board is used as the working board, but is restored before returning.
func (e *Engine) Minimax(b *ttt.Board, maximizing bool, alpha, beta Score) Score {
	return e.minimax(b, maximizing, alpha, beta)
}

// Best move for the AI, false if the board is full or already decided
func (e *Engine) BestMove(b *ttt.Board) (ttt.Move, bool) {
	result := e.Search(b)
	return result.BestMove, result.Found
}

// Scores every root move and picks the first one (in row-major order)
// with the greatest score. The caller's board is never modified.
func (e *Engine) Search(b *ttt.Board) SearchResult {
	e.stats.reset()
	if e.cache != nil {
		e.cache.Clear()
	}

	root := *b
	// Decided boards have nothing to search, even with empty squares left
	moves := ttt.MoveList{}
	if _, terminal := Evaluate(&root); !terminal {
		moves = root.GenerateMoves()
	}
	lines := make([]RootLine, moves.Size)
	for i, mv := range moves.Slice() {
		lines[i].Move = mv
	}

	if e.config.NThreads > 1 && moves.Size > 1 {
		e.searchRootParallel(&root, lines)
	} else {
		for i := range lines {
			lines[i].Score = e.scoreRootMove(&root, lines[i].Move)
			e.listener.invoke(e.listener.onRootMove, e, lines[:i+1])
		}
	}

	result := SearchResult{
		BestMove: ttt.NoMove,
		Score:    -ScoreInfinity,
		Lines:    lines,
	}
	for _, line := range lines {
		if line.Score > result.Score {
			result.Score = line.Score
			result.BestMove = line.Move
			result.Found = true
		}
	}
	if !result.Found {
		result.Score = 0
		if score, ok := Evaluate(&root); ok {
			result.Score = score
		}
	}

	e.stats.stop()
	result.Nodes = e.stats.Nodes()
	result.Cutoffs = e.stats.Cutoffs()
	result.CacheHits = e.stats.CacheHits()
	result.Elapsed = e.stats.Elapsed()
	e.listener.invoke(e.listener.onStop, e, lines)

	if ev := e.logger.Debug(); ev.Enabled() {
		ev.Str("board", b.Notation()).
			Stringer("best", result.BestMove).
			Stringer("score", result.Score).
			Uint64("nodes", result.Nodes).
			Uint64("cutoffs", result.Cutoffs).
			Uint64("cache_hits", result.CacheHits).
			Dur("elapsed", result.Elapsed).
			Msg("search done")
	}

	return result
}

// Every worker gets its own copy of the root, so no board is shared
func (e *Engine) searchRootParallel(root *ttt.Board, lines []RootLine) {
	var g errgroup.Group
	g.SetLimit(e.config.NThreads)
	for i := range lines {
		board := *root
		g.Go(func() error {
			lines[i].Score = e.worker().scoreRootMove(&board, lines[i].Move)
			return nil
		})
	}
	_ = g.Wait()

	for i := range lines {
		e.listener.invoke(e.listener.onRootMove, e, lines[:i+1])
	}
}

// The AI plays 'mv', then the human moves next
func (e *Engine) scoreRootMove(b *ttt.Board, mv ttt.Move) Score {
	return e.child(b, mv, ttt.AI, false, -ScoreInfinity, ScoreInfinity)
}

// Places the mark, searches the resulting position and releases the square
// on every exit path
func (e *Engine) child(b *ttt.Board, mv ttt.Move, side ttt.Cell, maximizing bool, alpha, beta Score) Score {
	b.Set(mv, side)
	defer b.Set(mv, ttt.Empty)
	return e.minimax(b, maximizing, alpha, beta)
}

func (e *Engine) minimax(b *ttt.Board, maximizing bool, alpha, beta Score) Score {
	e.stats.nodes.Add(1)
	if score, ok := Evaluate(b); ok {
		return score
	}

	if e.cache != nil {
		if score, ok := e.cache.probe(b, maximizing, alpha, beta); ok {
			e.stats.cacheHits.Add(1)
			return score
		}
	}

	alphaOrig, betaOrig := alpha, beta
	var best Score
	if maximizing {
		best = -ScoreInfinity
		for mv := range b.LegalMoves() {
			score := e.child(b, mv, ttt.AI, false, alpha, beta)
			best = max(best, score)
			alpha = max(alpha, score)
			if e.config.Pruning && beta <= alpha {
				e.stats.cutoffs.Add(1)
				break
			}
		}
	} else {
		best = ScoreInfinity
		for mv := range b.LegalMoves() {
			score := e.child(b, mv, ttt.Human, true, alpha, beta)
			best = min(best, score)
			beta = min(beta, score)
			if e.config.Pruning && beta <= alpha {
				e.stats.cutoffs.Add(1)
				break
			}
		}
	}

	if e.cache != nil {
		e.cache.store(b, maximizing, best, alphaOrig, betaOrig)
	}
	return best
}
