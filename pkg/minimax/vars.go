package minimax

import "github.com/IlikeChooros/go-ttt/pkg/ttt"

// Best move for the AI using the default configuration, false if the
// board is full or decided. Safe for concurrent use, every call has its own engine.
func BestMove(b *ttt.Board) (ttt.Move, bool) {
	return NewEngine(DefaultConfig()).BestMove(b)
}

// Alpha-beta score of the board with the default configuration. Start with
// alpha = -ScoreInfinity and beta = ScoreInfinity for the exact value.
func Minimax(b *ttt.Board, maximizing bool, alpha, beta Score) Score {
	return NewEngine(DefaultConfig()).Minimax(b, maximizing, alpha, beta)
}
