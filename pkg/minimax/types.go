package minimax

import "strconv"

// Game-theoretic value of a position from the AI's perspective
type Score int8

const (
	ScoreLoss Score = -1
	ScoreDraw Score = 0
	ScoreWin  Score = 1

	// Outside of the reachable range, used as the initial alpha-beta window
	ScoreInfinity Score = 2
)

func (s Score) String() string {
	switch s {
	case ScoreWin:
		return "win"
	case ScoreDraw:
		return "draw"
	case ScoreLoss:
		return "loss"
	case ScoreInfinity:
		return "+inf"
	case -ScoreInfinity:
		return "-inf"
	}
	return strconv.Itoa(int(s))
}
