package bench

import (
	"math/rand"

	"github.com/IlikeChooros/go-ttt/pkg/minimax"
	"github.com/IlikeChooros/go-ttt/pkg/ttt"
)

// A player in the arena, it's given a non terminated position
type Agent interface {
	Name() string
	SelectMove(pos *ttt.Position) (ttt.Move, bool)
	// Independent copy, used by every arena worker
	Clone() Agent
}

// Plays with the minimax engine, for either side
type EngineAgent struct {
	engine *minimax.Engine
}

func NewEngineAgent(config *minimax.Config) *EngineAgent {
	return &EngineAgent{engine: minimax.NewEngine(config)}
}

func (a *EngineAgent) Name() string {
	if a.engine.Config().Pruning {
		return "alphabeta"
	}
	return "minimax"
}

// The engine always maximizes for ttt.AI, so the board is swapped when it
// plays the human's marks
func (a *EngineAgent) SelectMove(pos *ttt.Position) (ttt.Move, bool) {
	board := pos.Board()
	if pos.Turn() == ttt.Human {
		board = board.Swapped()
	}
	return a.engine.BestMove(&board)
}

func (a *EngineAgent) Clone() Agent {
	config := *a.engine.Config()
	return NewEngineAgent(&config)
}

// Picks a random legal move
type RandomAgent struct {
	rand *rand.Rand
}

func NewRandomAgent() *RandomAgent {
	return &RandomAgent{rand: rand.New(rand.NewSource(SeedGeneratorFn()))}
}

func (a *RandomAgent) Name() string {
	return "random"
}

func (a *RandomAgent) SelectMove(pos *ttt.Position) (ttt.Move, bool) {
	board := pos.Board()
	moves := board.GenerateMoves()
	if moves.Size == 0 {
		return ttt.NoMove, false
	}
	return moves.Moves[a.rand.Intn(int(moves.Size))], true
}

func (a *RandomAgent) Clone() Agent {
	return &RandomAgent{rand: rand.New(rand.NewSource(a.rand.Int63()))}
}
