package bench

import (
	"context"
	"math/rand"
	"sync"

	"github.com/IlikeChooros/go-ttt/pkg/ttt"
	"github.com/rs/zerolog"
)

/*
Arena benchmark subpackage, plays a series of games between two agents,
for example the alpha-beta engine against a random mover. Every game starts
from the same position, the agent moving first is chosen at random.
*/

type VersusArena struct {
	VersusArenaStats
	Player1  Agent
	Player2  Agent
	NGames   uint
	NThreads uint
	Position *ttt.Position
	wg       sync.WaitGroup
	done     chan struct{}
	ctx      context.Context
	logger   zerolog.Logger
}

func NewVersusArena(position *ttt.Position, player1, player2 Agent) *VersusArena {
	if position == nil {
		position = ttt.NewPosition()
	}
	return &VersusArena{
		Player1:  player1,
		Player2:  player2,
		NGames:   100,
		NThreads: 2,
		Position: position,
		ctx:      context.Background(),
		logger:   zerolog.Nop(),
	}
}

// Cancelling the context stops the workers, the unfinished games aren't counted
func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

// Logger for the start and end events, silent by default
func (va *VersusArena) SetLogger(logger zerolog.Logger) *VersusArena {
	va.logger = logger
	return va
}

func (va *VersusArena) Setup(nGames uint, nThreads uint) {
	va.NGames = nGames
	va.NThreads = max(nThreads, 1)
}

// Blocks until every worker is done and the listener got the summary
func (va *VersusArena) Wait() {
	if va.done != nil {
		<-va.done
	}
}

func (va *VersusArena) Summary() VersusSummaryInfo {
	return VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          int(va.NThreads),
		P1Name:           va.Player1.Name(),
		P2Name:           va.Player2.Name(),
	}
}

func (va *VersusArena) Start(listener ListenerLike) {
	if listener == nil {
		listener = NopListener{}
	}

	// Start equally distributed work between worker threads
	va.NThreads = max(va.NThreads, 1)
	va.done = make(chan struct{})
	listener.OnStart()
	va.logger.Debug().
		Uint("games", va.NGames).
		Uint("workers", va.NThreads).
		Str("p1", va.Player1.Name()).
		Str("p2", va.Player2.Name()).
		Msg("arena started")

	nGames := va.NGames / va.NThreads
	rest := va.NGames % va.NThreads
	for i := range va.NThreads {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}
		va.wg.Add(1)

		// Always use a clone, agents keep their own search state
		p1 := va.Player1.Clone()
		p2 := va.Player2.Clone()
		l := listener.Clone()
		l.SetRow(int(i))
		go va.worker(int(i), int(nGames+delta), l, p1, p2)
	}

	go func() {
		va.wg.Wait()
		summary := va.Summary()
		va.logger.Debug().
			Int("games", summary.TotalGames).
			Int("p1_wins", summary.P1Wins).
			Int("p2_wins", summary.P2Wins).
			Int("draws", summary.Draws).
			Msg("arena finished")
		listener.Summary(summary)
		listener.OnEnd()
		close(va.done)
	}()
}

func (va *VersusArena) worker(id, nGames int, listener ListenerLike, p1, p2 Agent) {
	defer va.wg.Done()

	r := rand.New(rand.NewSource(SeedGeneratorFn() + int64(id)))
	local := VersusArenaStats{}
	info := VersusWorkerInfo{
		WorkerID:  id,
		NGames:    nGames,
		P1Name:    p1.Name(),
		P2Name:    p2.Name(),
		Start:     va.Position.Board(),
		StartTurn: va.Position.Turn(),
	}

	for i := range nGames {
		p1First := r.Intn(2) == 0
		first, second := p1, p2
		if !p1First {
			first, second = p2, p1
		}

		info.FinishedGames = i
		info.P1First = p1First
		outcome, gamePos, ok := va.playGame(first, second, listener, info)
		if !ok {
			break
		}

		result := toAgentResult(outcome, p1First)
		va.add(result, outcome)
		local.add(result, outcome)

		info.Moves = gamePos.Moves()
		info.GameMoveNum = len(info.Moves)
		info.Board = gamePos.Board()
		info.Outcome = gamePos.Outcome()
		info.Result = result
		info.FinishedGames = i + 1
		info.P1Wins = local.P1Wins()
		info.P2Wins = local.P2Wins()
		info.Draws = local.Draws()
		info.FirstToMoveWins = local.FirstToMoveWins()
		info.SecondToMoveWins = local.SecondToMoveWins()
		listener.OnFinishedGame(info)
	}

	listener.OnFinishedWork(info)
}

// Returns false if the arena's context was cancelled during the game
func (va *VersusArena) playGame(first, second Agent, listener ListenerLike, info VersusWorkerInfo) (GameOutcome, *ttt.Position, bool) {
	// Fresh history, so the game's moves start from the arena's position
	gamePos := ttt.FromBoard(info.Start, info.StartTurn)
	agents := [2]Agent{first, second}

	for ply := 0; !gamePos.IsTerminated(); ply++ {
		select {
		case <-va.ctx.Done():
			return GameOutcome{}, gamePos, false
		default:
			// continue
		}

		mv, ok := agents[ply%2].SelectMove(gamePos)
		if !ok {
			break
		}
		gamePos.MakeMove(mv)

		info.Moves = gamePos.Moves()
		info.GameMoveNum = len(info.Moves)
		listener.OnMoveMade(info)
	}

	return computeOutcome(gamePos, info.StartTurn), gamePos, true
}
