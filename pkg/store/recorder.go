package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/IlikeChooros/go-ttt/pkg/bench"
	"github.com/rs/zerolog"
)

// GameRecorder is an arena listener that turns every finished game into a
// GameRow. Rows are buffered and flushed to the writer in batches; all
// clones share the buffer and the writer.
type GameRecorder struct {
	bench.NopListener
	shared *recorderState
}

type recorderState struct {
	mu        sync.Mutex
	writer    *BatchWriter
	pending   []GameRow
	batchSize int
	recorded  int
	err       error
	now       func() time.Time
	logger    zerolog.Logger
}

func NewGameRecorder(writer *BatchWriter, batchSize int) *GameRecorder {
	return &GameRecorder{
		shared: &recorderState{
			writer:    writer,
			batchSize: max(batchSize, 1),
			now:       time.Now,
			logger:    zerolog.Nop(),
		},
	}
}

// Number of games handed to the writer so far
func (g *GameRecorder) Recorded() int {
	g.shared.mu.Lock()
	defer g.shared.mu.Unlock()
	return g.shared.recorded
}

// First write error, recording stops after it
func (g *GameRecorder) Err() error {
	g.shared.mu.Lock()
	defer g.shared.mu.Unlock()
	return g.shared.err
}

// Logger for flushes and write errors, silent by default
func (g *GameRecorder) SetLogger(logger zerolog.Logger) *GameRecorder {
	g.shared.mu.Lock()
	defer g.shared.mu.Unlock()
	g.shared.logger = logger
	return g
}

func (g *GameRecorder) Clone() bench.ListenerLike {
	return &GameRecorder{shared: g.shared}
}

func (g *GameRecorder) OnFinishedGame(info bench.VersusWorkerInfo) {
	row := NewGameRow(info, g.shared.now())

	s := g.shared
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	s.pending = append(s.pending, row)
	if len(s.pending) >= s.batchSize {
		s.flush()
	}
}

// Writes what's left once every worker is done
func (g *GameRecorder) OnEnd() {
	s := g.shared
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.flush()
	}
}

func (s *recorderState) flush() {
	if len(s.pending) == 0 {
		return
	}
	if err := s.writer.WriteRows(s.pending); err != nil {
		s.err = err
		s.logger.Error().Err(err).Int("rows", len(s.pending)).Msg("failed to record games")
		return
	}
	s.recorded += len(s.pending)
	s.logger.Debug().Int("rows", len(s.pending)).Int("recorded", s.recorded).Msg("games recorded")
	s.pending = s.pending[:0]
}

func NewGameRow(info bench.VersusWorkerInfo, at time.Time) GameRow {
	return GameRow{
		GameID:     fmt.Sprintf("w%d-g%d-%d", info.WorkerID, info.FinishedGames, at.UnixNano()),
		Worker:     int32(info.WorkerID),
		Player1:    info.P1Name,
		Player2:    info.P2Name,
		P1First:    info.P1First,
		Start:      info.Start.Notation(),
		StartTurn:  info.StartTurn.String(),
		Moves:      EncodeMoves(info.Moves),
		Plies:      int32(len(info.Moves)),
		FinalBoard: info.Board.Notation(),
		Outcome:    info.Outcome.String(),
		Winner:     info.Outcome.Winner(),
		Result:     int32(info.Result),
		RecordedAt: at.UnixMilli(),
	}
}
