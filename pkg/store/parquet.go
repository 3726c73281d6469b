package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/IlikeChooros/go-ttt/pkg/ttt"
	"github.com/parquet-go/parquet-go"
)

// GameRow is a single finished arena game.
//
// Moves holds the row-major square indices (0-8) in the order they were played,
// so "408" is center, top-left, bottom-right. Result is from player 1's
// perspective: 1 win, -1 loss, 0 draw.
type GameRow struct {
	GameID     string `parquet:"game_id"`
	Worker     int32  `parquet:"worker"`
	Player1    string `parquet:"player1,dict"`
	Player2    string `parquet:"player2,dict"`
	P1First    bool   `parquet:"p1_first"`
	Start      string `parquet:"start,dict"`
	StartTurn  string `parquet:"start_turn,dict"`
	Moves      string `parquet:"moves"`
	Plies      int32  `parquet:"plies"`
	FinalBoard string `parquet:"final_board"`
	Outcome    string `parquet:"outcome,dict"`
	Winner     string `parquet:"winner,dict"`
	Result     int32  `parquet:"result"`
	RecordedAt int64  `parquet:"recorded_at"`
}

var ErrInvalidMoves = errors.New("store: invalid moves")

func EncodeMoves(moves []ttt.Move) string {
	builder := strings.Builder{}
	for _, mv := range moves {
		builder.WriteByte('0' + byte(mv.Index()))
	}
	return builder.String()
}

func DecodeMoves(encoded string) ([]ttt.Move, error) {
	moves := make([]ttt.Move, 0, len(encoded))
	for i := 0; i < len(encoded); i++ {
		ch := encoded[i]
		if ch < '0' || ch > '8' {
			return nil, fmt.Errorf("%w: %q at %d", ErrInvalidMoves, ch, i)
		}
		moves = append(moves, ttt.MoveFromIndex(int(ch-'0')))
	}
	return moves, nil
}

// Replays the row's moves from its start position
func (r GameRow) Replay() (*ttt.Position, error) {
	start, err := ttt.ParseBoard(r.Start)
	if err != nil {
		return nil, err
	}
	moves, err := DecodeMoves(r.Moves)
	if err != nil {
		return nil, err
	}

	toMove, err := ttt.ParseCell(r.StartTurn)
	if err != nil {
		return nil, err
	}
	pos := ttt.FromBoard(start, toMove)
	for _, mv := range moves {
		board := pos.Board()
		if !mv.Valid() || !board.IsEmpty(mv) || pos.IsTerminated() {
			return nil, fmt.Errorf("%w: %v is not playable", ErrInvalidMoves, mv)
		}
		pos.MakeMove(mv)
	}
	return pos, nil
}

// Reads every game from a parquet file written by BatchWriter
func ReadGames(path string) ([]GameRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[GameRow](pf)
	defer reader.Close()

	rows := make([]GameRow, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read games: %w", err)
	}
	return rows[:n], nil
}
