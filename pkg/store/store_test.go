package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IlikeChooros/go-ttt/pkg/bench"
	"github.com/IlikeChooros/go-ttt/pkg/minimax"
	"github.com/IlikeChooros/go-ttt/pkg/ttt"
	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	bench.SetSeedGeneratorFn(func() int64 {
		return 7
	})
	os.Exit(m.Run())
}

func TestEncodeDecodeMoves(t *testing.T) {
	moves := []ttt.Move{{Row: 1, Col: 1}, {Row: 0, Col: 0}, {Row: 2, Col: 2}}
	encoded := EncodeMoves(moves)
	if encoded != "408" {
		t.Fatalf("EncodeMoves()=%q, want \"408\"", encoded)
	}

	decoded, err := DecodeMoves(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != len(moves) {
		t.Fatalf("decoded %d moves, want %d", len(decoded), len(moves))
	}
	for i := range moves {
		if decoded[i] != moves[i] {
			t.Errorf("move %d: %v, want %v", i, decoded[i], moves[i])
		}
	}

	for _, bad := range []string{"9", "12a", "-1"} {
		if _, err := DecodeMoves(bad); !errors.Is(err, ErrInvalidMoves) {
			t.Errorf("DecodeMoves(%q) err=%v, want ErrInvalidMoves", bad, err)
		}
	}
}

func TestReplay(t *testing.T) {
	row := GameRow{Start: ttt.StartingPosition, StartTurn: ttt.MarkHuman, Moves: "40812"}
	pos, err := row.Replay()
	if err != nil {
		t.Fatal(err)
	}
	if got := pos.Board().Notation(); got != "xxo/1o1/2o" {
		t.Errorf("replayed board %s", got)
	}

	tests := []struct {
		name string
		row  GameRow
	}{
		{"taken square", GameRow{Start: ttt.StartingPosition, StartTurn: ttt.MarkHuman, Moves: "44"}},
		{"move after the end", GameRow{Start: "xx1/oo1/3", StartTurn: ttt.MarkAI, Moves: "28"}},
		{"bad start", GameRow{Start: "xxxx/3/3", StartTurn: ttt.MarkAI}},
		{"bad turn", GameRow{Start: ttt.StartingPosition, StartTurn: "Z"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.row.Replay(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestBatchWriterEmpty(t *testing.T) {
	w, err := NewBatchWriter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	out, rows, err := w.Finalize()
	if err != nil || out != "" || rows != 0 {
		t.Fatalf("Finalize()=(%q, %d, %v), want nothing written", out, rows, err)
	}
	if _, err := os.Stat(w.TmpPath()); !os.IsNotExist(err) {
		t.Errorf("tmp file still exists: %v", err)
	}
	if err := w.WriteRows([]GameRow{{}}); !errors.Is(err, ErrWriterClosed) {
		t.Errorf("WriteRows after Finalize: %v", err)
	}
}

func TestBatchWriterRequiresDir(t *testing.T) {
	if _, err := NewBatchWriter(""); err == nil {
		t.Error("expected an error for an empty output dir")
	}
}

func TestRecordArena(t *testing.T) {
	dir := t.TempDir()
	w, err := NewBatchWriter(dir)
	if err != nil {
		t.Fatal(err)
	}
	recorder := NewGameRecorder(w, 4)

	arena := bench.NewVersusArena(nil, bench.NewEngineAgent(minimax.DefaultConfig()), bench.NewRandomAgent())
	arena.Setup(10, 3)
	arena.Start(recorder)
	arena.Wait()

	if err := recorder.Err(); err != nil {
		t.Fatal(err)
	}
	if recorder.Recorded() != 10 {
		t.Fatalf("Recorded()=%d, want 10", recorder.Recorded())
	}

	out, rows, err := w.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if rows != 10 || filepath.Dir(out) != dir {
		t.Fatalf("Finalize()=(%q, %d), want 10 rows in %s", out, rows, dir)
	}

	games, err := ReadGames(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 10 {
		t.Fatalf("read %d games, want 10", len(games))
	}

	ids := make(map[string]bool)
	for _, g := range games {
		if ids[g.GameID] {
			t.Errorf("duplicate game id %s", g.GameID)
		}
		ids[g.GameID] = true

		if g.Player1 != "alphabeta" || g.Player2 != "random" {
			t.Errorf("players %s vs %s", g.Player1, g.Player2)
		}
		if g.Result == int32(bench.VersusPl2Win) {
			t.Errorf("engine lost game %s", g.GameID)
		}

		pos, err := g.Replay()
		if err != nil {
			t.Fatalf("replay %s: %v", g.GameID, err)
		}
		if got := pos.Board().Notation(); got != g.FinalBoard {
			t.Errorf("replayed %s, recorded %s", got, g.FinalBoard)
		}
		if int(g.Plies) != pos.Ply() {
			t.Errorf("plies %d, replayed %d", g.Plies, pos.Ply())
		}
		if pos.Outcome().String() != g.Outcome || pos.Outcome().Winner() != g.Winner {
			t.Errorf("outcome %s/%q, replayed %v", g.Outcome, g.Winner, pos.Outcome())
		}
	}
}

func TestRecorderLogger(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(zerolog.Disabled)

	w, err := NewBatchWriter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	recorder := NewGameRecorder(w, 1).SetLogger(zerolog.New(&buf))

	board, err := ttt.ParseBoard("xxx/oo1/3")
	if err != nil {
		t.Fatal(err)
	}
	recorder.Clone().OnFinishedGame(bench.VersusWorkerInfo{
		P1Name:    "alphabeta",
		P2Name:    "random",
		Start:     board,
		StartTurn: ttt.AI,
		Board:     board,
		Outcome:   board.Outcome(),
	})
	if recorder.Recorded() != 1 {
		t.Fatalf("Recorded()=%d, want 1", recorder.Recorded())
	}
	if !strings.Contains(buf.String(), "games recorded") {
		t.Errorf("missing flush event in %q", buf.String())
	}
	if _, _, err := w.Finalize(); err != nil {
		t.Fatal(err)
	}
}
