package ttt

import (
	"fmt"
	"math/rand"
	"testing"
)

func mustParse(t *testing.T, notation string) Board {
	t.Helper()
	b, err := ParseBoard(notation)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestCheckWinner(t *testing.T) {
	tests := []struct {
		notation string
		winner   Cell
		ok       bool
	}{
		{StartingPosition, Empty, false},
		{"xxx/oo1/3", AI, true},
		{"oo1/xxx/3", AI, true},
		{"oo1/3/xxx", AI, true},
		{"ox1/ox1/o2", Human, true},
		{"xo1/xo1/1o1", Human, true},
		{"xoo/oxx/oox", AI, true},
		{"xxo/1o1/o1x", Human, true},
		{"xox/xoo/oxx", Empty, false},
		// Two complete lines, the row is scanned first
		{"ooo/xxx/3", Human, true},
		{"xoo/xoo/x2", AI, true},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			b := mustParse(t, tt.notation)
			winner, ok := b.CheckWinner()
			if winner != tt.winner || ok != tt.ok {
				t.Errorf("CheckWinner()=(%v, %v), want (%v, %v)", winner, ok, tt.winner, tt.ok)
			}
		})
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		notation string
		want     Outcome
	}{
		{StartingPosition, InProgress},
		{"xx1/oo1/3", InProgress},
		{"xxx/oo1/3", AIWins},
		{"ooo/xx1/x2", HumanWins},
		{"xox/xoo/oxx", Draw},
		// Full board with a line is a win, not a draw
		{"xxx/oox/oxo", AIWins},
	}

	for _, tt := range tests {
		b := mustParse(t, tt.notation)
		if got := b.Outcome(); got != tt.want {
			t.Errorf("%s: Outcome()=%v, want %v", tt.notation, got, tt.want)
		}
		if got := b.Outcome().Terminal(); got != (tt.want != InProgress) {
			t.Errorf("%s: Terminal()=%v", tt.notation, got)
		}
	}
}

func TestIsFull(t *testing.T) {
	if b := mustParse(t, "xox/xoo/ox1"); b.IsFull() {
		t.Error("board with an empty square reported full")
	}
	if b := mustParse(t, "xox/xoo/oxx"); !b.IsFull() {
		t.Error("full board not reported full")
	}
}

func TestLegalMovesRowMajor(t *testing.T) {
	b := mustParse(t, "x1o/1x1/o2")
	want := []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}

	// Sequence must be restartable
	for round := range 2 {
		got := make([]Move, 0, 9)
		for mv := range b.LegalMoves() {
			got = append(got, mv)
		}
		if fmt.Sprint(got) != fmt.Sprint(want) {
			t.Fatalf("round %d: LegalMoves()=%v, want %v", round, got, want)
		}
	}

	list := b.GenerateMoves()
	if fmt.Sprint(list.Slice()) != fmt.Sprint(want) {
		t.Errorf("GenerateMoves()=%v, want %v", list.Slice(), want)
	}
}

func TestLegalMovesEarlyStop(t *testing.T) {
	var b Board
	count := 0
	for range b.LegalMoves() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("expected to stop after 3 moves, got %d", count)
	}
}

func TestBoardKeyUnique(t *testing.T) {
	seen := make(map[uint16]Board)
	var b Board
	for i := range BoardKeys {
		n := i
		for sq := 8; sq >= 0; sq-- {
			b.Set(MoveFromIndex(sq), Cell(n%3))
			n /= 3
		}
		key := b.Key()
		if int(key) != i {
			t.Fatalf("Key()=%d, want %d for %s", key, i, b.Notation())
		}
		if other, ok := seen[key]; ok {
			t.Fatalf("duplicate key %d for %s and %s", key, b.Notation(), other.Notation())
		}
		seen[key] = b
	}
}

func TestSwapped(t *testing.T) {
	b := mustParse(t, "xx1/oo1/3")
	s := b.Swapped()
	if s.Notation() != "oo1/xx1/3" {
		t.Errorf("Swapped()=%s", s.Notation())
	}
	if b.Notation() != "xx1/oo1/3" {
		t.Error("Swapped modified the receiver")
	}
	if s.Count(AI) != 2 || s.Count(Human) != 2 || s.Count(Empty) != 5 {
		t.Errorf("unexpected counts after swap: %s", s.Notation())
	}
}

func TestRandomPlayout(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		t.Run(fmt.Sprintf("Playout-%d", i), func(t *testing.T) {
			pos := NewPosition()
			for !pos.IsTerminated() {
				moves := pos.board.GenerateMoves()
				if moves.Size == 0 {
					t.Fatal("No legal moves in a non terminal position")
				}
				pos.MakeMove(moves.Moves[r.Intn(int(moves.Size))])
			}
			if pos.Ply() > 9 || pos.Outcome() == InProgress {
				t.Fatalf("Game ended without a termination condition: %s", pos.board.Notation())
			}
		})
	}
}
