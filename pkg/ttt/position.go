package ttt

import "fmt"

// Game position: the board, the side to move and the move history,
// so moves can be taken back
type Position struct {
	board   Board
	first   Cell
	history []Move
}

// Empty board, the human moves first (as in the web frontend)
func NewPosition() *Position {
	return FromBoard(Board{}, Human)
}

// Position with given board and side to move
func FromBoard(board Board, toMove Cell) *Position {
	if toMove == Empty {
		toMove = Human
	}
	return &Position{
		board:   board,
		first:   toMove,
		history: make([]Move, 0, 9),
	}
}

func (p *Position) Board() Board {
	return p.board
}

// Side to move
func (p *Position) Turn() Cell {
	if len(p.history)%2 == 0 {
		return p.first
	}
	return p.first.Opponent()
}

// Moves made since the position was created
func (p *Position) Moves() []Move {
	moves := make([]Move, len(p.history))
	copy(moves, p.history)
	return moves
}

func (p *Position) Ply() int {
	return len(p.history)
}

// Places the mark of the side to move, panics if the square is taken
func (p *Position) MakeMove(mv Move) {
	if !mv.Valid() || !p.board.IsEmpty(mv) {
		panic(fmt.Sprintf("ttt: illegal move %v in %s", mv, p.board.Notation()))
	}
	p.board.Set(mv, p.Turn())
	p.history = append(p.history, mv)
}

// Take back the last move, does nothing if there is none
func (p *Position) UndoMove() {
	if len(p.history) == 0 {
		return
	}
	last := p.history[len(p.history)-1]
	p.board.Set(last, Empty)
	p.history = p.history[:len(p.history)-1]
}

func (p *Position) Outcome() Outcome {
	return p.board.Outcome()
}

func (p *Position) IsTerminated() bool {
	return p.board.Outcome().Terminal()
}

func (p *Position) IsDraw() bool {
	return p.board.Outcome() == Draw
}

// Take back every move
func (p *Position) Reset() {
	for len(p.history) > 0 {
		p.UndoMove()
	}
}

func (p *Position) Clone() *Position {
	history := make([]Move, len(p.history), 9)
	copy(history, p.history)
	return &Position{
		board:   p.board,
		first:   p.first,
		history: history,
	}
}
