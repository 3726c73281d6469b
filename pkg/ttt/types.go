package ttt

import "strconv"

type Cell uint8

const (
	Empty Cell = 0
	AI    Cell = 1
	Human Cell = 2
)

// Marks used by the web frontend, the AI always plays 'X'
const (
	MarkAI    = "X"
	MarkHuman = "O"
	MarkEmpty = ""
)

// The other side, Empty stays Empty
func (c Cell) Opponent() Cell {
	switch c {
	case AI:
		return Human
	case Human:
		return AI
	}
	return Empty
}

func (c Cell) String() string {
	switch c {
	case AI:
		return MarkAI
	case Human:
		return MarkHuman
	}
	return MarkEmpty
}

// Single character used in the notation
func (c Cell) Char() byte {
	switch c {
	case AI:
		return 'x'
	case Human:
		return 'o'
	}
	return '.'
}

// Square on the board, both coordinates in [0, 2]
type Move struct {
	Row int
	Col int
}

// Returned together with 'false' when there is no move to make
var NoMove = Move{Row: -1, Col: -1}

// Row-major index of the square, in [0, 8]
func (m Move) Index() int {
	return m.Row*3 + m.Col
}

func (m Move) Valid() bool {
	return m.Row >= 0 && m.Row < 3 && m.Col >= 0 && m.Col < 3
}

func MoveFromIndex(index int) Move {
	return Move{Row: index / 3, Col: index % 3}
}

func (m Move) String() string {
	if !m.Valid() {
		return "none"
	}
	return "(" + strconv.Itoa(m.Row) + "," + strconv.Itoa(m.Col) + ")"
}

type MoveList struct {
	Moves [9]Move
	Size  uint8
}

func (ml *MoveList) AppendMove(mv Move) {
	ml.Moves[ml.Size] = mv
	ml.Size++
}

func (ml *MoveList) Slice() []Move {
	return ml.Moves[:ml.Size]
}
