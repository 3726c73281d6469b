package ttt

import "iter"

// 3x3 grid, indexed [row][col]. It's a plain value, so copying it
// gives an independent board.
type Board [3][3]Cell

// Number of distinct boards, used to size tables keyed by Board.Key
const BoardKeys = 19683 // 3^9

// Winning lines in scan order: rows, columns, main diagonal, anti diagonal
var _winningLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

func (b *Board) At(mv Move) Cell {
	return b[mv.Row][mv.Col]
}

func (b *Board) Set(mv Move, c Cell) {
	b[mv.Row][mv.Col] = c
}

func (b *Board) IsEmpty(mv Move) bool {
	return b[mv.Row][mv.Col] == Empty
}

// Number of cells holding 'c'
func (b *Board) Count(c Cell) int {
	n := 0
	for r := range 3 {
		for col := range 3 {
			if b[r][col] == c {
				n++
			}
		}
	}
	return n
}

// Copy of the board with AI and Human marks exchanged
func (b Board) Swapped() Board {
	for r := range 3 {
		for c := range 3 {
			b[r][c] = b[r][c].Opponent()
		}
	}
	return b
}

// Base-3 encoding of the board, unique for every board in [0, BoardKeys)
func (b *Board) Key() uint16 {
	key := uint16(0)
	for r := range 3 {
		for c := range 3 {
			key = key*3 + uint16(b[r][c])
		}
	}
	return key
}

// Returns the side occupying the first complete line found, scanning
// rows, then columns, then both diagonals
func (b *Board) CheckWinner() (Cell, bool) {
	for i := range _winningLines {
		line := &_winningLines[i]
		c := b.At(line[0])
		if c != Empty && c == b.At(line[1]) && c == b.At(line[2]) {
			return c, true
		}
	}
	return Empty, false
}

func (b *Board) IsFull() bool {
	for r := range 3 {
		for c := range 3 {
			if b[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// Lazy sequence of empty squares in row-major order. Every cell is read
// when it's reached, so the caller may place and undo marks while iterating.
func (b *Board) LegalMoves() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for r := range 3 {
			for c := range 3 {
				if b[r][c] == Empty && !yield(Move{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// Same as LegalMoves, but collected into a fixed size list
func (b *Board) GenerateMoves() MoveList {
	movelist := MoveList{}
	for mv := range b.LegalMoves() {
		movelist.AppendMove(mv)
	}
	return movelist
}
