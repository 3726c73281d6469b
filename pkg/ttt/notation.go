package ttt

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidNotation = errors.New("ttt: invalid notation")
	ErrInvalidCell     = errors.New("ttt: invalid cell")
	ErrInvalidShape    = errors.New("ttt: board must be 3x3")
)

// Empty board notation
const StartingPosition = "3/3/3"

// Notation of the board, rows separated with '/', similar to FEN:
// 'x' is the AI's mark, 'o' the human's, and a digit is a run of empty squares.
//
// For example:
//
//	x | x |
//	---------
//	o | o |
//	---------
//	  |   |
//
// is written as:
//
//	xx1/oo1/3
func (b Board) Notation() string {
	builder := strings.Builder{}
	for r := range 3 {
		counter := 0
		for c := range 3 {
			if b[r][c] == Empty {
				counter++
				continue
			}
			if counter > 0 {
				builder.WriteByte('0' + byte(counter))
				counter = 0
			}
			builder.WriteByte(b[r][c].Char())
		}
		if counter > 0 {
			builder.WriteByte('0' + byte(counter))
		}
		if r != 2 {
			builder.WriteByte('/')
		}
	}
	return builder.String()
}

// Parse the board from notation. Accepts digits or '.' for empty squares,
// and 'x'/'o' in either case. "startpos" is the empty board.
func ParseBoard(notation string) (Board, error) {
	var b Board
	notation = strings.TrimSpace(notation)
	if notation == "startpos" {
		notation = StartingPosition
	}

	rows := strings.Split(notation, "/")
	if len(rows) != 3 {
		return b, fmt.Errorf("%w: expected 3 rows, got %d in %q", ErrInvalidNotation, len(rows), notation)
	}

	for r, row := range rows {
		col := 0
		for i := 0; i < len(row); i++ {
			ch := row[i]
			switch {
			case ch >= '1' && ch <= '3':
				col += int(ch - '0')
				continue
			case ch == '.' || ch == '-':
				col++
				continue
			}

			var cell Cell
			switch ch {
			case 'x', 'X':
				cell = AI
			case 'o', 'O':
				cell = Human
			default:
				return b, fmt.Errorf("%w: unexpected %q in row %d", ErrInvalidNotation, ch, r)
			}
			if col >= 3 {
				return b, fmt.Errorf("%w: row %d is too long", ErrInvalidNotation, r)
			}
			b[r][col] = cell
			col++
		}
		if col != 3 {
			return b, fmt.Errorf("%w: row %d has %d squares", ErrInvalidNotation, r, col)
		}
	}
	return b, nil
}

// Human readable grid, one row per line
func (b Board) String() string {
	builder := strings.Builder{}
	for r := range 3 {
		for c := range 3 {
			if c > 0 {
				builder.WriteString(" | ")
			}
			builder.WriteByte(b[r][c].Char())
		}
		if r != 2 {
			builder.WriteString("\n---------\n")
		}
	}
	return builder.String()
}

func ParseCell(mark string) (Cell, error) {
	switch strings.TrimSpace(mark) {
	case MarkEmpty:
		return Empty, nil
	case MarkAI, "x":
		return AI, nil
	case MarkHuman, "o":
		return Human, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrInvalidCell, mark)
}

// Marshals into the frontend's grid shape: [["X","O",""],...]
func (b Board) MarshalJSON() ([]byte, error) {
	grid := make([][]string, 3)
	for r := range 3 {
		grid[r] = make([]string, 3)
		for c := range 3 {
			grid[r][c] = b[r][c].String()
		}
	}
	return json.Marshal(grid)
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var grid [][]string
	if err := json.Unmarshal(data, &grid); err != nil {
		return err
	}
	if len(grid) != 3 {
		return fmt.Errorf("%w: got %d rows", ErrInvalidShape, len(grid))
	}

	var parsed Board
	for r, row := range grid {
		if len(row) != 3 {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidShape, r, len(row))
		}
		for c, mark := range row {
			cell, err := ParseCell(mark)
			if err != nil {
				return fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			parsed[r][c] = cell
		}
	}
	*b = parsed
	return nil
}
