package domain

import (
	"fmt"
	"strings"
)

// Board is the 6x7 grid. board[0] is the top row and board[Rows-1] the bottom.
// It is an array, so plain assignment copies it.
type Board [Rows][Columns]PlayerID

func NewBoard() Board {
	return Board{}
}

func (b Board) IsPlayable(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	return b[0][column] == Empty
}

// Drop places the disc in the lowest empty cell of the column and returns its row.
// The board is left untouched on error.
func (b *Board) Drop(column int, player PlayerID) (int, error) {
	if column < 0 || column >= Columns {
		return -1, fmt.Errorf("%w: invalid column index %d", ErrInvalidColumn, column)
	}

	// shifting the disk from top to bottom till it
	// reaches the end or another disk
	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			b[row][column] = player
			return row, nil
		}
	}

	return -1, fmt.Errorf("%w: column %d is already full", ErrInvalidColumn, column)
}

// ApplyMove returns a copy of the board with the disc dropped into column.
func (b Board) ApplyMove(column int, player PlayerID) (Board, error) {
	next := b
	if _, err := next.Drop(column, player); err != nil {
		return b, err
	}
	return next, nil
}

func (b Board) DiscCount() int {
	count := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b[row][col] != Empty {
				count++
			}
		}
	}
	return count
}

// IsFull reports whether every column's top cell is taken.
func (b Board) IsFull() bool {
	for col := 0; col < Columns; col++ {
		if b[0][col] == Empty {
			return false
		}
	}

	return true
}

// Key encodes the board row by row from the top, '.' for an empty cell.
func (b Board) Key() string {
	var sb strings.Builder
	sb.Grow(Rows * Columns)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b[row][col] == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteRune(b[row][col].Symbol())
		}
	}
	return sb.String()
}

// ParseBoard builds a board from Rows strings of Columns symbols, top row first.
// '.' and ' ' are empty cells, 'X' is the human and 'O' the machine.
// Gravity is not checked.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) != Rows {
		return b, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, Rows, len(rows))
	}

	for r, line := range rows {
		if len(line) != Columns {
			return b, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, r, len(line))
		}
		for c := 0; c < Columns; c++ {
			switch line[c] {
			case '.', EmptySymbol:
				b[r][c] = Empty
			case HumanSymbol:
				b[r][c] = Human
			case MachineSymbol:
				b[r][c] = Machine
			default:
				return b, fmt.Errorf("%w: unknown symbol %q at row %d column %d", ErrInvalidBoard, line[c], r, c)
			}
		}
	}
	return b, nil
}

// ParseKey is the inverse of Board.Key.
func ParseKey(key string) (Board, error) {
	if len(key) != Rows*Columns {
		return Board{}, fmt.Errorf("%w: key length %d", ErrInvalidBoard, len(key))
	}

	rows := make([]string, Rows)
	for r := range rows {
		rows[r] = key[r*Columns : (r+1)*Columns]
	}
	return ParseBoard(rows...)
}
