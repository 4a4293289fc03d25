package bot

import (
	"math"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// alignedPotential is what a direction is worth when all four of its cells
// already hold the same disc.
const alignedPotential int64 = math.MaxInt32

// Score sums the potential of every occupied cell in all 8 directions,
// positive for perspective's discs and negative for the opponent's.
func Score(board domain.Board, perspective domain.PlayerID) int64 {
	var score int64

	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			occupant := board[row][col]
			if occupant == domain.Empty {
				continue
			}

			var linked int64
			for _, dir := range domain.Directions() {
				linked += directionPotential(board, row, col, dir[0], dir[1])
			}

			if occupant == perspective {
				score += linked
			} else {
				score -= linked
			}
		}
	}

	return score
}

// directionPotential rates the four-cell window starting at (row, col).
// A window holding an opponent disc or running off the board is worth 0.
// A horizontal window whose first three cells are taken, with an empty cell
// before it and an empty fourth cell, earns row+1 on top.
func directionPotential(board domain.Board, row, col, dRow, dCol int) int64 {
	origin := board[row][col]
	aligned := 0
	horizontalBonus := 0

	k := 0
	for r, c := row, col; domain.InBounds(r, c) && k < domain.ToWin; r, c = r+dRow, c+dCol {
		cell := board[r][c]
		if cell != domain.Empty && cell != origin {
			return 0
		}

		if cell == origin {
			aligned++
			if dRow == 0 && k == 2 && aligned == 3 &&
				domain.InBounds(row, col-dCol) && domain.InBounds(r, c+dCol) &&
				board[row][col-dCol] == domain.Empty && board[r][c+dCol] == domain.Empty {
				horizontalBonus += row + 1
			}
		}
		k++
	}

	if k < domain.ToWin {
		return 0
	}
	if aligned == domain.ToWin {
		return alignedPotential
	}
	return 1 + int64(horizontalBonus)
}
