package domain

// all 8 directions a run of discs can be walked from its first cell
var directions = [8][2]int{
	{1, 1},
	{1, 0},
	{1, -1},
	{0, 1},
	{0, -1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
}

// Directions returns the 8 (dRow, dCol) steps in scan order.
func Directions() [8][2]int {
	return directions
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}

// EvaluateStatus scans the whole board. A linked run of four wins and the
// owner of the first run found is returned with it; a full top row without a
// run is a draw.
func EvaluateStatus(board Board) (GameStatus, PlayerID) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if board[row][col] == Empty {
				continue
			}
			for _, dir := range directions {
				if isDirectionLinked(board, row, col, dir[0], dir[1]) {
					return StatusWon, board[row][col]
				}
			}
		}
	}

	if board.IsFull() {
		return StatusDraw, Empty
	}

	return StatusOngoing, Empty
}

// isDirectionLinked walks ToWin cells from (row, col) and reports whether all
// of them hold the origin's disc.
func isDirectionLinked(board Board, row, col, dRow, dCol int) bool {
	origin := board[row][col]
	linked := 0
	for r, c := row, col; InBounds(r, c) && linked < ToWin; r, c = r+dRow, c+dCol {
		if board[r][c] == Empty || board[r][c] != origin {
			return false
		}
		linked++
	}

	return linked == ToWin
}
