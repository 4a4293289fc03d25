package bot

import (
	"math"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

const (
	MaxDepth       = 9
	MaxScore int64 = math.MaxInt32
	MinScore int64 = math.MinInt32
)

// center-out, which also breaks ties between equally scored columns
var searchOrder = [domain.Columns]int{3, 2, 4, 0, 6, 1, 5}

type searcher struct {
	maxDepth int
	nodes    int
}

func newSearcher(maxDepth int) *searcher {
	return &searcher{maxDepth: maxDepth}
}

// legalColumns lists the playable columns in search order.
func legalColumns(board domain.Board) []int {
	columns := make([]int, 0, domain.Columns)
	for _, col := range searchOrder {
		if board.IsPlayable(col) {
			columns = append(columns, col)
		}
	}
	return columns
}

// winScore favours quick wins and slow losses: discs is the number of discs on
// the board once the winning disc is in.
func winScore(winner domain.PlayerID, discs int) int64 {
	if winner == domain.Machine {
		return MaxScore - int64(discs)
	}
	return MinScore + int64(discs)
}

// selectBestMove picks the machine's column on board, which holds discs discs,
// and returns it with its score. Pruning is never applied at this level so
// that every column gets a score and ties resolve by search order. It returns
// column -1 when nothing is playable.
func (s *searcher) selectBestMove(board domain.Board, discs int) (int, int64) {
	discs++
	columns := legalColumns(board)
	if len(columns) == 0 {
		return -1, 0
	}

	children := make([]domain.Board, len(columns))
	statuses := make([]domain.GameStatus, len(columns))
	for i, col := range columns {
		children[i], _ = board.ApplyMove(col, domain.Machine)
		statuses[i], _ = domain.EvaluateStatus(children[i])
		if statuses[i] == domain.StatusWon {
			return col, winScore(domain.Machine, discs)
		}
	}

	alpha, beta := MinScore, MaxScore
	bestColumn, bestScore := -1, MinScore

	for i, col := range columns {
		var score int64
		if statuses[i] == domain.StatusDraw {
			score = 0
		} else if s.maxDepth <= 1 {
			score = Score(children[i], domain.Machine)
		} else {
			score = s.scoreNode(children[i], discs, s.maxDepth-1, domain.Human, alpha, beta)
		}

		if bestColumn == -1 || score > bestScore {
			bestColumn = col
			bestScore = score
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}

	return bestColumn, bestScore
}

// scoreNode returns the minimax value of board with side to move. depth counts
// the plies left including this one; discs is the disc count of the parent
// position.
func (s *searcher) scoreNode(board domain.Board, discs, depth int, side domain.PlayerID, alpha, beta int64) int64 {
	s.nodes++
	depth--
	discs++

	maximizing := side == domain.Machine
	best := beta
	if maximizing {
		best = alpha
	}

	columns := legalColumns(board)
	scores := make([]int64, 0, len(columns))

	for _, col := range columns {
		child, _ := board.ApplyMove(col, side)

		status, _ := domain.EvaluateStatus(child)
		switch status {
		case domain.StatusWon:
			return winScore(side, discs)
		case domain.StatusDraw:
			return 0
		}

		var score int64
		if depth == 0 {
			score = Score(child, domain.Machine)
		} else {
			score = s.scoreNode(child, discs, depth, side.Opponent(), alpha, beta)
		}

		if maximizing {
			if score > best {
				best = score
				alpha = best
			}
		} else if score < best {
			best = score
			beta = best
		}

		if alpha >= beta {
			return best
		}
		scores = append(scores, score)
	}

	if len(scores) == 0 {
		return 0
	}

	result := scores[0]
	for _, score := range scores[1:] {
		if maximizing && score > result || !maximizing && score < result {
			result = score
		}
	}
	return result
}
