package bot

import (
	"log"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

// Decision is the machine's chosen column and whether the opening book
// supplied it.
type Decision struct {
	Column   int
	FromBook bool
}

// ChooseColumn picks the machine's next column. first is whoever opened the
// game, which the opening book depends on. It returns column -1 when the board
// has no playable column.
func ChooseColumn(board domain.Board, first domain.PlayerID) Decision {
	discs := board.DiscCount()

	if column, rule, ok := openingMove(board, discs, first); ok {
		log.Printf("[BOT] Opening book %q plays column %d", rule, column)
		return Decision{Column: column, FromBook: true}
	}

	s := newSearcher(MaxDepth)
	column, score := s.selectBestMove(board, discs)
	log.Printf("[BOT] Search picked column %d (score %d, %d nodes)", column, score, s.nodes)
	return Decision{Column: column}
}
