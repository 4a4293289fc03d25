package bot

import "github.com/iamasit07/4-in-a-row/engine/internal/domain"

// openingRule answers a known early position without searching.
type openingRule struct {
	name  string
	reply func(board domain.Board, discs int, first domain.PlayerID) (int, bool)
}

// openingBook is checked top to bottom, the first rule that answers wins.
var openingBook = []openingRule{
	{name: "center-first", reply: centerFirst},
	{name: "center-stack-of-four", reply: centerStackOfFour},
	{name: "center-stack-of-five", reply: centerStackOfFive},
}

// stackReply maps "any of these cells is taken" to a column.
type stackReply struct {
	cells  [][2]int
	column int
}

// replies to the alternating five-disc center stack, by where the sixth disc went
var stackReplies = []stackReply{
	{cells: [][2]int{{domain.Rows - 1, 1}}, column: 1},
	{cells: [][2]int{{domain.Rows - 6, domain.Center}}, column: 4},
	{cells: [][2]int{{domain.Rows - 1, 0}, {domain.Rows - 1, 4}, {domain.Rows - 1, 6}}, column: 4},
	{cells: [][2]int{{domain.Rows - 1, 2}, {domain.Rows - 1, 5}}, column: 5},
}

// openingMove consults the book. The rule name is returned for logging.
func openingMove(board domain.Board, discs int, first domain.PlayerID) (int, string, bool) {
	for _, rule := range openingBook {
		if column, ok := rule.reply(board, discs, first); ok {
			return column, rule.name, true
		}
	}
	return -1, "", false
}

// centerFirst takes the center column with the machine's first move.
func centerFirst(_ domain.Board, discs int, first domain.PlayerID) (int, bool) {
	threshold := 3
	if first == domain.Machine {
		threshold = 4
	}
	return domain.Center, discs < threshold
}

// centerStackOfFour keeps stacking the center when the first four discs all went there.
func centerStackOfFour(board domain.Board, discs int, _ domain.PlayerID) (int, bool) {
	if discs != 4 || board[domain.Rows-4][domain.Center] == domain.Empty {
		return -1, false
	}
	return domain.Center, true
}

func centerStackOfFive(board domain.Board, discs int, first domain.PlayerID) (int, bool) {
	if discs != 6 || first != domain.Machine || board[domain.Rows-5][domain.Center] == domain.Empty {
		return -1, false
	}

	// machine, human, machine, human, machine from the bottom up
	player := domain.Machine
	for row := domain.Rows - 1; row > domain.Rows-6; row-- {
		if board[row][domain.Center] != player {
			return -1, false
		}
		player = player.Opponent()
	}

	for _, reply := range stackReplies {
		for _, cell := range reply.cells {
			if board[cell[0]][cell[1]] != domain.Empty {
				return reply.column, true
			}
		}
	}
	return -1, false
}
