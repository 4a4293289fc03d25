package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Human   PlayerID = 1
	Machine PlayerID = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
	Center  = Columns / 2
)

// disc symbols used by the console and by Board.Key
const (
	EmptySymbol   = ' '
	HumanSymbol   = 'X'
	MachineSymbol = 'O'
)

// Opponent returns the other player. Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Human:
		return Machine
	case Machine:
		return Human
	default:
		return Empty
	}
}

func (p PlayerID) Symbol() rune {
	switch p {
	case Human:
		return HumanSymbol
	case Machine:
		return MachineSymbol
	default:
		return EmptySymbol
	}
}

func (p PlayerID) String() string {
	switch p {
	case Human:
		return "Human"
	case Machine:
		return "AI"
	default:
		return "empty"
	}
}

// to represent the game status
type GameStatus string

const (
	StatusOngoing GameStatus = "ongoing"
	StatusWon     GameStatus = "won"
	StatusDraw    GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn Error = "invalid column"
	ErrGameOver      Error = "game over"
	ErrInvalidBoard  Error = "invalid board"
	ErrNotYourTurn   Error = "not your turn"
	ErrInvalidInput  Error = "invalid input"

	// storage lookups
	ErrCacheMiss Error = "cache miss"
	ErrNotFound  Error = "not found"
)
