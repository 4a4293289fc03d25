package domain

// Session is one game between the human and the machine.
type Session struct {
	ID        string
	Board     Board
	First     PlayerID
	Turn      PlayerID
	Status    GameStatus
	Winner    PlayerID
	MoveCount int
}

// Outcome describes the board right after an accepted move.
type Outcome struct {
	Row    int
	Column int
	Player PlayerID
	Status GameStatus
	Winner PlayerID
}

func (o Outcome) IsFinished() bool {
	return o.Status == StatusWon || o.Status == StatusDraw
}

func NewSession(id string, first PlayerID) *Session {
	if first != Machine {
		first = Human
	}

	return &Session{
		ID:     id,
		Board:  NewBoard(),
		First:  first,
		Turn:   first,
		Status: StatusOngoing,
		Winner: Empty,
	}
}

// Play drops the current player's disc into column. An invalid column leaves
// the session unchanged so the caller can retry. The turn only flips while the
// game is still ongoing.
func (s *Session) Play(column int) (Outcome, error) {
	if s.IsFinished() {
		return Outcome{}, ErrGameOver
	}

	player := s.Turn
	row, err := s.Board.Drop(column, player)
	if err != nil {
		return Outcome{}, err
	}

	s.MoveCount++

	status, winner := EvaluateStatus(s.Board)
	s.Status = status
	s.Winner = winner

	if status == StatusOngoing {
		s.Turn = player.Opponent()
	}

	return Outcome{
		Row:    row,
		Column: column,
		Player: player,
		Status: status,
		Winner: winner,
	}, nil
}

func (s *Session) IsFinished() bool {
	return s.Status == StatusWon || s.Status == StatusDraw
}
