package domain

import "time"

// where a best column came from
const (
	SourceBook   = "book"
	SourceSearch = "search"
)

// Analysis is a stored engine answer for one position.
type Analysis struct {
	Position    string    `db:"position" json:"position"`
	FirstPlayer PlayerID  `db:"first_player" json:"first_player"`
	BestColumn  int       `db:"best_column" json:"best_column"`
	Source      string    `db:"source" json:"source"`
	DiscCount   int       `db:"disc_count" json:"disc_count"`
	ElapsedMs   int64     `db:"elapsed_ms" json:"elapsed_ms"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
