package bot

import (
	"math/rand"
	"testing"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, rows ...string) domain.Board {
	t.Helper()
	b, err := domain.ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

// randomBoard plays random legal moves until plies discs are down, stopping
// early if the game ends.
func randomBoard(rng *rand.Rand, plies int) domain.Board {
	b := domain.NewBoard()
	player := domain.Human
	for i := 0; i < plies; i++ {
		columns := legalColumns(b)
		if len(columns) == 0 {
			break
		}
		next, _ := b.ApplyMove(columns[rng.Intn(len(columns))], player)
		if status, _ := domain.EvaluateStatus(next); status != domain.StatusOngoing {
			break
		}
		b = next
		player = player.Opponent()
	}
	return b
}

func TestScore_EmptyBoard(t *testing.T) {
	require.Equal(t, int64(0), Score(domain.NewBoard(), domain.Machine))
}

func TestScore_SingleCenterDisc(t *testing.T) {
	b := mustBoard(t,
		".......",
		".......",
		".......",
		".......",
		".......",
		"...O...",
	)

	// the three downward directions leave the board, the other five are open
	require.Equal(t, int64(5), Score(b, domain.Machine))
	require.Equal(t, int64(-5), Score(b, domain.Human))
}

func TestDirectionPotential(t *testing.T) {
	tests := []struct {
		name       string
		board      []string
		row, col   int
		dRow, dCol int
		want       int64
	}{
		{
			name:  "open horizontal three gets row bonus",
			board: []string{".......", ".......", ".......", ".......", ".......", ".OOO..."},
			row:   5, col: 1, dRow: 0, dCol: 1,
			want: 1 + 6,
		},
		{
			name:  "open horizontal three walked leftwards",
			board: []string{".......", ".......", ".......", ".......", ".......", ".OOO..."},
			row:   5, col: 3, dRow: 0, dCol: -1,
			want: 1 + 6,
		},
		{
			name:  "bonus follows the row",
			board: []string{".......", ".......", ".......", ".......", ".OOO...", ".XXXO.."},
			row:   4, col: 1, dRow: 0, dCol: 1,
			want: 1 + 5,
		},
		{
			name:  "no bonus against the wall",
			board: []string{".......", ".......", ".......", ".......", ".......", "OOO...."},
			row:   5, col: 0, dRow: 0, dCol: 1,
			want: 1,
		},
		{
			name:  "no bonus when the fourth cell is taken",
			board: []string{".......", ".......", ".......", ".......", ".......", ".OOOX.."},
			row:   5, col: 1, dRow: 0, dCol: 1,
			want: 0,
		},
		{
			name:  "vertical three has no bonus",
			board: []string{".......", ".......", ".......", "O......", "O......", "O......"},
			row:   5, col: 0, dRow: -1, dCol: 0,
			want: 1,
		},
		{
			name:  "diagonal three has no bonus",
			board: []string{".......", ".......", ".......", "..O....", ".OX....", "OXX...."},
			row:   5, col: 0, dRow: -1, dCol: 1,
			want: 1,
		},
		{
			name:  "window leaves the board",
			board: []string{".......", ".......", ".......", ".......", ".......", "....OO."},
			row:   5, col: 5, dRow: 0, dCol: 1,
			want: 0,
		},
		{
			name:  "opponent disc blocks the window",
			board: []string{".......", ".......", ".......", ".......", ".......", ".OXO..."},
			row:   5, col: 1, dRow: 0, dCol: 1,
			want: 0,
		},
		{
			name:  "gap in the window still counts once",
			board: []string{".......", ".......", ".......", ".......", ".......", ".O.O..."},
			row:   5, col: 1, dRow: 0, dCol: 1,
			want: 1,
		},
		{
			name:  "four aligned is the sentinel",
			board: []string{".......", ".......", ".......", ".......", ".......", "OOOO..."},
			row:   5, col: 0, dRow: 0, dCol: 1,
			want: alignedPotential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.board...)
			assert.Equal(t, tt.want, directionPotential(b, tt.row, tt.col, tt.dRow, tt.dCol))
		})
	}
}

func TestScore_OpponentDiscsSubtract(t *testing.T) {
	b := mustBoard(t,
		".......",
		".......",
		".......",
		".......",
		".......",
		"X.....O",
	)

	// corner discs: one horizontal, one vertical, one diagonal window each
	require.Equal(t, int64(0), Score(b, domain.Machine))

	b[4][6] = domain.Machine
	require.Greater(t, Score(b, domain.Machine), int64(0))
	require.Less(t, Score(b, domain.Human), int64(0))
}

func TestScore_ZeroSum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		b := randomBoard(rng, rng.Intn(domain.Rows*domain.Columns))
		require.Equal(t, -Score(b, domain.Machine), Score(b, domain.Human), "board %s", b.Key())
	}
}
