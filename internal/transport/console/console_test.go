package console

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedChooser struct {
	columns []int
	calls   int
}

func (c *scriptedChooser) ChooseColumn(_ context.Context, _ domain.Board, _ domain.PlayerID) (int, error) {
	column := c.columns[c.calls]
	c.calls++
	return column, nil
}

func TestRenderBoard(t *testing.T) {
	b, err := domain.ParseBoard(
		".......",
		".......",
		".......",
		".......",
		"...O...",
		"X..XO..",
	)
	require.NoError(t, err)

	want := "| | | | | | | |\n" +
		"| | | | | | | |\n" +
		"| | | | | | | |\n" +
		"| | | | | | | |\n" +
		"| | | |O| | | |\n" +
		"|X| | |X|O| | |\n" +
		"---------------\n" +
		" 1 2 3 4 5 6 7\n"
	assert.Equal(t, want, RenderBoard(b))
}

func TestParseColumn(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 0, false},
		{"7", 6, false},
		{" 4 \n", 3, false},
		{"4 5", 3, false},
		{"0", -1, false},
		{"9", 8, false},
		{"", 0, true},
		{"abc", 0, true},
		{"3.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColumn(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFirstPlayer(t *testing.T) {
	first, err := ParseFirstPlayer("1")
	require.NoError(t, err)
	assert.Equal(t, domain.Human, first)

	first, err = ParseFirstPlayer(" 2\n")
	require.NoError(t, err)
	assert.Equal(t, domain.Machine, first)

	for _, input := range []string{"", "3", "yes"} {
		_, err = ParseFirstPlayer(input)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRun_ScriptedHumanWin(t *testing.T) {
	chooser := &scriptedChooser{columns: []int{6, 6, 6}}
	in := strings.NewReader("x\n1\nfoo\n8\n1\n2\n3\n4\n")
	var out strings.Builder

	err := Run(context.Background(), in, &out, game.NewService(chooser), nil)
	require.NoError(t, err)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Welcome to Connect 4\n"))
	assert.Equal(t, 2, strings.Count(text, "Invalid input. Please try again."))
	assert.Contains(t, text, "Invalid Column Index")
	assert.Equal(t, 3, strings.Count(text, "AI chooses COLUMN 7"))
	assert.Contains(t, text, "|X|X|X|X| | |O|\n")
	assert.Contains(t, text, "Game Over! The winner is Human Player.\n")
	assert.True(t, strings.HasSuffix(text, "Thank you. Goodbye!\n"))
	assert.Equal(t, 3, chooser.calls)
}

func TestRun_FullColumnIsRetried(t *testing.T) {
	// the machine keeps answering in column 1 until it is full
	chooser := &scriptedChooser{columns: []int{0, 0, 0, 6, 6, 6}}
	in := strings.NewReader("1\n1\n1\n1\n1\n2\n3\n4\n")
	var out strings.Builder

	humanFirst := true
	err := Run(context.Background(), in, &out, game.NewService(chooser), &humanFirst)
	require.NoError(t, err)

	text := out.String()
	assert.NotContains(t, text, "Would you like to play first")
	assert.Contains(t, text, "Column is already full.")
	assert.Contains(t, text, "Game Over! The winner is Human Player.")
}

func TestRun_MachineFirstWins(t *testing.T) {
	chooser := &scriptedChooser{columns: []int{0, 0, 0, 0}}
	in := strings.NewReader("2\n2\n3\n4\n")
	var out strings.Builder

	err := Run(context.Background(), in, &out, game.NewService(chooser), nil)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "AI's turn. AI is 'O'")
	assert.Contains(t, text, "Game Over! The winner is AI.")
}

func TestRun_InputClosed(t *testing.T) {
	chooser := &scriptedChooser{}
	var out strings.Builder

	err := Run(context.Background(), strings.NewReader("1\n"), &out, game.NewService(chooser), nil)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	humanFirst := true
	err := Run(ctx, strings.NewReader(""), io.Discard, game.NewService(&scriptedChooser{}), &humanFirst)
	require.ErrorIs(t, err, context.Canceled)
}
