package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
)

// RenderBoard draws the board top row first with the column numbers below.
func RenderBoard(board domain.Board) string {
	var sb strings.Builder
	for r := 0; r < domain.Rows; r++ {
		sb.WriteByte('|')
		for c := 0; c < domain.Columns; c++ {
			sb.WriteRune(board[r][c].Symbol())
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat("-", 2*domain.Columns+1))
	sb.WriteByte('\n')
	for c := 1; c <= domain.Columns; c++ {
		fmt.Fprintf(&sb, " %d", c)
	}
	sb.WriteByte('\n')
	return sb.String()
}

// ParseColumn turns the 1-based column the user typed into a board column.
// Integers out of range are returned as is for the board to reject.
func ParseColumn(input string) (int, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: empty column", domain.ErrInvalidInput)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, fields[0])
	}
	return n - 1, nil
}

// ParseFirstPlayer maps "1" to the human and "2" to the machine.
func ParseFirstPlayer(input string) (domain.PlayerID, error) {
	fields := strings.Fields(input)
	if len(fields) > 0 {
		switch fields[0] {
		case "1":
			return domain.Human, nil
		case "2":
			return domain.Machine, nil
		}
	}
	return domain.Empty, fmt.Errorf("%w: expected 1 or 2", domain.ErrInvalidInput)
}

func resultMessage(result game.MoveResult) string {
	if result.Status == domain.StatusDraw {
		return "Game Over! It is a tie."
	}
	if result.Winner == domain.Human {
		return "Game Over! The winner is Human Player."
	}
	return "Game Over! The winner is AI."
}

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("input closed: %w", io.ErrUnexpectedEOF)
	}
	return p.in.Text(), nil
}

// Run plays one game on in and out. humanFirst answers the first player
// question without asking when it is set.
func Run(ctx context.Context, in io.Reader, out io.Writer, svc *game.Service, humanFirst *bool) error {
	p := &prompter{in: bufio.NewScanner(in), out: out}

	fmt.Fprintln(out, "Welcome to Connect 4")
	fmt.Fprint(out, "Using Minimax with Alpha Beta Pruning\n\n")
	fmt.Fprint(out, RenderBoard(domain.NewBoard()))
	fmt.Fprintln(out)

	first, err := askFirstPlayer(p, humanFirst)
	if err != nil {
		return err
	}

	gs, err := svc.NewGame(first)
	if err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var result game.MoveResult
		if gs.Snapshot().Turn == domain.Human {
			fmt.Fprintf(out, "Human player's turn. Human is '%c'\n", domain.HumanSymbol)
			line, err := p.ask("Enter column number 1-7: ")
			if err != nil {
				return err
			}

			column, err := ParseColumn(line)
			if err != nil {
				fmt.Fprint(out, "Invalid input. Please try again.\n\n")
				continue
			}

			result, err = gs.HandleMove(column)
			if errors.Is(err, domain.ErrInvalidColumn) {
				if column < 0 || column >= domain.Columns {
					fmt.Fprint(out, "Invalid Column Index\n\n")
				} else {
					fmt.Fprint(out, "Column is already full.\n\n")
				}
				continue
			}
			if err != nil {
				return err
			}
		} else {
			fmt.Fprintf(out, "AI's turn. AI is '%c'\n", domain.MachineSymbol)
			fmt.Fprintln(out, "Calculating...")
			fmt.Fprintln(out, "The first few steps may process for a few seconds.")
			result, err = gs.HandleBotMove(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Done")
			fmt.Fprintf(out, "AI chooses COLUMN %d\n", result.Column+1)
		}

		fmt.Fprintln(out)
		fmt.Fprint(out, RenderBoard(result.Board))
		if result.IsFinished() {
			fmt.Fprintln(out)
			fmt.Fprintln(out, resultMessage(result))
			break
		}
		fmt.Fprint(out, "\n\n")
	}

	fmt.Fprintln(out, "Thank you. Goodbye!")
	return nil
}

func askFirstPlayer(p *prompter, humanFirst *bool) (domain.PlayerID, error) {
	if humanFirst != nil {
		if *humanFirst {
			return domain.Human, nil
		}
		return domain.Machine, nil
	}

	for {
		line, err := p.ask(`Would you like to play first(enter "1") or second(enter "2"): `)
		if err != nil {
			return domain.Empty, err
		}
		first, err := ParseFirstPlayer(line)
		if err == nil {
			return first, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Please try again.")
	}
}
