package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/iamasit07/4-in-a-row/engine/pkg/uid"
)

// ColumnChooser picks the machine's column, implemented by analysis.Service.
type ColumnChooser interface {
	ChooseColumn(ctx context.Context, board domain.Board, first domain.PlayerID) (int, error)
}

// Service is the entry point for game logic
type Service struct {
	chooser ColumnChooser
}

func NewService(chooser ColumnChooser) *Service {
	return &Service{chooser: chooser}
}

// GameSession is one human versus machine game.
type GameSession struct {
	Game       *domain.Session
	CreatedAt  time.Time
	FinishedAt time.Time
	mu         sync.Mutex
	chooser    ColumnChooser
}

// MoveResult is what a caller sees after an accepted move.
type MoveResult struct {
	Column int
	Row    int
	Player domain.PlayerID
	Status domain.GameStatus
	Winner domain.PlayerID
	Board  domain.Board
}

func (r MoveResult) IsFinished() bool {
	return r.Status == domain.StatusWon || r.Status == domain.StatusDraw
}

func (s *Service) NewGame(first domain.PlayerID) (*GameSession, error) {
	id, err := uid.GenerateSessionID()
	if err != nil {
		return nil, err
	}

	gs := &GameSession{
		Game:      domain.NewSession(id, first),
		CreatedAt: time.Now(),
		chooser:   s.chooser,
	}
	log.Printf("[GAME] Created session %s, %s moves first", id, gs.Game.First)
	return gs, nil
}

// Snapshot returns a copy of the session state.
func (gs *GameSession) Snapshot() domain.Session {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return *gs.Game
}

// HandleMove plays the human's disc. An invalid column wraps
// domain.ErrInvalidColumn and leaves the turn with the human.
func (gs *GameSession) HandleMove(column int) (MoveResult, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Game.IsFinished() {
		return MoveResult{}, domain.ErrGameOver
	}
	if gs.Game.Turn != domain.Human {
		return MoveResult{}, domain.ErrNotYourTurn
	}

	return gs.play(column)
}

// HandleBotMove asks the chooser for the machine's column and plays it.
func (gs *GameSession) HandleBotMove(ctx context.Context) (MoveResult, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	// Verify it's actually the bot's turn
	if gs.Game.IsFinished() {
		return MoveResult{}, domain.ErrGameOver
	}
	if gs.Game.Turn != domain.Machine {
		return MoveResult{}, domain.ErrNotYourTurn
	}

	start := time.Now()
	column, err := gs.chooser.ChooseColumn(ctx, gs.Game.Board, gs.Game.First)
	if err != nil {
		return MoveResult{}, fmt.Errorf("failed to choose bot column: %w", err)
	}
	log.Printf("[BOT] Session %s: chose column %d in %s", gs.Game.ID, column, time.Since(start).Round(time.Millisecond))

	result, err := gs.play(column)
	if errors.Is(err, domain.ErrInvalidColumn) {
		return MoveResult{}, fmt.Errorf("bot picked an unplayable column: %w", err)
	}
	return result, err
}

func (gs *GameSession) play(column int) (MoveResult, error) {
	outcome, err := gs.Game.Play(column)
	if err != nil {
		return MoveResult{}, err
	}

	result := MoveResult{
		Column: outcome.Column,
		Row:    outcome.Row,
		Player: outcome.Player,
		Status: outcome.Status,
		Winner: outcome.Winner,
		Board:  gs.Game.Board,
	}

	if !outcome.IsFinished() {
		return result, nil
	}

	gs.FinishedAt = time.Now()
	if outcome.Status == domain.StatusWon {
		log.Printf("[GAME] Session %s: %s wins after %d moves", gs.Game.ID, outcome.Winner, gs.Game.MoveCount)
	} else {
		log.Printf("[GAME] Session %s: draw after %d moves", gs.Game.ID, gs.Game.MoveCount)
	}
	return result, nil
}
