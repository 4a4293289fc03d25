package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
	"github.com/jmoiron/sqlx"
)

type AnalysisRepo struct {
	DB *sqlx.DB
}

func NewAnalysisRepo(db *sqlx.DB) *AnalysisRepo {
	return &AnalysisRepo{DB: db}
}

// GetAnalysis returns domain.ErrNotFound when the position was never analysed.
func (r *AnalysisRepo) GetAnalysis(ctx context.Context, position string, first domain.PlayerID) (*domain.Analysis, error) {
	query := `
	SELECT position, first_player, best_column, source, disc_count, elapsed_ms, created_at
	FROM position_analysis
	WHERE position = $1 AND first_player = $2;
	`

	var a domain.Analysis
	if err := r.DB.GetContext(ctx, &a, query, position, first); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &a, nil
}

// SaveAnalysis upserts a, refreshing created_at so that often played
// positions survive the retention cleanup.
func (r *AnalysisRepo) SaveAnalysis(ctx context.Context, a domain.Analysis) error {
	query := `
	INSERT INTO position_analysis (position, first_player, best_column, source, disc_count, elapsed_ms, created_at)
	VALUES (:position, :first_player, :best_column, :source, :disc_count, :elapsed_ms, NOW())
	ON CONFLICT (position, first_player) DO UPDATE SET
		best_column = EXCLUDED.best_column,
		source = EXCLUDED.source,
		elapsed_ms = EXCLUDED.elapsed_ms,
		created_at = NOW();
	`

	if _, err := r.DB.NamedExecContext(ctx, query, a); err != nil {
		return fmt.Errorf("failed to upsert analysis: %w", err)
	}
	return nil
}

// DeleteOlderThan removes analyses not refreshed in the last olderThanDays days.
func (r *AnalysisRepo) DeleteOlderThan(ctx context.Context, olderThanDays int) (int64, error) {
	query := `
	DELETE FROM position_analysis
	WHERE created_at < NOW() - INTERVAL '1 day' * $1;
	`
	result, err := r.DB.ExecContext(ctx, query, olderThanDays)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old analyses: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected, nil
}
