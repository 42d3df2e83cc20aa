package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
)

// PostgresFeedbackRepository implements the FeedbackRepository interface
type PostgresFeedbackRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(config *RepositoryConfig) repositories.FeedbackRepository {
	return &PostgresFeedbackRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create records a feedback entry against a section
func (r *PostgresFeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (section_id, kind, comment, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, r.tables.Feedback)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		feedback.SectionID,
		feedback.Kind,
		feedback.Comment,
		feedback.CreatedAt,
	).Scan(&feedback.ID, &feedback.CreatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("section %s: %w", feedback.SectionID, domain.ErrNotFound)
		}
		return fmt.Errorf("create feedback: %w", err)
	}

	return nil
}

// ListBySection retrieves a section's feedback entries, newest first
func (r *PostgresFeedbackRepository) ListBySection(ctx context.Context, sectionID, userID string) ([]models.Feedback, error) {
	query := fmt.Sprintf(`
		SELECT f.id, f.section_id, f.kind, f.comment, f.created_at
		FROM %s f
		JOIN %s s ON s.id = f.section_id
		JOIN %s p ON p.id = s.project_id
		WHERE f.section_id = $1 AND p.user_id = $2
		ORDER BY f.created_at DESC
	`, r.tables.Feedback, r.tables.Sections, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, sectionID, userID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var entries []models.Feedback
	for rows.Next() {
		var feedback models.Feedback
		err := rows.Scan(
			&feedback.ID,
			&feedback.SectionID,
			&feedback.Kind,
			&feedback.Comment,
			&feedback.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		entries = append(entries, feedback)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}

	if entries == nil {
		entries = []models.Feedback{}
	}

	return entries, nil
}
