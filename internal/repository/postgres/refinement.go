package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
)

// PostgresRefinementRepository implements the RefinementRepository
// interface.
type PostgresRefinementRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewRefinementRepository creates a new refinement repository
func NewRefinementRepository(config *RepositoryConfig) repositories.RefinementRepository {
	return &PostgresRefinementRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create appends a refinement record
func (r *PostgresRefinementRepository) Create(ctx context.Context, refinement *models.Refinement) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (section_id, prompt, old_content, new_content, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, r.tables.Refinements)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		refinement.SectionID,
		refinement.Prompt,
		refinement.OldContent,
		refinement.NewContent,
		refinement.CreatedAt,
	).Scan(&refinement.ID, &refinement.CreatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("section %s: %w", refinement.SectionID, domain.ErrNotFound)
		}
		return fmt.Errorf("create refinement: %w", err)
	}

	return nil
}

// ListBySection retrieves a section's refinements, newest first
func (r *PostgresRefinementRepository) ListBySection(ctx context.Context, sectionID, userID string) ([]models.Refinement, error) {
	query := fmt.Sprintf(`
		SELECT f.id, f.section_id, f.prompt, f.old_content, f.new_content, f.created_at
		FROM %s f
		JOIN %s s ON s.id = f.section_id
		JOIN %s p ON p.id = s.project_id
		WHERE f.section_id = $1 AND p.user_id = $2
		ORDER BY f.created_at DESC
	`, r.tables.Refinements, r.tables.Sections, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, sectionID, userID)
	if err != nil {
		return nil, fmt.Errorf("list refinements: %w", err)
	}
	defer rows.Close()

	var refinements []models.Refinement
	for rows.Next() {
		var refinement models.Refinement
		err := rows.Scan(
			&refinement.ID,
			&refinement.SectionID,
			&refinement.Prompt,
			&refinement.OldContent,
			&refinement.NewContent,
			&refinement.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan refinement: %w", err)
		}
		refinements = append(refinements, refinement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate refinements: %w", err)
	}

	if refinements == nil {
		refinements = []models.Refinement{}
	}

	return refinements, nil
}
