package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
)

// PostgresSectionRepository implements the SectionRepository interface.
// Reads are scoped through the owning project so another user's sections
// are indistinguishable from absent ones.
type PostgresSectionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(config *RepositoryConfig) repositories.SectionRepository {
	return &PostgresSectionRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new section. A duplicate position within the project
// violates the unique constraint and is reported as a validation failure.
func (r *PostgresSectionRepository) Create(ctx context.Context, section *models.Section) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (project_id, title, position, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		section.ProjectID,
		section.Title,
		section.Position,
		section.Content,
		section.CreatedAt,
		section.UpdatedAt,
	).Scan(&section.ID, &section.CreatedAt, &section.UpdatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("position %d already used in project %s: %w",
				section.Position, section.ProjectID, domain.ErrValidation)
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("project %s: %w", section.ProjectID, domain.ErrNotFound)
		}
		return fmt.Errorf("create section: %w", err)
	}

	return nil
}

// GetByID retrieves a section whose project is owned by the given user
func (r *PostgresSectionRepository) GetByID(ctx context.Context, id, userID string) (*models.Section, error) {
	return r.getByID(ctx, id, userID, false)
}

// GetByIDForUpdate retrieves a section with a row lock. Must run inside a
// transaction; the lock is held until commit.
func (r *PostgresSectionRepository) GetByIDForUpdate(ctx context.Context, id, userID string) (*models.Section, error) {
	return r.getByID(ctx, id, userID, true)
}

func (r *PostgresSectionRepository) getByID(ctx context.Context, id, userID string, forUpdate bool) (*models.Section, error) {
	suffix := ""
	if forUpdate {
		// Lock the section row only; the joined project row is not locked.
		suffix = " FOR UPDATE OF s"
	}

	query := fmt.Sprintf(`
		SELECT s.id, s.project_id, s.title, s.position, s.content, s.created_at, s.updated_at
		FROM %s s
		JOIN %s p ON p.id = s.project_id
		WHERE s.id = $1 AND p.user_id = $2%s
	`, r.tables.Sections, r.tables.Projects, suffix)

	var section models.Section
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id, userID).Scan(
		&section.ID,
		&section.ProjectID,
		&section.Title,
		&section.Position,
		&section.Content,
		&section.CreatedAt,
		&section.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get section: %w", err)
	}

	return &section, nil
}

// ListByProject retrieves a project's sections ordered by position ASC
func (r *PostgresSectionRepository) ListByProject(ctx context.Context, projectID, userID string) ([]models.Section, error) {
	query := fmt.Sprintf(`
		SELECT s.id, s.project_id, s.title, s.position, s.content, s.created_at, s.updated_at
		FROM %s s
		JOIN %s p ON p.id = s.project_id
		WHERE s.project_id = $1 AND p.user_id = $2
		ORDER BY s.position ASC
	`, r.tables.Sections, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var sections []models.Section
	for rows.Next() {
		var section models.Section
		err := rows.Scan(
			&section.ID,
			&section.ProjectID,
			&section.Title,
			&section.Position,
			&section.Content,
			&section.CreatedAt,
			&section.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sections: %w", err)
	}

	if sections == nil {
		sections = []models.Section{}
	}

	return sections, nil
}

// UpdateContent replaces a section's content, scoped through the
// ownership chain
func (r *PostgresSectionRepository) UpdateContent(ctx context.Context, id, userID, content string) error {
	query := fmt.Sprintf(`
		UPDATE %s s
		SET content = $1, updated_at = NOW()
		FROM %s p
		WHERE s.id = $2 AND p.id = s.project_id AND p.user_id = $3
	`, r.tables.Sections, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, content, id, userID)
	if err != nil {
		return fmt.Errorf("update section content: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
