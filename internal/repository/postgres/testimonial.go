package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ilkhanul13/portfolio101/internal/domain"
	"github.com/ilkhanul13/portfolio101/pkg/database"
	apperrors "github.com/ilkhanul13/portfolio101/pkg/errors"
)

const testimonialColumns = `id, name, email, role, company, rating, message,
	       project_id, project_title, status, created_at, updated_at`

// TestimonialRepository implements repository.TestimonialRepository using PostgreSQL.
type TestimonialRepository struct {
	pool database.DBTX
}

// NewTestimonialRepository creates a new PostgreSQL-backed testimonial repository.
func NewTestimonialRepository(pool database.DBTX) *TestimonialRepository {
	return &TestimonialRepository{pool: pool}
}

// Create inserts a testimonial. The ID and timestamps are assigned by the
// database and written back onto the entity.
func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	query := `
		INSERT INTO testimonials (name, email, role, company, rating, message,
			project_id, project_title, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		t.Name,
		t.Email,
		t.Role,
		t.Company,
		t.Rating,
		t.Message,
		t.ProjectID,
		t.ProjectTitle,
		t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "insert testimonial")
	}

	return nil
}

// GetByID retrieves a testimonial by its ID.
func (r *TestimonialRepository) GetByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM testimonials
		WHERE id = $1`, testimonialColumns)

	var t domain.Testimonial

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.Name,
		&t.Email,
		&t.Role,
		&t.Company,
		&t.Rating,
		&t.Message,
		&t.ProjectID,
		&t.ProjectTitle,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("testimonial", id)
		}
		return nil, fmt.Errorf("get testimonial: %w", err)
	}

	return &t, nil
}

// ListApprovedByProject returns the newest approved testimonials for a project.
func (r *TestimonialRepository) ListApprovedByProject(ctx context.Context, projectID string, limit int) ([]domain.Testimonial, error) {
	if limit <= 0 {
		limit = 20
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM testimonials
		WHERE project_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT $3`, testimonialColumns)

	rows, err := r.pool.Query(ctx, query, projectID, domain.StatusApproved, limit)
	if err != nil {
		return nil, fmt.Errorf("list approved testimonials: %w", err)
	}
	defer rows.Close()

	testimonials, err := scanTestimonials(rows, nil)
	if err != nil {
		return nil, err
	}

	return testimonials, nil
}

// ListByStatus returns testimonials in the given status with the total count.
// A perPage of zero or less returns the full set; the moderation queue is
// unbounded unless the caller asks for a page.
func (r *TestimonialRepository) ListByStatus(ctx context.Context, status string, page, perPage int) ([]domain.Testimonial, int, error) {
	query := fmt.Sprintf(`
		SELECT %s,
		       count(*) OVER() AS total_count
		FROM testimonials
		WHERE status = $1
		ORDER BY created_at DESC`, testimonialColumns)

	args := []any{status}

	if perPage > 0 {
		offset := 0
		if page > 1 {
			offset = (page - 1) * perPage
		}
		query += `
		LIMIT $2 OFFSET $3`
		args = append(args, perPage, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list testimonials by status: %w", err)
	}
	defer rows.Close()

	var totalCount int

	testimonials, err := scanTestimonials(rows, &totalCount)
	if err != nil {
		return nil, 0, err
	}

	return testimonials, totalCount, nil
}

// UpdateStatus sets a testimonial's status and returns the updated row.
func (r *TestimonialRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Testimonial, error) {
	query := fmt.Sprintf(`
		UPDATE testimonials
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING %s`, testimonialColumns)

	var t domain.Testimonial

	err := r.pool.QueryRow(ctx, query, status, id).Scan(
		&t.ID,
		&t.Name,
		&t.Email,
		&t.Role,
		&t.Company,
		&t.Rating,
		&t.Message,
		&t.ProjectID,
		&t.ProjectTitle,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("testimonial", id)
		}
		return nil, mapWriteError(err, "update testimonial status")
	}

	return &t, nil
}

// ApprovedStats aggregates count and average rating over a project's approved
// testimonials. A positive sampleLimit aggregates over only the newest rows.
func (r *TestimonialRepository) ApprovedStats(ctx context.Context, projectID string, sampleLimit int) (domain.Stats, error) {
	query := `
		SELECT COUNT(*), COALESCE(AVG(rating), 0)
		FROM testimonials
		WHERE project_id = $1 AND status = $2`

	args := []any{projectID, domain.StatusApproved}

	if sampleLimit > 0 {
		query = `
			SELECT COUNT(*), COALESCE(AVG(rating), 0)
			FROM (
				SELECT rating
				FROM testimonials
				WHERE project_id = $1 AND status = $2
				ORDER BY created_at DESC
				LIMIT $3
			) sample`
		args = append(args, sampleLimit)
	}

	var stats domain.Stats

	err := r.pool.QueryRow(ctx, query, args...).Scan(&stats.Total, &stats.AverageRating)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("aggregate testimonial stats: %w", err)
	}

	stats.AverageRating = domain.RoundRating(stats.AverageRating)

	return stats, nil
}

// Probe runs a minimal read against the testimonials table. The raw error is
// returned unclassified so the caller can distinguish schema-level failures
// from network ones.
func (r *TestimonialRepository) Probe(ctx context.Context) error {
	var id string

	err := r.pool.QueryRow(ctx, `SELECT id FROM testimonials LIMIT 1`).Scan(&id)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	return nil
}

// scanTestimonials drains rows into a slice. When totalCount is non-nil each
// row is expected to carry a trailing count(*) OVER() column.
func scanTestimonials(rows pgx.Rows, totalCount *int) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial

	for rows.Next() {
		var t domain.Testimonial

		dest := []any{
			&t.ID,
			&t.Name,
			&t.Email,
			&t.Role,
			&t.Company,
			&t.Rating,
			&t.Message,
			&t.ProjectID,
			&t.ProjectTitle,
			&t.Status,
			&t.CreatedAt,
			&t.UpdatedAt,
		}
		if totalCount != nil {
			dest = append(dest, totalCount)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan testimonial row: %w", err)
		}

		testimonials = append(testimonials, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate testimonial rows: %w", err)
	}

	if testimonials == nil {
		testimonials = []domain.Testimonial{}
	}

	return testimonials, nil
}

// mapWriteError translates PostgreSQL error states surfaced during writes
// into the application error taxonomy.
func mapWriteError(err error, op string) error {
	switch {
	case isPermissionDenied(err):
		return apperrors.PermissionDenied("testimonials")
	case isUniqueViolation(err):
		return apperrors.Duplicate("testimonial")
	case isCheckViolation(err):
		return apperrors.ConstraintViolation("testimonial")
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// isPermissionDenied checks for SQLSTATE 42501 (insufficient privilege).
func isPermissionDenied(err error) bool {
	return err != nil && strings.Contains(err.Error(), "42501")
}

// isUniqueViolation checks for SQLSTATE 23505 (unique constraint violation).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}

// isCheckViolation checks for SQLSTATE 23514 (check constraint violation).
func isCheckViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23514")
}
