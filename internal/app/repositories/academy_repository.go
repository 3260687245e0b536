package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/db"
	"github.com/academyadmin/academy-api/internal/pkg/dberrors"
	"github.com/academyadmin/academy-api/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AcademyRepository handles academy database operations
type AcademyRepository struct {
	db db.TxBeginner
	sb squirrel.StatementBuilderType
}

// NewAcademyRepository creates a new AcademyRepository
func NewAcademyRepository(conn db.TxBeginner) *AcademyRepository {
	return &AcademyRepository{
		db: conn,
		sb: newStatementBuilder(),
	}
}

// List returns every academy with its course count, ordered by name
func (r *AcademyRepository) List(ctx context.Context) ([]*models.Academy, error) {
	sql, args, err := r.sb.Select(
		"a.id", "a.name", "a.description", "a.created_at",
		"(SELECT COUNT(*) FROM courses c WHERE c.academy_id = a.id) AS courses",
	).
		From("academies a").
		OrderBy("a.name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list academies SQL")
		return nil, fmt.Errorf("failed to build list academies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list academies query")
		return nil, fmt.Errorf("error querying academies: %w", err)
	}
	defer rows.Close()

	academies := []*models.Academy{}
	for rows.Next() {
		academy := &models.Academy{Count: &models.CourseCount{}}
		if err := rows.Scan(&academy.ID, &academy.Name, &academy.Description, &academy.CreatedAt, &academy.Count.Courses); err != nil {
			return nil, fmt.Errorf("error scanning academy row: %w", err)
		}
		academies = append(academies, academy)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating academy rows")
		return nil, fmt.Errorf("error iterating academy rows: %w", err)
	}

	return academies, nil
}

// GetByID retrieves an academy together with its courses, each carrying
// its enroll count.
func (r *AcademyRepository) GetByID(ctx context.Context, id string) (*models.Academy, error) {
	sql, args, err := r.sb.Select("id", "name", "description", "created_at").
		From("academies").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get academy by ID SQL")
		return nil, fmt.Errorf("failed to build get academy query: %w", err)
	}

	academy := &models.Academy{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&academy.ID, &academy.Name, &academy.Description, &academy.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("academyID", id).Msg("Error scanning academy row")
		return nil, fmt.Errorf("error getting academy by ID: %w", err)
	}

	courses, err := queryCourses(ctx, r.db, courseSelect(r.sb).Where(squirrel.Eq{"c.academy_id": id}).OrderBy("c.name ASC"))
	if err != nil {
		return nil, err
	}
	academy.Courses = make([]models.Course, 0, len(courses))
	for _, course := range courses {
		course.Academy = nil
		academy.Courses = append(academy.Courses, *course)
	}
	academy.Count = &models.CourseCount{Courses: len(courses)}

	return academy, nil
}

// Create inserts an academy. The ID is generated when empty.
func (r *AcademyRepository) Create(ctx context.Context, academy *models.Academy) error {
	if academy.ID == "" {
		academy.ID = uuid.NewString()
	}

	sql, args, err := r.sb.Insert("academies").
		Columns("id", "name", "description").
		Values(academy.ID, academy.Name, academy.Description).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create academy SQL")
		return fmt.Errorf("failed to build create academy query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&academy.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create academy query")
		return fmt.Errorf("error creating academy: %w", err)
	}
	return nil
}

// Update rewrites an academy's name and description
func (r *AcademyRepository) Update(ctx context.Context, academy *models.Academy) error {
	sql, args, err := r.sb.Update("academies").
		SetMap(map[string]interface{}{
			"name":        academy.Name,
			"description": academy.Description,
		}).
		Where(squirrel.Eq{"id": academy.ID}).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update academy SQL")
		return fmt.Errorf("failed to build update academy query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&academy.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		logger.Error().Err(err).Str("academyID", academy.ID).Msg("Error executing update academy query")
		return fmt.Errorf("error updating academy: %w", err)
	}
	return nil
}

// Delete removes an academy that owns no courses
func (r *AcademyRepository) Delete(ctx context.Context, id string) error {
	hasCourses, err := exists(ctx, r.db, r.sb, "courses", squirrel.Eq{"academy_id": id}, "")
	if err != nil {
		return err
	}
	if hasCourses {
		return ErrAcademyHasCourses
	}

	sql, args, err := r.sb.Delete("academies").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete academy SQL")
		return fmt.Errorf("failed to build delete academy query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("academyID", id).Msg("Error executing delete academy query")
		return fmt.Errorf("error deleting academy: %w", err)
	}
	if result.RowsAffected() == 0 {
		return dberrors.ErrRecordToDeleteNotFound
	}
	return nil
}

// NameExists checks whether an academy other than excludeID is named name
func (r *AcademyRepository) NameExists(ctx context.Context, name, excludeID string) (bool, error) {
	return exists(ctx, r.db, r.sb, "academies", squirrel.Eq{"name": name}, excludeID)
}

// Exists reports whether an academy with id exists
func (r *AcademyRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, r.sb, "academies", squirrel.Eq{"id": id}, "")
}
