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

var courseColumns = []string{"id", "name", "description", "end_date", "hours", "academy_id", "created_at"}

// CourseRepository handles course database operations
type CourseRepository struct {
	db db.TxBeginner
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(conn db.TxBeginner) *CourseRepository {
	return &CourseRepository{
		db: conn,
		sb: newStatementBuilder(),
	}
}

// CourseDeletion is the outcome of a cascading course delete
type CourseDeletion struct {
	DeletedEnrolls int64          `json:"deletedEnrolls"`
	Course         *models.Course `json:"course"`
}

func courseSelect(sb squirrel.StatementBuilderType) squirrel.SelectBuilder {
	return sb.Select(
		"c.id", "c.name", "c.description", "c.end_date", "c.hours", "c.academy_id", "c.created_at",
		"a.name",
		"(SELECT COUNT(*) FROM enrolls e WHERE e.course_id = c.id) AS enrolls",
	).
		From("courses c").
		Join("academies a ON a.id = c.academy_id")
}

func scanCourseRow(row pgx.Row) (*models.Course, error) {
	course := &models.Course{Academy: &models.AcademySummary{}, Count: &models.EnrollCount{}}
	err := row.Scan(
		&course.ID, &course.Name, &course.Description, &course.EndDate, &course.Hours, &course.AcademyID, &course.CreatedAt,
		&course.Academy.Name,
		&course.Count.Enrolls,
	)
	if err != nil {
		return nil, err
	}
	return course, nil
}

func scanCourse(row pgx.Row, course *models.Course) error {
	return row.Scan(
		&course.ID, &course.Name, &course.Description, &course.EndDate, &course.Hours, &course.AcademyID, &course.CreatedAt,
	)
}

func queryCourses(ctx context.Context, q db.DBTX, builder squirrel.SelectBuilder) ([]*models.Course, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building course list SQL")
		return nil, fmt.Errorf("failed to build course list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing course list query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourseRow(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// List returns every course with its academy name and enroll count, ordered by name
func (r *CourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	return queryCourses(ctx, r.db, courseSelect(r.sb).OrderBy("c.name ASC"))
}

// GetByID retrieves a course with its academy name and enroll count
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	sql, args, err := courseSelect(r.sb).
		Where(squirrel.Eq{"c.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourseRow(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}
	return course, nil
}

// Exists reports whether a course with id exists
func (r *CourseRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, r.sb, "courses", squirrel.Eq{"id": id}, "")
}

// Create inserts a course. The ID is generated when empty.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}

	sql, args, err := r.sb.Insert("courses").
		Columns("id", "name", "description", "end_date", "hours", "academy_id").
		Values(course.ID, course.Name, course.Description, course.EndDate, course.Hours, course.AcademyID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// Update rewrites a course's fields
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"name":        course.Name,
			"description": course.Description,
			"end_date":    course.EndDate,
			"hours":       course.Hours,
			"academy_id":  course.AcademyID,
		}).
		Where(squirrel.Eq{"id": course.ID}).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		logger.Error().Err(err).Str("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}
	return nil
}

// Delete removes a course and all of its enrolls in one transaction. When
// the course does not exist nothing is removed.
func (r *CourseRepository) Delete(ctx context.Context, id string) (*CourseDeletion, error) {
	result := &CourseDeletion{}
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		deleted, err := deleteEnrollsWhere(ctx, tx, r.sb, squirrel.Eq{"course_id": id})
		if err != nil {
			return err
		}

		sql, args, err := r.sb.Delete("courses").
			Where(squirrel.Eq{"id": id}).
			Suffix("RETURNING " + joinColumns(courseColumns)).
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building delete course SQL")
			return fmt.Errorf("failed to build delete course query: %w", err)
		}

		course := &models.Course{}
		if err := scanCourse(tx.QueryRow(ctx, sql, args...), course); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return dberrors.ErrRecordToDeleteNotFound
			}
			logger.Error().Err(err).Str("courseID", id).Msg("Error executing delete course query")
			return fmt.Errorf("error deleting course: %w", err)
		}

		result.DeletedEnrolls = deleted
		result.Course = course
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
