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

var enrollColumns = []string{"id", "student_id", "course_id", "emitted_at", "finished_at", "bachelor", "created_at"}

// EnrollRepository handles enroll database operations
type EnrollRepository struct {
	db db.TxBeginner
	sb squirrel.StatementBuilderType
}

// NewEnrollRepository creates a new EnrollRepository
func NewEnrollRepository(conn db.TxBeginner) *EnrollRepository {
	return &EnrollRepository{
		db: conn,
		sb: newStatementBuilder(),
	}
}

// enrollSelect joins every enroll with its course, academy, student and user
func (r *EnrollRepository) enrollSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"e.id", "e.student_id", "e.course_id", "e.emitted_at", "e.finished_at", "e.bachelor", "e.created_at",
		"c.name", "c.description", "c.hours", "a.name",
		"s.partner", "u.name", "u.last_name", "u.email", "u.dni",
	).
		From("enrolls e").
		Join("courses c ON c.id = e.course_id").
		Join("academies a ON a.id = c.academy_id").
		Join("students s ON s.id = e.student_id").
		Join("users u ON u.id = s.user_id")
}

func scanEnrollRow(row pgx.Row) (*models.Enroll, error) {
	enroll := &models.Enroll{
		Course:  &models.CourseSummary{Academy: &models.AcademySummary{}},
		Student: &models.StudentSummary{User: &models.UserSummary{}},
	}
	c, s := enroll.Course, enroll.Student
	err := row.Scan(
		&enroll.ID, &enroll.StudentID, &enroll.CourseID, &enroll.EmittedAt, &enroll.FinishedAt, &enroll.Bachelor, &enroll.CreatedAt,
		&c.Name, &c.Description, &c.Hours, &c.Academy.Name,
		&s.Partner, &s.User.Name, &s.User.LastName, &s.User.Email, &s.User.DNI,
	)
	if err != nil {
		return nil, err
	}
	c.ID = enroll.CourseID
	s.ID = enroll.StudentID
	return enroll, nil
}

func scanEnroll(row pgx.Row, enroll *models.Enroll) error {
	return row.Scan(
		&enroll.ID, &enroll.StudentID, &enroll.CourseID, &enroll.EmittedAt, &enroll.FinishedAt, &enroll.Bachelor, &enroll.CreatedAt,
	)
}

func (r *EnrollRepository) query(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Enroll, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building enroll list SQL")
		return nil, fmt.Errorf("failed to build enroll list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing enroll list query")
		return nil, fmt.Errorf("error querying enrolls: %w", err)
	}
	defer rows.Close()

	enrolls := []*models.Enroll{}
	for rows.Next() {
		enroll, err := scanEnrollRow(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning enroll row: %w", err)
		}
		enrolls = append(enrolls, enroll)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating enroll rows")
		return nil, fmt.Errorf("error iterating enroll rows: %w", err)
	}

	return enrolls, nil
}

// List returns every enroll, most recently emitted first
func (r *EnrollRepository) List(ctx context.Context) ([]*models.Enroll, error) {
	return r.query(ctx, r.enrollSelect().OrderBy("e.emitted_at DESC"))
}

// ListByStudent returns a student's enrolls ordered by finish date ascending
func (r *EnrollRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Enroll, error) {
	return r.query(ctx, r.enrollSelect().
		Where(squirrel.Eq{"e.student_id": studentID}).
		OrderBy("e.finished_at ASC"))
}

// ListByCourse returns a course's enrolls ordered by emission date descending
func (r *EnrollRepository) ListByCourse(ctx context.Context, courseID string) ([]*models.Enroll, error) {
	return r.query(ctx, r.enrollSelect().
		Where(squirrel.Eq{"e.course_id": courseID}).
		OrderBy("e.emitted_at DESC"))
}

// certificateSelect reads only the public certificate columns
func (r *EnrollRepository) certificateSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"e.id", "e.student_id", "e.course_id", "e.emitted_at", "e.finished_at", "e.bachelor", "e.created_at",
		"c.name", "c.description", "c.hours",
		"u.name", "u.last_name", "u.dni",
	).
		From("enrolls e").
		Join("courses c ON c.id = e.course_id").
		Join("students s ON s.id = e.student_id").
		Join("users u ON u.id = s.user_id")
}

func scanCertificate(row pgx.Row) (*models.Certificate, error) {
	cert := &models.Certificate{}
	c, u := &cert.Course, &cert.Student.User
	err := row.Scan(
		&cert.ID, &cert.StudentID, &cert.CourseID, &cert.EmittedAt, &cert.FinishedAt, &cert.Bachelor, &cert.CreatedAt,
		&c.Name, &c.Description, &c.Hours,
		&u.Name, &u.LastName, &u.DNI,
	)
	if err != nil {
		return nil, err
	}
	return cert, nil
}

// Search returns the certificates of students whose last name matches
// case-insensitively. The dni is only matched when no last name is given.
func (r *EnrollRepository) Search(ctx context.Context, search models.EnrollSearch) ([]*models.Certificate, error) {
	q := r.certificateSelect()
	if search.LastName != "" {
		q = q.Where("LOWER(u.last_name) = LOWER(?)", search.LastName)
	} else if search.DNI != "" {
		q = q.Where(squirrel.Eq{"u.dni": search.DNI})
	}

	sql, args, err := q.OrderBy("e.emitted_at DESC").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building enroll search SQL")
		return nil, fmt.Errorf("failed to build enroll search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing enroll search query")
		return nil, fmt.Errorf("error searching enrolls: %w", err)
	}
	defer rows.Close()

	certs := []*models.Certificate{}
	for rows.Next() {
		cert, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning certificate row: %w", err)
		}
		certs = append(certs, cert)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating certificate rows")
		return nil, fmt.Errorf("error iterating certificate rows: %w", err)
	}

	return certs, nil
}

// GetByID retrieves an enroll with its course and student
func (r *EnrollRepository) GetByID(ctx context.Context, id string) (*models.Enroll, error) {
	sql, args, err := r.enrollSelect().
		Where(squirrel.Eq{"e.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get enroll by ID SQL")
		return nil, fmt.Errorf("failed to build get enroll query: %w", err)
	}

	enroll, err := scanEnrollRow(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("enrollID", id).Msg("Error scanning enroll row")
		return nil, fmt.Errorf("error getting enroll by ID: %w", err)
	}
	return enroll, nil
}

func (r *EnrollRepository) insert(ctx context.Context, q db.DBTX, enroll *models.Enroll) error {
	if enroll.ID == "" {
		enroll.ID = uuid.NewString()
	}

	sql, args, err := r.sb.Insert("enrolls").
		Columns("id", "student_id", "course_id", "emitted_at", "finished_at", "bachelor").
		Values(enroll.ID, enroll.StudentID, enroll.CourseID, enroll.EmittedAt, enroll.FinishedAt, enroll.Bachelor).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create enroll SQL")
		return fmt.Errorf("failed to build create enroll query: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&enroll.CreatedAt); err != nil {
		logger.Error().Err(err).Str("studentID", enroll.StudentID).Str("courseID", enroll.CourseID).Msg("Error executing create enroll query")
		return fmt.Errorf("error creating enroll: %w", err)
	}
	return nil
}

// Create inserts a single enroll
func (r *EnrollRepository) Create(ctx context.Context, enroll *models.Enroll) error {
	return r.insert(ctx, r.db, enroll)
}

// CreateMany inserts every enroll for studentID in one transaction. Either
// all rows are written or none.
func (r *EnrollRepository) CreateMany(ctx context.Context, studentID string, enrolls []*models.Enroll) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, enroll := range enrolls {
			enroll.StudentID = studentID
			if err := r.insert(ctx, tx, enroll); err != nil {
				return err
			}
		}
		return nil
	})
}

// Update applies the non-nil fields of update to an enroll
func (r *EnrollRepository) Update(ctx context.Context, id string, update models.EnrollUpdate) (*models.Enroll, error) {
	set := map[string]interface{}{}
	if update.EmittedAt != nil {
		set["emitted_at"] = *update.EmittedAt
	}
	if update.FinishedAt != nil {
		set["finished_at"] = *update.FinishedAt
	}
	if update.Bachelor != nil {
		set["bachelor"] = *update.Bachelor
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args, err := r.sb.Update("enrolls").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(enrollColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update enroll SQL")
		return nil, fmt.Errorf("failed to build update enroll query: %w", err)
	}

	enroll := &models.Enroll{}
	if err := scanEnroll(r.db.QueryRow(ctx, sql, args...), enroll); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("enrollID", id).Msg("Error executing update enroll query")
		return nil, fmt.Errorf("error updating enroll: %w", err)
	}
	return enroll, nil
}

// Delete removes an enroll and returns the deleted row
func (r *EnrollRepository) Delete(ctx context.Context, id string) (*models.Enroll, error) {
	sql, args, err := r.sb.Delete("enrolls").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(enrollColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete enroll SQL")
		return nil, fmt.Errorf("failed to build delete enroll query: %w", err)
	}

	enroll := &models.Enroll{}
	if err := scanEnroll(r.db.QueryRow(ctx, sql, args...), enroll); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dberrors.ErrRecordToDeleteNotFound
		}
		logger.Error().Err(err).Str("enrollID", id).Msg("Error executing delete enroll query")
		return nil, fmt.Errorf("error deleting enroll: %w", err)
	}
	return enroll, nil
}

// deleteEnrollsWhere removes the enrolls matching cond and returns how many went
func deleteEnrollsWhere(ctx context.Context, q db.DBTX, sb squirrel.StatementBuilderType, cond squirrel.Eq) (int64, error) {
	sql, args, err := sb.Delete("enrolls").Where(cond).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete enrolls SQL")
		return 0, fmt.Errorf("failed to build delete enrolls query: %w", err)
	}

	result, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing delete enrolls query")
		return 0, fmt.Errorf("error deleting enrolls: %w", err)
	}
	return result.RowsAffected(), nil
}
