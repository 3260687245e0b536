package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/academyadmin/academy-api/internal/app/models"
	"github.com/academyadmin/academy-api/internal/db"
	"github.com/academyadmin/academy-api/internal/pkg/dberrors"
	"github.com/academyadmin/academy-api/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// StudentRepository handles students together with their user rows
type StudentRepository struct {
	db db.TxBeginner
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(conn db.TxBeginner) *StudentRepository {
	return &StudentRepository{
		db: conn,
		sb: newStatementBuilder(),
	}
}

func (r *StudentRepository) baseSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"s.id", "s.user_id", "s.partner", "s.created_at",
		"u.id", "u.email", "u.name", "u.last_name", "u.dni", "u.role", "u.is_active", "u.created_at", "u.updated_at",
		"(SELECT COUNT(*) FROM enrolls e WHERE e.student_id = s.id) AS enrolls",
	).
		From("students s").
		Join("users u ON u.id = s.user_id")
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{User: &models.User{}, Count: &models.EnrollCount{}}
	u := student.User
	err := row.Scan(
		&student.ID, &student.UserID, &student.Partner, &student.CreatedAt,
		&u.ID, &u.Email, &u.Name, &u.LastName, &u.DNI, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		&student.Count.Enrolls,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

func (r *StudentRepository) query(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Student, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student list SQL")
		return nil, fmt.Errorf("failed to build student list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing student list query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// List returns every student with its user and enroll count
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	return r.query(ctx, r.baseSelect().OrderBy("u.last_name ASC", "u.name ASC"))
}

// Search returns the students whose last name matches case-insensitively.
// The dni is only matched when no last name is given.
func (r *StudentRepository) Search(ctx context.Context, search models.StudentSearch) ([]*models.Student, error) {
	q := r.baseSelect()
	if search.LastName != "" {
		q = q.Where("LOWER(u.last_name) = LOWER(?)", search.LastName)
	} else if search.DNI != "" {
		q = q.Where(squirrel.Eq{"u.dni": search.DNI})
	}
	return r.query(ctx, q.OrderBy("u.last_name ASC", "u.name ASC"))
}

// GetByID retrieves a student with its user and enroll count
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	return r.getByID(ctx, r.db, id)
}

func (r *StudentRepository) getByID(ctx context.Context, q db.DBTX, id string) (*models.Student, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"s.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}
	return student, nil
}

// Exists reports whether a student with id exists
func (r *StudentRepository) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, r.sb, "students", squirrel.Eq{"id": id}, "")
}

// Create inserts the user row and the student row in one transaction
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.User == nil {
		return errors.New("student user is required")
	}
	if student.ID == "" {
		student.ID = uuid.NewString()
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := insertUser(ctx, tx, r.sb, student.User); err != nil {
			return err
		}
		student.UserID = student.User.ID

		sql, args, err := r.sb.Insert("students").
			Columns("id", "user_id", "partner").
			Values(student.ID, student.UserID, student.Partner).
			Suffix("RETURNING created_at").
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building create student SQL")
			return fmt.Errorf("failed to build create student query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&student.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error executing create student query")
			return fmt.Errorf("error creating student: %w", err)
		}
		student.Count = &models.EnrollCount{}
		return nil
	})
}

// Update rewrites the student's user fields and partner flag in one
// transaction and returns the refreshed student.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student.User == nil {
		return nil, errors.New("student user is required")
	}

	var updated *models.Student
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Update("students").
			Set("partner", student.Partner).
			Where(squirrel.Eq{"id": student.ID}).
			Suffix("RETURNING user_id").
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building update student SQL")
			return fmt.Errorf("failed to build update student query: %w", err)
		}

		var userID string
		if err := tx.QueryRow(ctx, sql, args...).Scan(&userID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			logger.Error().Err(err).Str("studentID", student.ID).Msg("Error executing update student query")
			return fmt.Errorf("error updating student: %w", err)
		}

		sql, args, err = r.sb.Update("users").
			SetMap(map[string]interface{}{
				"email":      student.User.Email,
				"name":       student.User.Name,
				"last_name":  student.User.LastName,
				"dni":        student.User.DNI,
				"updated_at": time.Now().UTC(),
			}).
			Where(squirrel.Eq{"id": userID}).
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building update student user SQL")
			return fmt.Errorf("failed to build update student user query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Str("userID", userID).Msg("Error executing update student user query")
			return fmt.Errorf("error updating student user: %w", err)
		}

		updated, err = r.getByID(ctx, tx, student.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the student's enrolls, the student and its user in one
// transaction. It returns the student as it was before deletion.
func (r *StudentRepository) Delete(ctx context.Context, id string) (*models.Student, error) {
	var deleted *models.Student
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		student, err := r.getByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return dberrors.ErrRecordToDeleteNotFound
			}
			return err
		}

		if _, err := deleteEnrollsWhere(ctx, tx, r.sb, squirrel.Eq{"student_id": id}); err != nil {
			return err
		}

		for _, stmt := range []squirrel.DeleteBuilder{
			r.sb.Delete("students").Where(squirrel.Eq{"id": id}),
			r.sb.Delete("users").Where(squirrel.Eq{"id": student.UserID}),
		} {
			sql, args, err := stmt.ToSql()
			if err != nil {
				logger.Error().Err(err).Msg("Error building delete student SQL")
				return fmt.Errorf("failed to build delete student query: %w", err)
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				logger.Error().Err(err).Str("studentID", id).Msg("Error executing delete student query")
				return fmt.Errorf("error deleting student: %w", err)
			}
		}

		deleted = student
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
