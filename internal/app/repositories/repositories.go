package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/academyadmin/academy-api/internal/db"
	"github.com/academyadmin/academy-api/internal/pkg/logger"
)

// ErrNotFound is returned when a single-row read or update matches nothing.
var ErrNotFound = errors.New("record not found")

// ErrAcademyHasCourses is returned when deleting an academy that still owns courses.
var ErrAcademyHasCourses = errors.New("academy has associated courses and cannot be deleted")

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	StudentRepository *StudentRepository
	AcademyRepository *AcademyRepository
	CourseRepository  *CourseRepository
	EnrollRepository  *EnrollRepository
}

// NewRepositories initializes all repositories
func NewRepositories(conn db.TxBeginner) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(conn),
		StudentRepository: NewStudentRepository(conn),
		AcademyRepository: NewAcademyRepository(conn),
		CourseRepository:  NewCourseRepository(conn),
		EnrollRepository:  NewEnrollRepository(conn),
	}
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// exists reports whether a row of table matches cond, ignoring the row whose id is excludeID.
func exists(ctx context.Context, q db.DBTX, sb squirrel.StatementBuilderType, table string, cond squirrel.Eq, excludeID string) (bool, error) {
	where := squirrel.And{cond}
	if excludeID != "" {
		where = append(where, squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := sb.Select("1").
		From(table).
		Where(where).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error building exists SQL")
		return false, fmt.Errorf("failed to build %s exists query: %w", table, err)
	}

	var found bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&found); err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error executing exists query")
		return false, fmt.Errorf("error checking %s existence: %w", table, err)
	}
	return found, nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
