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

var userColumns = []string{
	"id", "email", "password", "name", "last_name", "dni", "role", "is_active", "created_at", "updated_at",
}

// UserRepository handles administrator accounts stored in the users table
type UserRepository struct {
	db db.TxBeginner
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(conn db.TxBeginner) *UserRepository {
	return &UserRepository{
		db: conn,
		sb: newStatementBuilder(),
	}
}

func scanUser(row pgx.Row, user *models.User) error {
	return row.Scan(
		&user.ID, &user.Email, &user.Password, &user.Name, &user.LastName,
		&user.DNI, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
}

// List returns every administrator ordered by creation time
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"role": models.RoleAdmin}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list users SQL")
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := scanUser(rows, user); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating user rows")
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.User, error) {
	where["role"] = models.RoleAdmin
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	if err := scanUser(r.db.QueryRow(ctx, sql, args...), user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

// GetByID retrieves an administrator by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves an administrator by email, password digest included
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// Create inserts an administrator. The ID is generated when empty.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return insertUser(ctx, r.db, r.sb, user)
}

func insertUser(ctx context.Context, q db.DBTX, sb squirrel.StatementBuilderType, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	sql, args, err := sb.Insert("users").
		Columns("id", "email", "password", "name", "last_name", "dni", "role", "is_active").
		Values(user.ID, user.Email, user.Password, user.Name, user.LastName, user.DNI, user.Role, user.IsActive).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// Update rewrites the mutable profile fields of an administrator
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Update("users").
		SetMap(map[string]interface{}{
			"email":      user.Email,
			"name":       user.Name,
			"last_name":  user.LastName,
			"dni":        user.DNI,
			"updated_at": time.Now().UTC(),
		}).
		Where(squirrel.Eq{"id": user.ID, "role": models.RoleAdmin}).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update user SQL")
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	if err := scanUser(r.db.QueryRow(ctx, sql, args...), user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		logger.Error().Err(err).Str("userID", user.ID).Msg("Error executing update user query")
		return fmt.Errorf("error updating user: %w", err)
	}
	return nil
}

// Delete removes an administrator and returns the deleted row
func (r *UserRepository) Delete(ctx context.Context, id string) (*models.User, error) {
	sql, args, err := r.sb.Delete("users").
		Where(squirrel.Eq{"id": id, "role": models.RoleAdmin}).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete user SQL")
		return nil, fmt.Errorf("failed to build delete user query: %w", err)
	}

	user := &models.User{}
	if err := scanUser(r.db.QueryRow(ctx, sql, args...), user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dberrors.ErrRecordToDeleteNotFound
		}
		logger.Error().Err(err).Str("userID", id).Msg("Error executing delete user query")
		return nil, fmt.Errorf("error deleting user: %w", err)
	}
	return user, nil
}

// EmailExists checks whether any user other than excludeID holds email
func (r *UserRepository) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	return exists(ctx, r.db, r.sb, "users", squirrel.Eq{"email": email}, excludeID)
}

// DNIExists checks whether any user other than excludeID holds dni
func (r *UserRepository) DNIExists(ctx context.Context, dni, excludeID string) (bool, error) {
	return exists(ctx, r.db, r.sb, "users", squirrel.Eq{"dni": dni}, excludeID)
}
