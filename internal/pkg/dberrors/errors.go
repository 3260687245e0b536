package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// PostgreSQL error codes
const (
	UniqueViolationCode     = "23505"
	ForeignKeyViolationCode = "23503"
)

// ErrRecordToDeleteNotFound is returned by repositories when a delete targets a missing row.
var ErrRecordToDeleteNotFound = errors.New("record to delete does not exist")

// IsUniqueViolation checks if the error is a PostgreSQL unique violation error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolationCode
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == ForeignKeyViolationCode
}

// IsRecordToDeleteNotFound reports whether a delete hit no row.
func IsRecordToDeleteNotFound(err error) bool {
	return errors.Is(err, ErrRecordToDeleteNotFound)
}

// Fields returns the diagnostic fields of a store error, for pass-through in
// unhandled error responses. The Postgres code is reported as sqlState so it
// stays apart from the envelope's own code. Non-Postgres errors only expose
// their message.
func Fields(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return map[string]interface{}{"message": err.Error()}
	}

	fields := map[string]interface{}{
		"sqlState": pgErr.Code,
		"severity": pgErr.Severity,
		"message":  pgErr.Message,
	}
	if pgErr.Detail != "" {
		fields["detail"] = pgErr.Detail
	}
	if pgErr.TableName != "" {
		fields["table"] = pgErr.TableName
	}
	if pgErr.ColumnName != "" {
		fields["column"] = pgErr.ColumnName
	}
	if pgErr.ConstraintName != "" {
		fields["constraint"] = pgErr.ConstraintName
	}
	return fields
}
