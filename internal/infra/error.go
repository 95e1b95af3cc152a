package infra

import (
	"errors"

	"flashbooth/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string // populated for constraint violations
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err into a RepositoryError. Without an explicit kind
// the Postgres error code decides: no rows → NOT_FOUND, 23505 → DUPLICATE_KEY,
// 23503 → FOREIGN_KEY_VIOLATED, anything else → DB_FAILURE.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := KindDBFailure
	constraint := ""

	if len(kinds) > 0 {
		kind = kinds[0]
	} else if err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			kind = KindNotFound
		case errors.As(err, &pgErr):
			switch pgErr.Code {
			case pgUniqueViolation:
				kind = KindDuplicateKey
				constraint = pgErr.ConstraintName
			case pgForeignKeyViolation:
				kind = KindForeignKeyViolated
				constraint = pgErr.ConstraintName
			}
		}
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, Constraint: constraint, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ConstraintName reports which constraint a DUPLICATE_KEY or
// FOREIGN_KEY_VIOLATED error tripped, if the driver exposed it.
func ConstraintName(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}
