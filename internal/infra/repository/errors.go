package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintCheck      ConstraintKind = "check"
)

// ConstraintError reports a write the store rejected for integrity reasons.
type ConstraintError struct {
	Kind       ConstraintKind
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s constraint %q violated", e.Kind, e.Constraint)
	}
	return fmt.Sprintf("%s constraint violated", e.Kind)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// classify maps driver errors onto ErrNotFound and *ConstraintError.
// Postgres errors keep their constraint name; other dialects go through
// gorm's translator and finally the sqlite message text.
func classify(db *gorm.DB, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return &ConstraintError{Kind: ConstraintUnique, Constraint: pgErr.ConstraintName, Err: err}
		case "23503":
			return &ConstraintError{Kind: ConstraintForeignKey, Constraint: pgErr.ConstraintName, Err: err}
		case "23514":
			return &ConstraintError{Kind: ConstraintCheck, Constraint: pgErr.ConstraintName, Err: err}
		}
		return err
	}

	translated := err
	if t, ok := db.Dialector.(gorm.ErrorTranslator); ok {
		translated = t.Translate(err)
	}
	switch {
	case errors.Is(translated, gorm.ErrDuplicatedKey):
		return &ConstraintError{Kind: ConstraintUnique, Err: err}
	case errors.Is(translated, gorm.ErrForeignKeyViolated):
		return &ConstraintError{Kind: ConstraintForeignKey, Err: err}
	case errors.Is(translated, gorm.ErrCheckConstraintViolated):
		return &ConstraintError{Kind: ConstraintCheck, Err: err}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return &ConstraintError{Kind: ConstraintUnique, Err: err}
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &ConstraintError{Kind: ConstraintForeignKey, Err: err}
	case strings.Contains(msg, "CHECK constraint failed"):
		return &ConstraintError{Kind: ConstraintCheck, Err: err}
	}
	return err
}
