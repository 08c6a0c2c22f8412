package httperr

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberian-api/internal/infra/repository"
	"github.com/BruksfildServices01/barberian-api/internal/validators"
)

// Binding answers a failed ShouldBind* call: field errors become 422,
// anything else means the body could not be decoded.
func Binding(c *gin.Context, err error) {
	if fields, ok := validators.FormatValidationErrors(err); ok {
		Unprocessable(c, fields)
		return
	}
	BadRequest(c, "malformed_body", "Request body is not valid JSON.")
}

// Store answers a repository error for the named entity, e.g. "barber_schedule".
func Store(c *gin.Context, err error, entity string) {
	if errors.Is(err, repository.ErrNotFound) {
		NotFound(c, entity+"_not_found", humanize(entity)+" not found.")
		return
	}

	var ce *repository.ConstraintError
	if errors.As(err, &ce) {
		switch ce.Kind {
		case repository.ConstraintUnique:
			Conflict(c, "duplicate_value", "A record with the same unique value already exists.")
		case repository.ConstraintForeignKey:
			Conflict(c, "constraint_violation", "A referenced record does not exist or is still referenced.")
		default:
			Conflict(c, "constraint_violation", "The record violates a storage constraint.")
		}
		return
	}

	_ = c.Error(err)
	Internal(c, "internal_error", "Unexpected error while accessing "+strings.ReplaceAll(entity, "_", " ")+" records.")
}

func humanize(entity string) string {
	s := strings.ReplaceAll(entity, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
