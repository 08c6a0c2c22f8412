package validators

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barberian-api/internal/domain/appointment"
)

// FormatValidationErrors maps each offending field to what it violated.
// ok is false when err is not a field level error, e.g. broken JSON.
func FormatValidationErrors(err error) (fields map[string]string, ok bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields = make(map[string]string, len(verrs))
		for _, e := range verrs {
			fields[e.Field()] = describe(e)
		}
		return fields, true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return map[string]string{field: "must be of type " + typeErr.Type.String()}, true
	}

	return nil, false
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "email_domain":
		return "email domain does not accept mail"
	case "min":
		return "must be at least " + e.Param() + " characters"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "max_bytes":
		return "must be at most " + e.Param() + " bytes"
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case "datetime":
		return "must be a date formatted " + e.Param()
	case "clock":
		return "must be a time of day formatted HH:MM or HH:MM:SS"
	case "appointment_status":
		return "must be one of: " + appointment.OneOf()
	case "day_of_week":
		return "must be a lowercase day name (monday..sunday)"
	case "auth_provider":
		return "must be one of: local google"
	case "oneof":
		return "must be one of: " + e.Param()
	}
	return "is invalid"
}
