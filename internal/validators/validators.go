package validators

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barberian-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barberian-api/internal/domain/identity"
	"github.com/BruksfildServices01/barberian-api/internal/domain/schedule"
	"github.com/BruksfildServices01/barberian-api/internal/models"
)

// Options toggles validations that reach outside the process.
type Options struct {
	CheckEmailDomain bool
}

// RegisterGin installs the custom tags on gin's shared validator.
func RegisterGin(opts Options) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return Register(v, opts)
}

// Register reports fields by their json names and adds the custom tags
// clock, appointment_status, day_of_week, auth_provider, email_domain and
// max_bytes.
func Register(v *validator.Validate, opts Options) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	tags := map[string]validator.Func{
		"clock": func(fl validator.FieldLevel) bool {
			_, err := models.ParseClock(fl.Field().String())
			return err == nil
		},
		"appointment_status": func(fl validator.FieldLevel) bool {
			return appointment.Status(fl.Field().String()).Valid()
		},
		"day_of_week": func(fl validator.FieldLevel) bool {
			return schedule.DayOfWeek(fl.Field().String()).Valid()
		},
		"auth_provider": func(fl validator.FieldLevel) bool {
			return identity.ProviderKind(fl.Field().String()).Valid()
		},
		"email_domain": func(fl validator.FieldLevel) bool {
			if !opts.CheckEmailDomain {
				return true
			}
			return IsEmailDomainValid(fl.Field().String())
		},
		// max counts runes; max_bytes counts the encoded length
		"max_bytes": func(fl validator.FieldLevel) bool {
			limit, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return len(fl.Field().String()) <= limit
		},
	}

	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}
