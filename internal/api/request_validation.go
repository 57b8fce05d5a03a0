package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/terraincognita07/cyclesense/internal/services"
)

func newRequestValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name, _, _ = strings.Cut(field.Tag.Get("query"), ",")
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = validate.RegisterValidation("activity_level", func(fl validator.FieldLevel) bool {
		return services.IsKnownActivityLevel(services.ActivityLevel(fl.Field().String()))
	})
	_ = validate.RegisterValidation("nutrition_goal", func(fl validator.FieldLevel) bool {
		return services.IsKnownNutritionGoal(services.NutritionGoal(fl.Field().String()))
	})
	_ = validate.RegisterValidation("weight_change", func(fl validator.FieldLevel) bool {
		return services.IsValidWeightChange(normalizedEnum(fl))
	})
	_ = validate.RegisterValidation("sleep_issue", func(fl validator.FieldLevel) bool {
		return services.IsValidSleepIssue(normalizedEnum(fl))
	})
	return validate
}

func normalizedEnum(fl validator.FieldLevel) string {
	return strings.ToLower(strings.TrimSpace(fl.Field().String()))
}

// validationMessage reports the first failing field in a client-facing form.
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "invalid input"
	}

	fieldError := validationErrors[0]
	field := fieldPath(fieldError)
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min", "gte":
		if fieldError.Kind() == reflect.Slice {
			return fmt.Sprintf("%s needs at least %s entries", field, fieldError.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fieldError.Param())
	case "max", "lte":
		if fieldError.Kind() == reflect.Slice || fieldError.Kind() == reflect.String {
			return fmt.Sprintf("%s is too long", field)
		}
		return fmt.Sprintf("%s must be at most %s", field, fieldError.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fieldError.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a YYYY-MM-DD date", field)
	case "email":
		return "invalid email"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// fieldPath drops the request struct name from the namespace, keeping
// nested paths like symptoms.cramps or past_cycles[2].
func fieldPath(fieldError validator.FieldError) string {
	namespace := fieldError.Namespace()
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}
	return fieldError.Field()
}
