package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":         "{field} is required",
	"required_without": "{field} is required when {param} is absent",
	"gte":              "{field} must be greater than or equal to {param}",
	"lte":              "{field} must be less than or equal to {param}",
	"gt":               "{field} must be greater than {param}",
	"min":              "{field} must be at least {param} characters",
	"max":              "{field} must be at most {param} characters",
	"oneof":            "{field} must be one of {param}",
	"nefield":          "{field} must differ from {param}",
	"email":            "{field} must be a valid email address",
	"date":             "{field} must be a date in YYYY-MM-DD format",
	"uuid":             "{field} must be a valid UUID",
	"empty":            "{field} must be empty",
}

// message renders every field violation, joined by "; ".
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			parts = append(parts, valErr.Error())

			continue
		}

		parts = append(parts, strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(template))
	}

	return strings.Join(parts, "; ")
}
