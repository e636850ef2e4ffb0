package recipes

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// firstFieldError maps the first failing field, in the given priority order,
// to its sentinel. Errors that are not validation errors pass through.
func firstFieldError(err error, order []string, sentinels map[string]error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	failed := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed[fe.StructField()] = true
	}
	for _, field := range order {
		if failed[field] {
			return sentinels[field]
		}
	}
	return err
}
