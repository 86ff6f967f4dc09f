package transmog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationErrors maps field ids to the validation failure for that field.
// It is an alias for [validation.Errors] from ozzo-validation and implements
// the error interface with a JSON-friendly string representation.
type ValidationErrors = validation.Errors

// Error templates for coercion failures. Params identify the offending
// field and value so callers can re-prompt without parsing messages.
var (
	errNotANumber = validation.NewError(
		"validation_not_a_number",
		"{{.value}} is not a number")
	errValueNotAllowed = validation.NewError(
		"validation_value_not_allowed",
		"value {{.value}} not allowed for {{.field}}")
	errMalformedList = validation.NewError(
		"validation_malformed_list",
		"malformed quoted list {{.value}} for {{.field}}")
)

func notAllowed(f *FieldMetadata, value string) error {
	return errValueNotAllowed.SetParams(map[string]any{
		"field": f.displayName(),
		"value": value,
	})
}
