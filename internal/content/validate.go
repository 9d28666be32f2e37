package content

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schema string

// ValidationError lists every problem found in a bundle.
type ValidationError struct {
	Language Language
	Errors   []FieldError
}

// FieldError is a single problem at a field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("bundle %s is invalid:\n", ve.Language))
	for i, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}

var validate = validator.New()

// Validate checks the embedded bundle for lang against the bundle schema and the
// field rules on Portfolio.
func Validate(lang Language) error {
	raw, err := Raw(lang)
	if err != nil {
		return fmt.Errorf("read %s bundle: %w", lang, err)
	}
	return ValidateBundle(lang, raw)
}

// ValidateAll validates every supported bundle and joins the failures.
func ValidateAll() error {
	var errs []error
	for _, lang := range Languages {
		if err := Validate(lang); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ValidateBundle checks raw bundle bytes. The schema forbids extra fields and
// requires every field but github, so both languages share one shape.
func ValidateBundle(lang Language, raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("validate %s bundle: %w", lang, err)
	}

	ve := &ValidationError{Language: lang}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	if len(ve.Errors) > 0 {
		return ve
	}

	p, err := Decode(raw)
	if err != nil {
		return err
	}
	if err := validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate %s bundle: %w", lang, err)
		}
		for _, fe := range fieldErrs {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   fe.Namespace(),
				Message: fmt.Sprintf("failed %q rule", fe.Tag()),
			})
		}
		return ve
	}
	return nil
}
