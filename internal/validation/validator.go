package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
)

type violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PayloadError contains all violations found in validated struct
type PayloadError struct {
	violations []violation
}

func (e *PayloadError) Error() string {
	msgs := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "\n")
}

// Violation appends violation
func (e *PayloadError) Violation(v violation) {
	e.violations = append(e.violations, v)
}

// Fields returns names of violated fields in order they were reported
func (e *PayloadError) Fields() []string {
	fields := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		fields = append(fields, v.Field)
	}
	return fields
}

// MarshalJSON implements json.Marshaler
func (e *PayloadError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Errors []violation `json:"errors"`
	}{
		Errors: e.violations,
	})
}

// Validator validates structs and translates violations into english messages
type Validator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// New builds Validator with english translations, field names are taken from form or json tags
func New() (*Validator, error) {
	enLocale := en.New()
	trans, ok := ut.New(enLocale, enLocale).GetTranslator("en")
	if !ok {
		return nil, errors.New("failed to build validator because of missing en translations")
	}

	v := validator.New()
	v.RegisterTagNameFunc(tagName)

	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("failed to register en translations - %w", err)
	}

	return &Validator{validator: v, translator: trans}, nil
}

// Validate implements echo.Validator
func (v *Validator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (v *Validator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{violations: make([]violation, 0)}
	for _, e := range ve {
		pldErr.Violation(violation{
			Field:   e.Field(),
			Message: e.Translate(v.translator),
		})
	}
	return pldErr
}

func tagName(fld reflect.StructField) string {
	for _, tag := range []string{"form", "json", "param"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}
