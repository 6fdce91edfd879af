// Package validate maps raw form input to validated create payloads or
// field-level error messages. No partial success: any failing field
// withholds the whole payload.
package validate

import (
	"errors"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"talentboard/internal/hiring"
)

// FieldErrors maps a form field name to an ordered list of
// human-readable error messages.
type FieldErrors map[string][]string

// Add appends a message for the given field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Has reports whether the field has at least one error.
func (f FieldErrors) Has(field string) bool {
	return len(f[field]) > 0
}

// First returns the first message for the field, or "".
func (f FieldErrors) First(field string) string {
	if msgs := f[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

var vd = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type companyForm struct {
	Name        string `form:"name" validate:"min=2"`
	Description string `form:"description" validate:"min=10"`
}

var companyMessages = map[string]string{
	"name":        "El nombre debe tener al menos 2 caracteres.",
	"description": "La descripción debe tener al menos 10 caracteres.",
}

// Company validates the company create form.
func Company(form url.Values) (*hiring.CompanyCreate, FieldErrors) {
	input := companyForm{
		Name:        form.Get("name"),
		Description: form.Get("description"),
	}
	if err := vd.Struct(input); err != nil {
		return nil, collect(err, companyMessages)
	}
	return &hiring.CompanyCreate{
		Name:        input.Name,
		Description: input.Description,
	}, nil
}

type offerForm struct {
	Title       string `form:"title" validate:"min=5"`
	Description string `form:"description" validate:"min=10"`
	CompanyID   int    `form:"company_id" validate:"min=1"`
}

var offerMessages = map[string]string{
	"title":       "El título debe tener al menos 5 caracteres.",
	"description": "La descripción debe tener al menos 10 caracteres.",
	"company_id":  "Debes seleccionar una empresa.",
}

// Offer validates the offer create form. The company selector arrives
// as a string and is coerced to a positive number.
func Offer(form url.Values) (*hiring.OfferCreate, FieldErrors) {
	input := offerForm{
		Title:       form.Get("title"),
		Description: form.Get("description"),
	}

	companyID, convErr := strconv.Atoi(strings.TrimSpace(form.Get("company_id")))
	if convErr == nil {
		input.CompanyID = companyID
	}

	err := vd.Struct(input)
	if err == nil && convErr == nil {
		return &hiring.OfferCreate{
			Title:       input.Title,
			Description: input.Description,
			CompanyID:   input.CompanyID,
		}, nil
	}

	fieldErrs := FieldErrors{}
	if err != nil {
		fieldErrs = collect(err, offerMessages)
	}
	if convErr != nil && !fieldErrs.Has("company_id") {
		fieldErrs.Add("company_id", offerMessages["company_id"])
	}
	return nil, fieldErrs
}

type candidateForm struct {
	FullName string `form:"nombre_completo" validate:"min=2"`
	Email    string `form:"correo" validate:"required,email"`
	Phone    string `form:"telefono" validate:"-"`
	LinkedIn string `form:"linkedin" validate:"omitempty,url"`
}

var candidateMessages = map[string]string{
	"nombre_completo": "El nombre debe tener al menos 2 caracteres.",
	"correo":          "Por favor, introduce un email válido.",
	"linkedin":        "Debes ingresar un URL válido de LinkedIn.",
}

// Candidate validates the candidate create form. Phone is an optional
// passthrough; linkedin must be a valid URL when present.
func Candidate(form url.Values) (*hiring.CandidateCreate, FieldErrors) {
	input := candidateForm{
		FullName: form.Get("nombre_completo"),
		Email:    form.Get("correo"),
		Phone:    form.Get("telefono"),
		LinkedIn: form.Get("linkedin"),
	}
	if err := vd.Struct(input); err != nil {
		return nil, collect(err, candidateMessages)
	}

	payload := &hiring.CandidateCreate{
		FullName: input.FullName,
		Email:    input.Email,
	}
	if input.Phone != "" {
		payload.Phone = &input.Phone
	}
	if input.LinkedIn != "" {
		payload.LinkedIn = &input.LinkedIn
	}
	return payload, nil
}

func collect(err error, messages map[string]string) FieldErrors {
	fieldErrs := FieldErrors{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrs.Add("form", "Datos del formulario inválidos.")
		return fieldErrs
	}

	for _, fe := range verrs {
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = "Valor inválido."
		}
		fieldErrs.Add(fe.Field(), msg)
	}
	return fieldErrs
}
