package customer

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// whitespace is the class of characters treated as whitespace by the shape
// rules: ASCII whitespace including \v, Unicode separators, and U+FEFF.
// RE2's \s and \S cover ASCII only.
const whitespace = `\t\n\v\f\r\p{Z}\x{FEFF}`

var (
	emailPattern = regexp.MustCompile(`^[^` + whitespace + `]+@[^` + whitespace + `]+\.[^` + whitespace + `]+$`)
	phonePattern = regexp.MustCompile(`^[0-9()+\-.` + whitespace + `]{7,}$`)
)

// minPhoneDigits is the minimum number of digit characters in a phone number.
const minPhoneDigits = 10

// Result is the outcome of validating a draft.
type Result struct {
	Valid  bool
	Errors FieldErrors
}

// draftInput is the tagged shape the validator checks. Values are trimmed
// before validation. validator stops at the first failing tag of a field, so
// phoneshape and phonedigits never both report.
type draftInput struct {
	Name  string `validate:"required"`
	Phone string `validate:"omitempty,phoneshape,phonedigits"`
	Email string `validate:"omitempty,emailshape"`
}

// tagMessages maps a failing validation tag to its inline message.
var tagMessages = map[string]string{
	"required":    MsgNameRequired,
	"phoneshape":  MsgPhoneInvalid,
	"phonedigits": MsgPhoneDigits,
	"emailshape":  MsgEmailInvalid,
}

// Validator checks draft fields against the record format rules.
type Validator struct {
	v *validator.Validate
}

// NewValidator creates a Validator with the customer rules registered.
// Panics if a rule cannot be registered (programmer error).
func NewValidator() *Validator {
	v := validator.New()
	rules := map[string]validator.Func{
		"phoneshape": func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		},
		"phonedigits": func(fl validator.FieldLevel) bool {
			return countDigits(fl.Field().String()) >= minPhoneDigits
		},
		"emailshape": func(fl validator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic("customer: registering " + tag + ": " + err.Error())
		}
	}
	return &Validator{v: v}
}

// Validate checks the trimmed draft fields and returns every field error.
func (val *Validator) Validate(f Fields) Result {
	f = f.Trimmed()
	err := val.v.Struct(draftInput{Name: f.Name, Phone: f.Phone, Email: f.Email})
	if err == nil {
		return Result{Valid: true}
	}

	var res Result
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable for a non-struct input; treat the name as the culprit.
		res.Errors.Name = MsgNameRequired
		return res
	}
	for _, fe := range verrs {
		msg := tagMessages[fe.Tag()]
		switch fe.StructField() {
		case "Name":
			res.Errors.Name = msg
		case "Phone":
			res.Errors.Phone = msg
		case "Email":
			res.Errors.Email = msg
		}
	}
	return res
}

var defaultValidator = NewValidator()

// Validate checks f with the shared Validator.
func Validate(f Fields) Result {
	return defaultValidator.Validate(f)
}

// countDigits returns the number of ASCII digits in s.
func countDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}
