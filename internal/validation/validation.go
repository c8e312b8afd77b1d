// Package validation implements the format checks the login form runs before
// anything is sent to the authentication backend.
package validation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/loginform/internal/domain"
)

// User-facing messages, one per failing rule.
const (
	MsgEmailRequired    = "Email is required."
	MsgEmailInvalid     = "Enter a valid email address."
	MsgPasswordRequired = "Password is required."
	MsgPasswordPolicy   = "Password must be at least 8 characters with uppercase, number, and special character."
)

// Field names used in FieldErrors and *domain.ValidationError.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// whitespace is the set of characters treated as blank, both when trimming
// and inside the email shape check. It is wider than regexp's \s: it also
// covers \v, NBSP, the Unicode space separators and the BOM.
const whitespace = `\s\x{0B}\x{A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

const passwordSpecials = "@$!%*?&"

var (
	emailPattern = regexp.MustCompile(`^[^@` + whitespace + `]+@[^@` + whitespace + `]+\.[^@` + whitespace + `]+$`)

	passwordCharset = regexp.MustCompile(`^[A-Za-z0-9@$!%*?&]{8,}$`)
	hasLower        = regexp.MustCompile(`[a-z]`)
	hasUpper        = regexp.MustCompile(`[A-Z]`)
	hasDigit        = regexp.MustCompile(`[0-9]`)
	hasSpecial      = regexp.MustCompile(`[` + regexp.QuoteMeta(passwordSpecials) + `]`)
)

// Input is the pair of values checked on submit. Each field is checked
// independently; within a field the first failing tag wins.
type Input struct {
	Email    string `validate:"notblank,looseemail"`
	Password string `validate:"notblank,passwordpolicy"`
}

// messages maps "<StructField>.<tag>" to the message shown next to the field.
var messages = map[string]string{
	"Email.notblank":          MsgEmailRequired,
	"Email.looseemail":        MsgEmailInvalid,
	"Password.notblank":       MsgPasswordRequired,
	"Password.passwordpolicy": MsgPasswordPolicy,
}

// FieldErrors holds one message per field. An empty string means the field passed.
type FieldErrors struct {
	Email    string
	Password string
}

// Empty reports whether both fields passed.
func (e FieldErrors) Empty() bool {
	return e.Email == "" && e.Password == ""
}

// Err returns the failures as a joined error of *domain.ValidationError
// values, or nil when both fields passed.
func (e FieldErrors) Err() error {
	var errs []error
	if e.Email != "" {
		errs = append(errs, &domain.ValidationError{Field: FieldEmail, Message: e.Email})
	}
	if e.Password != "" {
		errs = append(errs, &domain.ValidationError{Field: FieldPassword, Message: e.Password})
	}
	return errors.Join(errs...)
}

// validate is safe for concurrent use once the custom tags are registered.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	must(v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return !IsBlank(fl.Field().String())
	}))
	must(v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	}))
	must(v.RegisterValidation("passwordpolicy", func(fl validator.FieldLevel) bool {
		return ValidPassword(fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Validate checks both fields and returns every failure found.
func Validate(in Input) FieldErrors {
	var out FieldErrors

	err := validate.Struct(in)
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable if Input stops being a struct.
		panic(err)
	}
	for _, fe := range verrs {
		msg := messages[fe.StructField()+"."+fe.Tag()]
		switch fe.StructField() {
		case "Email":
			out.Email = msg
		case "Password":
			out.Password = msg
		}
	}
	return out
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, isSpace) == ""
}

// ValidEmail is a loose shape check: something@something.something with no
// whitespace and no extra '@'. It is not RFC 5322.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPassword reports whether s is at least 8 characters drawn only from
// letters, digits and @$!%*?&, with at least one of each of lowercase,
// uppercase, digit and special.
func ValidPassword(s string) bool {
	return passwordCharset.MatchString(s) &&
		hasLower.MatchString(s) &&
		hasUpper.MatchString(s) &&
		hasDigit.MatchString(s) &&
		hasSpecial.MatchString(s)
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}
