package validators

import (
	"context"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-todo-keeper/models"
)

const (
	// FieldUsername targets the login name.
	FieldUsername = "username"

	// FieldEmail targets the email address.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password.
	FieldPassword = "password"
)

const (
	minPasswordLength = 6
	maxPasswordBytes  = 72

	// users.email is VARCHAR(255); the local part limit is RFC 5321.
	maxEmailBytes      = 255
	maxEmailLocalBytes = 64
)

var (
	usernamePattern    = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,50}$`)
	emailDomainPattern = regexp.MustCompile(`^[^.\s]+(\.[^.\s]+)+$`)
)

// UserValidator implements [Validator] for registration and login payloads.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.RegisterRequest and models.LoginRequest (value or
// pointer). Login requests are only checked for presence.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if !usernamePattern.MatchString(req.Username) {
				return ErrInvalidUsername
			}
		case FieldEmail:
			if !isEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(req.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
			if len(req.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLogin(req models.LoginRequest) error {
	if req.Username == "" {
		return ErrInvalidUsername
	}
	if req.Password == "" {
		return ErrPasswordTooShort
	}
	return nil
}

// isEmail accepts a bare addr-spec with a dotted domain ("a@b.c") that fits
// the users.email column, rejecting display-name forms.
func isEmail(s string) bool {
	if len(s) > maxEmailBytes {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at > maxEmailLocalBytes {
		return false
	}
	return emailDomainPattern.MatchString(s[at+1:])
}
