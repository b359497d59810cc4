package validators

import (
	"context"

	"github.com/MKhiriev/go-user-admin/models"
)

// Field names accepted by [UserValidator.Validate]. They match the JSON
// names of [models.User].
const (
	FieldFirstName       = "firstName"
	FieldMiddleName      = "middleName"
	FieldLastName        = "lastName"
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// requiredUserFields is the default set checked by [UserValidator].
var requiredUserFields = []string{FieldFirstName, FieldLastName, FieldUsername, FieldPassword}

// UserValidator checks that the required record fields are non-empty. It
// deliberately does not enforce the length rules of the client form.
type UserValidator struct{}

// NewUserValidator constructs a new UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.User or *models.User. Without fields it checks
// firstName, lastName, username and password.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = requiredUserFields
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if user.FirstName == "" {
				return ErrFirstNameRequired
			}
		case FieldLastName:
			if user.LastName == "" {
				return ErrLastNameRequired
			}
		case FieldUsername:
			if user.Username == "" {
				return ErrUsernameRequired
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
