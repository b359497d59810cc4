package validators

import (
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-user-admin/models"
)

const (
	minPasswordLength      = 8
	maxPasswordLength      = 12
	maxFormUsernameLength  = 20
	minLoginUsernameLength = 3
)

// Form messages shown next to the offending field.
const (
	MsgFirstNameRequired = "First Name is required"
	MsgLastNameRequired  = "Last Name is required"
	MsgUsernameRequired  = "Username is required"
	MsgPasswordRequired  = "Password is required"
	MsgPasswordsMismatch = "Passwords must match"
	MsgPasswordLength    = "Password must be between 8 and 12 characters"
	MsgUsernameTooLong   = "Username must be 20 characters or less"
)

// Login screen messages.
const (
	MsgLoginUsernameRequired = "Username is required."
	MsgLoginUsernameShort    = "Username should be at least 3 characters long."
	MsgLoginUsernameSpaces   = "Username should not contain spaces."
	MsgLoginPasswordRequired = "Password is required."
	MsgLoginPasswordLength   = "Password should be between 8 and 12 characters."
	MsgLoginPasswordSpaces   = "Password should not contain spaces."
)

// FormErrors maps a form field name to its message. An empty map means the
// form is valid.
type FormErrors map[string]string

// Valid reports whether no field failed.
func (e FormErrors) Valid() bool {
	return len(e) == 0
}

// ValidateUserForm checks the record form. Length rules are applied only to
// non-empty values, so an empty password reports "required" rather than a
// length error. A password/confirmation mismatch is always reported.
func ValidateUserForm(form models.UserForm) FormErrors {
	errs := make(FormErrors)

	if form.FirstName == "" {
		errs[FieldFirstName] = MsgFirstNameRequired
	}
	if form.LastName == "" {
		errs[FieldLastName] = MsgLastNameRequired
	}
	if form.Username == "" {
		errs[FieldUsername] = MsgUsernameRequired
	}
	if form.Password == "" {
		errs[FieldPassword] = MsgPasswordRequired
	}
	if form.Password != form.ConfirmPassword {
		errs[FieldConfirmPassword] = MsgPasswordsMismatch
	}

	if n := utf8.RuneCountInString(form.Password); form.Password != "" && (n < minPasswordLength || n > maxPasswordLength) {
		errs[FieldPassword] = MsgPasswordLength
	}

	if form.Username != "" && utf8.RuneCountInString(form.Username) > maxFormUsernameLength {
		errs[FieldUsername] = MsgUsernameTooLong
	}

	return errs
}

// ValidateLoginUsername returns the first failing login username rule, or
// an empty string.
func ValidateLoginUsername(username string) string {
	switch {
	case username == "":
		return MsgLoginUsernameRequired
	case utf8.RuneCountInString(username) < minLoginUsernameLength:
		return MsgLoginUsernameShort
	case strings.Contains(username, " "):
		return MsgLoginUsernameSpaces
	}
	return ""
}

// ValidateLoginPassword returns the first failing login password rule, or
// an empty string.
func ValidateLoginPassword(password string) string {
	n := utf8.RuneCountInString(password)
	switch {
	case password == "":
		return MsgLoginPasswordRequired
	case n < minPasswordLength || n > maxPasswordLength:
		return MsgLoginPasswordLength
	case strings.Contains(password, " "):
		return MsgLoginPasswordSpaces
	}
	return ""
}

// ValidateLoginForm combines both login checks. When both fail the messages
// are joined with a single space.
func ValidateLoginForm(username, password string) string {
	usernameErr := ValidateLoginUsername(username)
	passwordErr := ValidateLoginPassword(password)

	switch {
	case usernameErr != "" && passwordErr != "":
		return usernameErr + " " + passwordErr
	case usernameErr != "":
		return usernameErr
	default:
		return passwordErr
	}
}
