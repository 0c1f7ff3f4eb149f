package employee

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	maxNameLength     = 50
	minPasswordLength = 6
)

const (
	MsgFirstNameRequired = "First name is required."
	MsgFirstNameTooLong  = "First name must not exceed 50 characters."
	MsgLastNameRequired  = "Last name is required."
	MsgLastNameTooLong   = "Last name must not exceed 50 characters."
	MsgEmailEmpty        = "Email address cannot be empty."
	MsgEmailInvalid      = "Invalid email address format."
	MsgPasswordRequired  = "Password is required."
	MsgPasswordTooShort  = "Password must be at least 6 characters long."
	MsgDocumentEmpty     = "Document number cannot be empty."
	MsgDocumentInvalid   = "Document number must be in the format XXX.XXX.XXX-XX."
	MsgPhoneEmpty        = "Phone number cannot be empty"
	MsgPhoneInvalid      = "Invalid phone number format"
	MsgEmployeeUnderage  = "Employee must be at least 18 years old."
)

var syntax = validator.New()

// ValidateEmployee runs every field rule in order and returns all violations.
// Every check of a field runs, so an empty value can fail both its presence
// and its format check.
func ValidateEmployee(e *Employee) []string {
	var out []string
	add := func(msgs ...string) {
		for _, msg := range msgs {
			if msg != "" {
				out = append(out, msg)
			}
		}
	}

	add(nameRule(e.FirstName, MsgFirstNameRequired, MsgFirstNameTooLong)...)
	add(nameRule(e.LastName, MsgLastNameRequired, MsgLastNameTooLong)...)
	add(emailRule(e.Email)...)
	add(passwordRule(e.Password)...)
	add(documentRule(e.Document)...)
	for _, p := range e.Phones {
		add(phoneRule(p)...)
	}
	return out
}

func passwordRule(password string) []string {
	return []string{
		check(strings.TrimSpace(password) == "", MsgPasswordRequired),
		check(utf8.RuneCountInString(password) < minPasswordLength, MsgPasswordTooShort),
	}
}

func nameRule(v, required, tooLong string) []string {
	return []string{
		check(strings.TrimSpace(v) == "", required),
		check(utf8.RuneCountInString(v) > maxNameLength, tooLong),
	}
}

func emailRule(e Email) []string {
	return []string{
		check(strings.TrimSpace(e.Address) == "", MsgEmailEmpty),
		check(syntax.Var(e.Address, "email") != nil, MsgEmailInvalid),
	}
}

func documentRule(d Document) []string {
	return []string{
		check(strings.TrimSpace(d.Number) == "", MsgDocumentEmpty),
		check(!DocumentPattern.MatchString(d.Number), MsgDocumentInvalid),
	}
}

func phoneRule(p Phone) []string {
	return []string{
		check(strings.TrimSpace(p.Number) == "", MsgPhoneEmpty),
		check(!phonePattern.MatchString(p.Number), MsgPhoneInvalid),
	}
}

func check(failed bool, msg string) string {
	if failed {
		return msg
	}
	return ""
}
