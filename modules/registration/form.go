package registration

import (
	"slices"

	"github.com/dmitrymomot/regform/pkg/validator"
)

// RedactedValue replaces secret values in Redacted records.
const RedactedValue = "[REDACTED]"

// Form is the bound registration form. Passwords are accepted from form
// bodies, JSON and files but never from the query string.
type Form struct {
	FullName        string `form:"fullName" query:"fullName" json:"fullName" yaml:"fullName"`
	Email           string `form:"email" query:"email" json:"email" yaml:"email"`
	Phone           string `form:"phone" query:"phone" json:"phone" yaml:"phone"`
	Age             string `form:"age" query:"age" json:"age" yaml:"age"`
	Password        string `form:"password" query:"-" json:"password" yaml:"password"`
	ConfirmPassword string `form:"confirmPassword" query:"-" json:"confirmPassword" yaml:"confirmPassword"`
}

// SampleForm returns the values used by the "Edit" pre-fill action.
func SampleForm() Form {
	return Form{
		FullName:        "John Doe",
		Email:           "john@gmail.com",
		Phone:           "01685970744",
		Age:             "40",
		Password:        "abc12345",
		ConfirmPassword: "abc12345",
	}
}

// EmptyForm returns a form with every value cleared.
func EmptyForm() Form {
	return Form{}
}

// Record converts the form into a validation record.
func (f Form) Record() validator.Record {
	return validator.Record{
		FieldFullName:        f.FullName,
		FieldEmail:           f.Email,
		FieldPhone:           f.Phone,
		FieldAge:             f.Age,
		FieldPassword:        f.Password,
		FieldConfirmPassword: f.ConfirmPassword,
	}
}

// Value returns the value of the named field, or "" for unknown names.
func (f Form) Value(field string) string {
	return f.Record().Get(field)
}

// Redacted returns the record with secret values masked. Empty secrets stay
// empty so logs still show what was missing.
func (f Form) Redacted() validator.Record {
	rec := f.Record()
	for field, value := range rec {
		if value != "" && slices.Contains(SecretFields, field) {
			rec[field] = RedactedValue
		}
	}
	return rec
}

// FormFromRecord builds a form from a record. Unknown keys are ignored.
func FormFromRecord(rec validator.Record) Form {
	return Form{
		FullName:        rec.Get(FieldFullName),
		Email:           rec.Get(FieldEmail),
		Phone:           rec.Get(FieldPhone),
		Age:             rec.Get(FieldAge),
		Password:        rec.Get(FieldPassword),
		ConfirmPassword: rec.Get(FieldConfirmPassword),
	}
}
