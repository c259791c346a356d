package registration

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/regform/pkg/validator"
)

// ErrIncompatibleRuleset is returned for a ruleset whose fields differ from the
// registration form inputs.
var ErrIncompatibleRuleset = errors.New("ruleset does not match the registration form fields")

// Field names, shared by the HTML form, the JSON API and record files.
const (
	FieldFullName        = "fullName"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldAge             = "age"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

const (
	PhonePattern = `^01\d{9}$`
	AgePattern   = `^(1[2-9]|[2-9]\d)$`

	PhoneMessage         = "Phone number must be 11 digit and bangladeshi number."
	AgeMessage           = "Please enter a valid age."
	PasswordMinMessage   = "Password must be at least 8 character."
	PasswordMatchMessage = "Password and confirm password doesn't match"

	PasswordMinLength = 8
	PasswordMaxLength = 20
)

var rules = validator.MustRuleset(
	validator.Field(FieldFullName, "full name", validator.Required()),
	validator.Field(FieldEmail, "email", validator.Required(), validator.Email()),
	validator.Field(FieldPhone, "number",
		validator.Required(),
		validator.Pattern(PhonePattern).WithMessage(PhoneMessage),
	),
	validator.Field(FieldAge, "age",
		validator.Required(),
		validator.Pattern(AgePattern).WithMessage(AgeMessage),
	),
	validator.Field(FieldPassword, "password",
		validator.Required(),
		validator.MinLen(PasswordMinLength).WithMessage(PasswordMinMessage),
		validator.MaxLen(PasswordMaxLength),
	),
	validator.Field(FieldConfirmPassword, "confirm password",
		validator.Required(),
		validator.EqualsField(FieldPassword).WithMessage(PasswordMatchMessage),
	),
)

// Ruleset returns the built-in registration rules. The value is shared and
// read-only.
func Ruleset() *validator.Ruleset {
	return rules
}

// CheckRuleset reports whether rs declares exactly the form fields, in any
// order. The form renders a fixed set of inputs, so a field it cannot show
// would block every submit without a visible message.
func CheckRuleset(rs *validator.Ruleset) error {
	if rs == nil {
		return fmt.Errorf("%w: nil ruleset", ErrIncompatibleRuleset)
	}
	declared := rs.Fields()

	var missing, extra []string
	for _, name := range FieldNames() {
		if !slices.Contains(declared, name) {
			missing = append(missing, name)
		}
	}
	for _, name := range declared {
		if !slices.Contains(FieldNames(), name) {
			extra = append(extra, name)
		}
	}

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, "missing "+strings.Join(missing, ", "))
	}
	if len(extra) > 0 {
		problems = append(problems, "unknown "+strings.Join(extra, ", "))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrIncompatibleRuleset, strings.Join(problems, "; "))
	}
	return nil
}

// FieldNames returns the record keys in declaration order.
func FieldNames() []string {
	return []string{FieldFullName, FieldEmail, FieldPhone, FieldAge, FieldPassword, FieldConfirmPassword}
}

// Input describes how a field is rendered.
type Input struct {
	Name        string
	Type        string
	Placeholder string
	Icon        string
}

// Inputs lists the form inputs in display order. Age is shown last, after
// the password pair.
func Inputs() []Input {
	return []Input{
		{Name: FieldFullName, Type: "text", Placeholder: "Enter your full name", Icon: "fa-user"},
		{Name: FieldEmail, Type: "email", Placeholder: "Enter your email", Icon: "fa-envelope"},
		{Name: FieldPhone, Type: "tel", Placeholder: "Enter your number", Icon: "fa-phone"},
		{Name: FieldPassword, Type: "password", Placeholder: "Enter password", Icon: "fa-lock"},
		{Name: FieldConfirmPassword, Type: "password", Placeholder: "Confirm password", Icon: "fa-key"},
		{Name: FieldAge, Type: "text", Placeholder: "Enter your age", Icon: "fa-user"},
	}
}

// SecretFields are never echoed back in logs or query strings.
var SecretFields = []string{FieldPassword, FieldConfirmPassword}
