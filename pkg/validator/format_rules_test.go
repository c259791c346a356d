package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/regform/pkg/validator"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	rs := validator.MustRuleset(validator.Field("email", "email", validator.Email()))

	t.Run("valid emails", func(t *testing.T) {
		t.Parallel()
		validEmails := []string{
			"john@gmail.com",
			"test@example.com",
			"user.name@domain.co.uk",
			"user+tag@example.org",
			"firstname.lastname@company.com",
			"1234567890@example.com",
			"email@example-one.com",
			"_______@example.com",
			"email@example.name",
		}

		for _, email := range validEmails {
			assert.True(t, rs.Validate(validator.Record{"email": email}).IsValid(), "Email should be valid: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		t.Parallel()
		invalidEmails := []string{
			"",
			"   ",
			"plainaddress",
			"@missingdomain.com",
			"missing@.com",
			"missing@domain",
			"missing@domain.",
			"spaces @domain.com",
			"email @domain .com",
			"email..double.dot@domain.com",
			"email@domain..com",
			"John Doe <john@gmail.com>",
			"<john@gmail.com>",
			" john@gmail.com",
		}

		for _, email := range invalidEmails {
			res := rs.Validate(validator.Record{"email": email})
			assert.Equal(t, "This email field must be a valid email.", res.Message("email"), "Email should be invalid: %q", email)
		}
	})
}
