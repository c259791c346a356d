package validator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/pkg/validator"
)

func signupRules(t *testing.T) *validator.Ruleset {
	t.Helper()
	rs, err := validator.NewRuleset(
		validator.Field("fullName", "full name", validator.Required()),
		validator.Field("email", "email", validator.Required(), validator.Email()),
		validator.Field("phone", "number",
			validator.Required(),
			validator.Pattern(`^01\d{9}$`).WithMessage(phoneMessage),
		),
		validator.Field("age", "age",
			validator.Required(),
			validator.Pattern(`^(1[2-9]|[2-9]\d)$`).WithMessage(ageMessage),
		),
		validator.Field("password", "password",
			validator.Required(),
			validator.MinLen(8).WithMessage("Password must be at least 8 character."),
			validator.MaxLen(20),
		),
		validator.Field("confirmPassword", "confirm password",
			validator.Required(),
			validator.EqualsField("password").WithMessage("Password and confirm password doesn't match"),
		),
	)
	require.NoError(t, err)
	return rs
}

func sampleRecord() validator.Record {
	return validator.Record{
		"fullName":        "John Doe",
		"email":           "john@gmail.com",
		"phone":           "01685970744",
		"age":             "40",
		"password":        "abc12345",
		"confirmPassword": "abc12345",
	}
}

func TestSignupForm(t *testing.T) {
	t.Parallel()
	rs := signupRules(t)

	t.Run("complete record is valid", func(t *testing.T) {
		t.Parallel()
		res := rs.Validate(sampleRecord())
		assert.True(t, res.IsValid())
		assert.Empty(t, res.Messages())
	})

	t.Run("empty record reports required message per field", func(t *testing.T) {
		t.Parallel()
		res := rs.Validate(validator.Record{})
		assert.Equal(t, map[string]string{
			"fullName":        "This full name field is required.",
			"email":           "This email field is required.",
			"phone":           "This number field is required.",
			"age":             "This age field is required.",
			"password":        "This password field is required.",
			"confirmPassword": "This confirm password field is required.",
		}, res.Messages())
		assert.Equal(t, rs.Fields(), res.Invalid())
	})

	t.Run("each field fails independently", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			field   string
			value   string
			message string
		}{
			{"email", "john@gmail", "This email field must be a valid email."},
			{"phone", "1234567890", phoneMessage},
			{"age", "11", ageMessage},
			{"age", "100", ageMessage},
			{"password", "abc", "Password must be at least 8 character."},
			{"confirmPassword", "abc1234", "Password and confirm password doesn't match"},
		}
		for _, tt := range tests {
			t.Run(tt.field+"="+tt.value, func(t *testing.T) {
				t.Parallel()
				rec := sampleRecord()
				rec[tt.field] = tt.value
				res := rs.Validate(rec)
				assert.Equal(t, map[string]string{tt.field: tt.message}, res.Messages())
			})
		}
	})

	t.Run("validation is idempotent", func(t *testing.T) {
		t.Parallel()
		rec := validator.Record{"phone": "123", "password": "abc12345", "confirmPassword": "x"}
		assert.Equal(t, rs.Validate(rec), rs.Validate(rec))
	})

	t.Run("record key order does not matter", func(t *testing.T) {
		t.Parallel()
		a := validator.Record{}
		b := validator.Record{}
		keys := rs.Fields()
		for i, k := range keys {
			a[k] = sampleRecord()[k]
			rev := keys[len(keys)-1-i]
			b[rev] = sampleRecord()[rev]
		}
		a["age"], b["age"] = "7", "7"
		assert.Equal(t, rs.Validate(a).Messages(), rs.Validate(b).Messages())
	})

	t.Run("ruleset is safe for concurrent use", func(t *testing.T) {
		t.Parallel()
		var wg sync.WaitGroup
		for i := range 32 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				rec := sampleRecord()
				if i%2 == 0 {
					rec["phone"] = "123"
				}
				res := rs.Validate(rec)
				assert.Equal(t, i%2 != 0, res.IsValid())
			}(i)
		}
		wg.Wait()
	})
}
