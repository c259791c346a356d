package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/regform/pkg/validator"
)

const (
	phoneMessage = "Phone number must be 11 digit and bangladeshi number."
	ageMessage   = "Please enter a valid age."
)

func TestPattern_Phone(t *testing.T) {
	t.Parallel()

	rs := validator.MustRuleset(validator.Field("phone", "number",
		validator.Required(),
		validator.Pattern(`^01\d{9}$`).WithMessage(phoneMessage),
	))

	tests := []struct {
		value string
		valid bool
	}{
		{"01685970744", true},
		{"01000000000", true},
		{"1234567890", false},
		{"0168597074", false},
		{"016859707441", false},
		{"02685970744", false},
		{"+8801685970744", false},
		{"0168597074a", false},
		{" 01685970744", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			res := rs.Validate(validator.Record{"phone": tt.value})
			assert.Equal(t, tt.valid, res.IsValid())
			if !tt.valid {
				assert.Equal(t, phoneMessage, res.Message("phone"))
			}
		})
	}
}

func TestPattern_Age(t *testing.T) {
	t.Parallel()

	rs := validator.MustRuleset(validator.Field("age", "age",
		validator.Required(),
		validator.Pattern(`^(1[2-9]|[2-9]\d)$`).WithMessage(ageMessage),
	))

	tests := []struct {
		value string
		valid bool
	}{
		{"11", false},
		{"12", true},
		{"40", true},
		{"99", true},
		{"100", false},
		{"5", false},
		{"012", false},
		{"-12", false},
		{"4O", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			res := rs.Validate(validator.Record{"age": tt.value})
			assert.Equal(t, tt.valid, res.IsValid())
			if !tt.valid {
				assert.Equal(t, ageMessage, res.Message("age"))
			}
		})
	}
}

func TestPattern_FullMatch(t *testing.T) {
	t.Parallel()

	t.Run("unanchored expression must match the whole value", func(t *testing.T) {
		t.Parallel()
		rs := validator.MustRuleset(validator.Field("code", "code", validator.Pattern(`\d{3}`)))
		assert.True(t, rs.Validate(validator.Record{"code": "123"}).IsValid())
		assert.False(t, rs.Validate(validator.Record{"code": "a123b"}).IsValid())
		assert.False(t, rs.Validate(validator.Record{"code": "1234"}).IsValid())
	})

	t.Run("alternation cannot escape anchors", func(t *testing.T) {
		t.Parallel()
		rs := validator.MustRuleset(validator.Field("code", "code", validator.Pattern(`^a|b$`)))
		assert.True(t, rs.Validate(validator.Record{"code": "a"}).IsValid())
		assert.True(t, rs.Validate(validator.Record{"code": "b"}).IsValid())
		assert.False(t, rs.Validate(validator.Record{"code": "abc"}).IsValid())
	})

	t.Run("empty value fails a pattern without required", func(t *testing.T) {
		t.Parallel()
		rs := validator.MustRuleset(validator.Field("code", "code", validator.Pattern(`\d+`)))
		assert.False(t, rs.Validate(validator.Record{}).IsValid())
	})
}
