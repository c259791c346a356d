package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CheckKind names a single atomic validation condition.
type CheckKind string

const (
	KindRequired    CheckKind = "required"
	KindPattern     CheckKind = "pattern"
	KindMinLength   CheckKind = "length-min"
	KindMaxLength   CheckKind = "length-max"
	KindEqualsField CheckKind = "equals-field"
	KindEmail       CheckKind = "email-format"
)

// Default message templates. {field} is replaced with the field label,
// {min} and {max} with the length bound, {other} with the referenced field label.
var defaultMessages = map[CheckKind]string{
	KindRequired:    "This {field} field is required.",
	KindPattern:     "This {field} field is invalid.",
	KindMinLength:   "This {field} field must be at least {min} characters.",
	KindMaxLength:   "This {field} field must be at most {max} characters.",
	KindEqualsField: "This {field} field must match {other}.",
	KindEmail:       "This {field} field must be a valid email.",
}

// Kinds returns every check kind the engine understands.
func Kinds() []CheckKind {
	return []CheckKind{KindRequired, KindPattern, KindMinLength, KindMaxLength, KindEqualsField, KindEmail}
}

// DefaultMessage returns the message template used when a check has no Message.
func DefaultMessage(kind CheckKind) string {
	return defaultMessages[kind]
}

// Check is one validation condition applied to a field value.
// Only the parameter matching Kind is read: Pattern for pattern checks,
// Bound for length checks and Field for equals-field.
type Check struct {
	Kind    CheckKind
	Pattern string
	Bound   int
	Field   string
	Message string

	re  *regexp.Regexp
	msg string
}

// Required fails on an empty value.
func Required() Check {
	return Check{Kind: KindRequired}
}

// Pattern fails unless the whole value matches expr.
func Pattern(expr string) Check {
	return Check{Kind: KindPattern, Pattern: expr}
}

// MinLen fails when the value has fewer than n characters.
func MinLen(n int) Check {
	return Check{Kind: KindMinLength, Bound: n}
}

// MaxLen fails when the value has more than n characters.
func MaxLen(n int) Check {
	return Check{Kind: KindMaxLength, Bound: n}
}

// Email fails unless the value is a local@domain address with a dotted domain.
func Email() Check {
	return Check{Kind: KindEmail}
}

// EqualsField fails unless the value equals the value of another field.
func EqualsField(field string) Check {
	return Check{Kind: KindEqualsField, Field: field}
}

// WithMessage overrides the default message template. The message is a
// template too: {field}, {min}, {max} and {other} are expanded in it, so a
// literal brace pair naming one of them cannot be shown.
func (c Check) WithMessage(msg string) Check {
	c.Message = msg
	return c
}

// compile validates the check parameters and prepares it for evaluation.
// field is the name of the rule owning the check.
func (c Check) compile(field string) (Check, error) {
	switch c.Kind {
	case KindRequired, KindEmail:
	case KindPattern:
		if c.Pattern == "" {
			return c, fmt.Errorf("%w: field %q: pattern check without pattern", ErrInvalidCheck, field)
		}
		re, err := compilePattern(c.Pattern)
		if err != nil {
			return c, fmt.Errorf("%w: field %q: %v", ErrInvalidPattern, field, err)
		}
		c.re = re
	case KindMinLength, KindMaxLength:
		if c.Bound < 0 {
			return c, fmt.Errorf("%w: field %q: %s bound %d is negative", ErrInvalidCheck, field, c.Kind, c.Bound)
		}
	case KindEqualsField:
		if c.Field == "" {
			return c, fmt.Errorf("%w: field %q: equals-field check without referenced field", ErrInvalidCheck, field)
		}
		if c.Field == field {
			return c, fmt.Errorf("%w: field %q: equals-field references itself", ErrInvalidCheck, field)
		}
	default:
		return c, fmt.Errorf("%w: field %q: %q", ErrUnknownCheckKind, field, c.Kind)
	}
	return c, nil
}

// render resolves the check message for a field label.
func (c Check) render(label, otherLabel string) string {
	tmpl := c.Message
	if tmpl == "" {
		tmpl = defaultMessages[c.Kind]
	}
	return strings.NewReplacer(
		"{field}", label,
		"{min}", strconv.Itoa(c.Bound),
		"{max}", strconv.Itoa(c.Bound),
		"{other}", otherLabel,
	).Replace(tmpl)
}

func (c Check) passes(value string, rec Record) bool {
	switch c.Kind {
	case KindRequired:
		return isPresent(value)
	case KindPattern:
		return c.re.MatchString(value)
	case KindMinLength:
		return length(value) >= c.Bound
	case KindMaxLength:
		return length(value) <= c.Bound
	case KindEmail:
		return isEmail(value)
	case KindEqualsField:
		return equalsField(value, rec, c.Field)
	}
	return false
}
