package validator

import (
	"errors"
	"fmt"
)

// Record is a snapshot of raw form input keyed by field name.
// Every value is text; numeric-looking fields are matched against patterns.
type Record map[string]string

// Get returns the value of field, or "" when the field is absent.
func (r Record) Get(field string) string {
	return r[field]
}

// FieldRule is the ordered list of checks applied to one field.
// Label is the display name used in message templates; it defaults to Name.
type FieldRule struct {
	Name   string
	Label  string
	Checks []Check
}

// Field is shorthand for building a FieldRule.
func Field(name, label string, checks ...Check) FieldRule {
	return FieldRule{Name: name, Label: label, Checks: checks}
}

// Ruleset is an immutable, ordered collection of field rules with unique names.
// It holds no mutable state and may be shared between goroutines.
type Ruleset struct {
	rules []FieldRule
	index map[string]int
}

// NewRuleset validates the rules and compiles their checks.
// All configuration problems are reported at once, joined into a single error.
func NewRuleset(rules ...FieldRule) (*Ruleset, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyRuleset
	}

	rs := &Ruleset{
		rules: make([]FieldRule, 0, len(rules)),
		index: make(map[string]int, len(rules)),
	}

	var errs []error
	for i, rule := range rules {
		if rule.Name == "" {
			errs = append(errs, fmt.Errorf("%w: rule #%d has no name", ErrInvalidField, i))
			continue
		}
		if _, exists := rs.index[rule.Name]; exists {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateField, rule.Name))
			continue
		}
		if rule.Label == "" {
			rule.Label = rule.Name
		}

		checks := make([]Check, 0, len(rule.Checks))
		for _, c := range rule.Checks {
			compiled, err := c.compile(rule.Name)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			checks = append(checks, compiled)
		}
		rule.Checks = checks

		rs.index[rule.Name] = len(rs.rules)
		rs.rules = append(rs.rules, rule)
	}

	for _, rule := range rs.rules {
		for _, c := range rule.Checks {
			if _, ok := rs.index[c.Field]; c.Kind == KindEqualsField && !ok {
				errs = append(errs, fmt.Errorf("%w: field %q: equals-field references undeclared field %q", ErrInvalidCheck, rule.Name, c.Field))
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	// Messages are resolved once all labels are known.
	for i := range rs.rules {
		rule := &rs.rules[i]
		for j := range rule.Checks {
			c := &rule.Checks[j]
			c.msg = c.render(rule.Label, rs.label(c.Field))
		}
	}

	return rs, nil
}

// MustRuleset is like NewRuleset but panics on a configuration error.
// Use it for rulesets declared at package level.
func MustRuleset(rules ...FieldRule) *Ruleset {
	rs, err := NewRuleset(rules...)
	if err != nil {
		panic(fmt.Sprintf("validator: invalid ruleset: %v", err))
	}
	return rs
}

// label returns the display label of field, or field itself when it is not
// declared.
func (rs *Ruleset) label(field string) string {
	if i, ok := rs.index[field]; ok {
		return rs.rules[i].Label
	}
	return field
}

// Len returns the number of field rules.
func (rs *Ruleset) Len() int {
	return len(rs.rules)
}

// Fields returns field names in declaration order.
func (rs *Ruleset) Fields() []string {
	names := make([]string, len(rs.rules))
	for i, rule := range rs.rules {
		names[i] = rule.Name
	}
	return names
}

// Rule returns a copy of the rule for field.
func (rs *Ruleset) Rule(field string) (FieldRule, bool) {
	i, ok := rs.index[field]
	if !ok {
		return FieldRule{}, false
	}
	rule := rs.rules[i]
	rule.Checks = append([]Check(nil), rule.Checks...)
	return rule, true
}

// Validate evaluates every field rule against rec.
// It never fails: bad input is reported through the returned Result.
func (rs *Ruleset) Validate(rec Record) Result {
	res := Result{
		fields:   make([]string, 0, len(rs.rules)),
		messages: make(map[string]string),
	}
	for _, rule := range rs.rules {
		res.fields = append(res.fields, rule.Name)
		if msg, failed := rule.evaluate(rec); failed {
			res.messages[rule.Name] = msg
		}
	}
	return res
}

// ValidateField evaluates a single field, for live feedback while the user types.
// It returns the failure message and false, or "" and true when the field is
// valid or unknown to the ruleset.
func (rs *Ruleset) ValidateField(rec Record, field string) (string, bool) {
	i, ok := rs.index[field]
	if !ok {
		return "", true
	}
	msg, failed := rs.rules[i].evaluate(rec)
	return msg, !failed
}

// Validate is the functional form of Ruleset.Validate.
func Validate(rs *Ruleset, rec Record) Result {
	return rs.Validate(rec)
}

// evaluate runs checks in order and stops at the first failure.
func (rule FieldRule) evaluate(rec Record) (string, bool) {
	value := rec.Get(rule.Name)
	for _, c := range rule.Checks {
		if !c.passes(value, rec) {
			return c.msg, true
		}
	}
	return "", false
}

// Result holds at most one message per field plus the overall verdict.
type Result struct {
	fields   []string
	messages map[string]string
}

// IsValid reports whether no field has a message.
func (r Result) IsValid() bool {
	return len(r.messages) == 0
}

// Message returns the message for field, or "" when it is valid.
func (r Result) Message(field string) string {
	return r.messages[field]
}

// Has reports whether field failed validation.
func (r Result) Has(field string) bool {
	_, ok := r.messages[field]
	return ok
}

// Messages returns a copy of all field messages.
func (r Result) Messages() map[string]string {
	out := make(map[string]string, len(r.messages))
	for field, msg := range r.messages {
		out[field] = msg
	}
	return out
}

// Invalid returns the names of failed fields in ruleset order.
func (r Result) Invalid() []string {
	fields := make([]string, 0, len(r.messages))
	for _, field := range r.fields {
		if _, ok := r.messages[field]; ok {
			fields = append(fields, field)
		}
	}
	return fields
}

// Err returns nil for a valid result, otherwise ValidationErrors in ruleset order.
func (r Result) Err() error {
	if r.IsValid() {
		return nil
	}
	errs := make(ValidationErrors, 0, len(r.messages))
	for _, field := range r.Invalid() {
		errs.Add(ValidationError{Field: field, Message: r.messages[field]})
	}
	return errs
}
