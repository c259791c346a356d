package validator

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type rulesetDoc struct {
	Fields []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	Name   string     `yaml:"name"`
	Label  string     `yaml:"label,omitempty"`
	Checks []checkDoc `yaml:"checks"`
}

type checkDoc struct {
	Kind    CheckKind `yaml:"kind"`
	Pattern string    `yaml:"pattern,omitempty"`
	Bound   *int      `yaml:"bound,omitempty"`
	Field   string    `yaml:"field,omitempty"`
	Message string    `yaml:"message,omitempty"`
}

// LoadRuleset reads a YAML ruleset document:
//
//	fields:
//	  - name: phone
//	    label: number
//	    checks:
//	      - kind: required
//	      - kind: pattern
//	        pattern: '^01\d{9}$'
//	        message: Phone number must be 11 digit and bangladeshi number.
//
// Unknown keys are rejected so typos surface at startup instead of silently
// disabling a check. Length checks must set bound explicitly.
func LoadRuleset(r io.Reader) (*Ruleset, error) {
	var doc rulesetDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRuleset
		}
		return nil, fmt.Errorf("decode ruleset: %w", err)
	}

	var errs []error
	rules := make([]FieldRule, 0, len(doc.Fields))
	for _, f := range doc.Fields {
		checks := make([]Check, 0, len(f.Checks))
		for _, c := range f.Checks {
			check := Check{
				Kind:    c.Kind,
				Pattern: c.Pattern,
				Field:   c.Field,
				Message: c.Message,
			}
			if c.Bound != nil {
				check.Bound = *c.Bound
			} else if c.Kind == KindMinLength || c.Kind == KindMaxLength {
				errs = append(errs, fmt.Errorf("%w: field %q: %s check without bound", ErrInvalidCheck, f.Name, c.Kind))
			}
			checks = append(checks, check)
		}
		rules = append(rules, FieldRule{Name: f.Name, Label: f.Label, Checks: checks})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return NewRuleset(rules...)
}

// LoadRulesetFile is LoadRuleset for a file path.
func LoadRulesetFile(path string) (*Ruleset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ruleset file: %w", err)
	}
	defer f.Close()

	rs, err := LoadRuleset(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// MarshalYAML renders the ruleset in the format LoadRuleset reads.
func (rs *Ruleset) MarshalYAML() (any, error) {
	doc := rulesetDoc{Fields: make([]fieldDoc, 0, len(rs.rules))}
	for _, rule := range rs.rules {
		f := fieldDoc{Name: rule.Name, Label: rule.Label, Checks: make([]checkDoc, 0, len(rule.Checks))}
		for _, c := range rule.Checks {
			check := checkDoc{
				Kind:    c.Kind,
				Pattern: c.Pattern,
				Field:   c.Field,
				Message: c.Message,
			}
			if c.Kind == KindMinLength || c.Kind == KindMaxLength {
				check.Bound = &c.Bound
			}
			f.Checks = append(f.Checks, check)
		}
		doc.Fields = append(doc.Fields, f)
	}
	return doc, nil
}
