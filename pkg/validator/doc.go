// Package validator is the field validation engine behind the registration form.
//
// A Ruleset is an ordered list of FieldRule values, each naming a field and the
// checks applied to it. Checks come in six kinds: required, pattern,
// length-min, length-max, equals-field and email-format. A Ruleset is built
// once, at startup, and is immutable afterwards:
//
//	var rules = validator.MustRuleset(
//	    validator.Field("email", "email",
//	        validator.Required(),
//	        validator.Email(),
//	    ),
//	    validator.Field("phone", "number",
//	        validator.Required(),
//	        validator.Pattern(`^01\d{9}$`).WithMessage("Phone number must be 11 digit and bangladeshi number."),
//	    ),
//	)
//
// Validation is a pure function of the ruleset and a Record of raw strings:
//
//	res := rules.Validate(validator.Record{"email": "john@gmail.com"})
//	if !res.IsValid() {
//	    msg := res.Message("phone") // "This number field is required."
//	}
//
// # Evaluation
//
// Fields are evaluated in declaration order. For each field the checks run in
// order and the first failing check's message is the field's only message;
// later checks are skipped. A field missing from the Record reads as "".
// An equals-field check whose referenced field is missing from the Record
// compares against "" rather than failing outright.
//
// # Messages
//
// Every kind has a default template using {field} (the rule's label), {min},
// {max} and {other} (the referenced field's label). A check's Message
// replaces the template and may use the same placeholders.
//
// # Errors
//
// Configuration problems (empty ruleset, duplicate names, unknown kinds,
// missing parameters, bad patterns) are returned by NewRuleset and
// LoadRuleset, all at once via errors.Join. Validation never returns an error;
// Result.Err converts a failed Result into ValidationErrors for callers that
// propagate errors.
//
// Rulesets can also be loaded from YAML with LoadRuleset.
package validator
