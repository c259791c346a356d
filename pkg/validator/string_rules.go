package validator

import "unicode/utf8"

// isPresent reports whether a required value was supplied.
// Whitespace counts as input: the engine does not trim.
func isPresent(value string) bool {
	return value != ""
}

// length counts characters, not bytes, so multi-byte names are measured the
// way a user typed them.
func length(value string) int {
	return utf8.RuneCountInString(value)
}
