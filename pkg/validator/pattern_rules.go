package validator

import "regexp"

// compilePattern compiles expr so that it must match the whole value.
// Anchors written by the author stay valid inside the group, and alternations
// such as `^a|b$` cannot escape the full-match requirement.
func compilePattern(expr string) (*regexp.Regexp, error) {
	return regexp.Compile(`^(?:` + expr + `)$`)
}
