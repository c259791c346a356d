package validator

// equalsField compares value with the referenced field of rec.
// A field missing from the record reads as an empty string.
func equalsField(value string, rec Record, field string) bool {
	return value == rec.Get(field)
}
