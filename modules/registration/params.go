package registration

// FormParams contains data for rendering the registration form.
type FormParams struct {
	Values Form
	// Errors maps field names to their message; absent fields render an
	// empty error slot.
	Errors map[string]string
}

// PageParams contains data for rendering the full registration page.
type PageParams struct {
	Form   FormParams
	Notice *SuccessParams
}

// FieldErrorParams contains data for rendering a single field's error slot.
type FieldErrorParams struct {
	Field   string
	Message string
}

// SuccessParams contains data for rendering the notice shown after a valid
// submission.
type SuccessParams struct {
	FullName string
	Email    string
}
