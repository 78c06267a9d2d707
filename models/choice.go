package models

// Choice is one selectable option for an enumerated model field.
// Dropdowns are rendered from the same slices the services validate
// against, so a value the form offers is always a value the model accepts.
type Choice struct {
	Value string
	Label string
}

// IsValidChoice reports whether value appears in the given choice set.
func IsValidChoice(choices []Choice, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

// ChoiceLabel returns the display label for a stored value, falling back
// to the raw value for anything unknown (legacy rows, manual edits).
func ChoiceLabel(choices []Choice, value string) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}
