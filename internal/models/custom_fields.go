package models

// CustomFieldValue is one (name, display value) pair attached to a task.
// The slice on Task preserves the server-supplied order; field names are not
// guaranteed unique, so every lookup is first-match-wins over that order.
type CustomFieldValue struct {
	Name         string
	DisplayValue string
}

// FieldDisplay returns the display value of the first custom field named name.
// The second result is false when no field with that name exists.
func (t Task) FieldDisplay(name string) (string, bool) {
	for _, cf := range t.CustomFields {
		if cf.Name == name {
			return cf.DisplayValue, true
		}
	}
	return "", false
}
