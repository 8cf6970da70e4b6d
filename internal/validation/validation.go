package validation

import (
	"fmt"
	"strings"
)

// Error reports form fields that failed a required-field check. Services
// return it instead of silently refusing a save, so callers can tell the
// user what is missing.
type Error struct {
	Fields []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Required checks each field in order and returns an *Error listing the
// ones whose value is blank, or nil when all are filled.
func Required(fields ...Field) error {
	var missing []string

	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Name)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	return &Error{Fields: missing}
}

type Field struct {
	Name  string
	Value string
}
