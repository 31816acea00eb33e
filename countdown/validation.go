package countdown

import (
	"fmt"
	"strings"
)

// MaxNameLength is the maximum allowed length for a countdown name.
const MaxNameLength = 200

// ValidateName checks if the name is valid. The name is expected to be
// trimmed already; surrounding whitespace counts toward emptiness but
// not validity.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: %d > %d", ErrNameTooLong, len(name), MaxNameLength)
	}
	return nil
}

// ValidateEntity checks if an entity is structurally valid.
func ValidateEntity(e *Entity) error {
	if e.ID == "" {
		return fmt.Errorf("countdown has no ID")
	}
	if err := ValidateName(e.Name); err != nil {
		return err
	}
	if e.TargetDate.IsZero() {
		return fmt.Errorf("countdown %s has no target date", e.ID)
	}
	if e.CreatedAt.IsZero() {
		return fmt.Errorf("countdown %s has no creation date", e.ID)
	}
	return nil
}
