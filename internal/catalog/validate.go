// internal/catalog/validate.go
package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks the compiled-in tables for negative quantities, unknown
// categories, inverted ranges and duplicate identifiers.
func Validate() error {
	validate := validator.New()

	seen := make(map[string]bool, len(foods))
	for _, f := range foods {
		if err := validate.Struct(f); err != nil {
			return fmt.Errorf("invalid food %q: %w", f.ID, err)
		}
		if seen[f.ID] {
			return fmt.Errorf("duplicate food id %q", f.ID)
		}
		seen[f.ID] = true
	}

	seenProfiles := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		if err := validate.Struct(p); err != nil {
			return fmt.Errorf("invalid profile %q: %w", p.ID, err)
		}
		if seenProfiles[string(p.ID)] {
			return fmt.Errorf("duplicate profile id %q", p.ID)
		}
		seenProfiles[string(p.ID)] = true
	}

	return nil
}
