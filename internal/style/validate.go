package style

import (
	"encoding/json"
	"fmt"
	"strings"
)

// requiredFields are the top-level keys a style definition must carry.
// Order matters for error reporting: the first missing field is named.
var requiredFields = []string{"id", "name", "displayName", "sort", "authorRules", "template"}

// Validate parses and validates a raw JSON style definition. It checks
// required top-level fields, the sort mode, and the presence of the
// required template placeholders, returning an error that names the first
// missing requirement. This is the single validator behind every import
// path; rendering itself never validates.
func Validate(data []byte) (*Style, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing style definition: %w", err)
	}

	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return nil, fmt.Errorf("style definition missing required field %q", field)
		}
	}

	var s Style
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing style definition: %w", err)
	}

	if strings.TrimSpace(s.ID) == "" {
		return nil, fmt.Errorf("style definition missing required field %q", "id")
	}
	if strings.TrimSpace(s.Name) == "" {
		return nil, fmt.Errorf("style definition missing required field %q", "name")
	}
	if strings.TrimSpace(s.Sort.Mode) == "" {
		return nil, fmt.Errorf("style sort config missing required field %q", "mode")
	}

	if err := ValidateTemplate(s.Template); err != nil {
		return nil, err
	}

	return &s, nil
}

// ValidateTemplate checks that a template contains every required
// placeholder.
func ValidateTemplate(template string) error {
	for _, ph := range RequiredPlaceholders {
		if !strings.Contains(template, ph) {
			return fmt.Errorf("style template missing required placeholder %q", ph)
		}
	}
	return nil
}
