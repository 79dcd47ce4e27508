package structs

import "fmt"

// ConfigFieldType enumerates the supported customization input kinds.
type ConfigFieldType string

const (
	FieldTypeSelect ConfigFieldType = "select"
	FieldTypeText   ConfigFieldType = "text"
	FieldTypeFile   ConfigFieldType = "file"
)

// ConfigOption is one selectable value of a select-type field.
type ConfigOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Image string `json:"image,omitempty"`
}

// ConfigField describes one customization input of a product.
// Fields are ordered; a Condition may only reference a field that appears
// earlier in the schema.
type ConfigField struct {
	Name         string          `json:"name"`
	Label        string          `json:"label"`
	Type         ConfigFieldType `json:"type"`
	Options      []ConfigOption  `json:"options,omitempty"`
	DefaultValue string          `json:"default_value,omitempty"`
	Required     bool            `json:"required,omitempty"`
	MaxLength    int             `json:"max_length,omitempty"`
	Placeholder  string          `json:"placeholder,omitempty"`
	Condition    *Condition      `json:"condition,omitempty"`
}

// Visible reports whether the field should be shown (and therefore
// validated) for the given configuration.
func (f *ConfigField) Visible(config map[string]string) bool {
	return f.Condition.Matches(config)
}

// OptionLabel resolves a stored option value to its display label,
// falling back to the raw value for free-text fields.
func (f *ConfigField) OptionLabel(value string) string {
	for _, opt := range f.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// ValidateConfiguration checks a submitted configuration against a schema.
// Only visible fields are validated: a field hidden by its condition is
// ignored even when the client submitted a value for it. Select values
// must be one of the declared options; text values respect MaxLength.
func ValidateConfiguration(fields []ConfigField, config map[string]string) error {
	for i := range fields {
		f := &fields[i]
		if !f.Visible(config) {
			continue
		}

		value, present := config[f.Name]
		if value == "" {
			present = false
		}

		if !present {
			if f.Required {
				return fmt.Errorf("field %q is required", f.Name)
			}
			continue
		}

		switch f.Type {
		case FieldTypeSelect:
			valid := false
			for _, opt := range f.Options {
				if opt.Value == value {
					valid = true
					break
				}
			}
			if !valid {
				return fmt.Errorf("field %q: %q is not a valid option", f.Name, value)
			}
		case FieldTypeText:
			if f.MaxLength > 0 && len([]rune(value)) > f.MaxLength {
				return fmt.Errorf("field %q exceeds maximum length %d", f.Name, f.MaxLength)
			}
		}
	}
	return nil
}

// ValidateSchema checks the structural invariants of a config schema:
// unique field names, select fields carry options, and conditions only
// reference fields defined earlier in the list (no forward or cyclic
// references).
func ValidateSchema(fields []ConfigField) error {
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("field %d: name is required", i)
		}
		if seen[f.Name] {
			return fmt.Errorf("field %q: duplicate name", f.Name)
		}
		switch f.Type {
		case FieldTypeSelect:
			if len(f.Options) == 0 {
				return fmt.Errorf("field %q: select field has no options", f.Name)
			}
		case FieldTypeText, FieldTypeFile:
		default:
			return fmt.Errorf("field %q: unknown type %q", f.Name, f.Type)
		}
		if f.Condition != nil {
			if !seen[f.Condition.Field] {
				return fmt.Errorf("field %q: condition references %q which is not defined earlier", f.Name, f.Condition.Field)
			}
		}
		seen[f.Name] = true
	}
	return nil
}
