package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keychainSchema() []ConfigField {
	return []ConfigField{
		{
			Name:  "sides",
			Label: "Sides",
			Type:  FieldTypeSelect,
			Options: []ConfigOption{
				{Value: "single", Label: "Single-sided"},
				{Value: "double", Label: "Double-sided"},
			},
			Required: true,
		},
		{
			Name:      "back_text",
			Label:     "Back text",
			Type:      FieldTypeText,
			MaxLength: 20,
			Condition: &Condition{Field: "sides", Equals: "double"},
		},
		{
			Name:  "artwork",
			Label: "Artwork",
			Type:  FieldTypeFile,
		},
	}
}

func TestValidateSchemaAcceptsOrderedConditions(t *testing.T) {
	require.NoError(t, ValidateSchema(keychainSchema()))
}

func TestValidateSchemaRejectsForwardReference(t *testing.T) {
	fields := []ConfigField{
		{
			Name:      "back_text",
			Type:      FieldTypeText,
			Condition: &Condition{Field: "sides", Equals: "double"},
		},
		{
			Name:    "sides",
			Type:    FieldTypeSelect,
			Options: []ConfigOption{{Value: "single", Label: "Single"}},
		},
	}

	err := ValidateSchema(fields)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not defined earlier")
}

func TestValidateSchemaRejectsSelfReference(t *testing.T) {
	fields := []ConfigField{
		{
			Name:      "sides",
			Type:      FieldTypeSelect,
			Options:   []ConfigOption{{Value: "single", Label: "Single"}},
			Condition: &Condition{Field: "sides", Equals: "single"},
		},
	}

	assert.Error(t, ValidateSchema(fields))
}

func TestValidateSchemaRejectsDuplicateNames(t *testing.T) {
	fields := []ConfigField{
		{Name: "artwork", Type: FieldTypeFile},
		{Name: "artwork", Type: FieldTypeFile},
	}

	err := ValidateSchema(fields)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestValidateSchemaRejectsSelectWithoutOptions(t *testing.T) {
	fields := []ConfigField{{Name: "sides", Type: FieldTypeSelect}}

	assert.Error(t, ValidateSchema(fields))
}

func TestValidateSchemaRejectsUnknownType(t *testing.T) {
	fields := []ConfigField{{Name: "sides", Type: "checkbox"}}

	assert.Error(t, ValidateSchema(fields))
}

func TestValidateConfigurationRequiredField(t *testing.T) {
	schema := keychainSchema()

	err := ValidateConfiguration(schema, map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")

	assert.NoError(t, ValidateConfiguration(schema, map[string]string{"sides": "single"}))
}

func TestValidateConfigurationSkipsHiddenFields(t *testing.T) {
	schema := keychainSchema()

	// back_text is only visible when sides=double; an overlong value for a
	// hidden field must not fail validation.
	config := map[string]string{
		"sides":     "single",
		"back_text": "this text is far longer than twenty characters",
	}
	assert.NoError(t, ValidateConfiguration(schema, config))

	config["sides"] = "double"
	assert.Error(t, ValidateConfiguration(schema, config))
}

func TestValidateConfigurationRejectsUnknownOption(t *testing.T) {
	schema := keychainSchema()

	err := ValidateConfiguration(schema, map[string]string{"sides": "triple"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid option")
}

func TestValidateConfigurationTextMaxLength(t *testing.T) {
	schema := keychainSchema()
	config := map[string]string{
		"sides":     "double",
		"back_text": "exactly twenty chars",
	}

	assert.NoError(t, ValidateConfiguration(schema, config))

	config["back_text"] = "twenty-one characters"
	assert.Error(t, ValidateConfiguration(schema, config))
}

func TestOptionLabelFallsBackToRawValue(t *testing.T) {
	field := &keychainSchema()[0]

	assert.Equal(t, "Double-sided", field.OptionLabel("double"))
	assert.Equal(t, "mystery", field.OptionLabel("mystery"))
}

func TestConditionMatches(t *testing.T) {
	var nilCond *Condition
	assert.True(t, nilCond.Matches(map[string]string{"sides": "single"}))
	assert.True(t, nilCond.Matches(nil))

	cond := &Condition{Field: "sides", Equals: "double"}
	assert.True(t, cond.Matches(map[string]string{"sides": "double"}))
	assert.False(t, cond.Matches(map[string]string{"sides": "single"}))
	assert.False(t, cond.Matches(nil))
}
