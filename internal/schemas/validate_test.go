package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = []byte(`{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string", "minLength": 1}
		}
	}
}`)

func TestValidateBytes_Valid(t *testing.T) {
	doc := []byte(`[{"name": "Greenhouse"}, {"name": "Lever"}]`)
	assert.NoError(t, ValidateBytes(testSchema, doc))
}

func TestValidateBytes_MissingRequiredField(t *testing.T) {
	doc := []byte(`[{"other": true}]`)
	err := ValidateBytes(testSchema, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateBytes_BadSchema(t *testing.T) {
	err := ValidateBytes([]byte(`{"type": 42}`), []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
