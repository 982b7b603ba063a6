package definition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSchema_RequiredFieldsExist(t *testing.T) {
	for _, name := range ResultSchema.Required {
		_, ok := ResultSchema.Field(name)
		assert.True(t, ok, "required field %q missing from schema", name)
	}
}

func TestResultSchema_StatusIsNonNullableInteger(t *testing.T) {
	f, ok := ResultSchema.Field("status")
	require.True(t, ok)
	assert.Equal(t, TypeInteger, f.Type)
	assert.False(t, f.Nullable)
	assert.NotContains(t, ResultSchema.Required, "status")
}

func TestResultSchema_PhoneticIsOptional(t *testing.T) {
	f, ok := ResultSchema.Field("phonetic")
	require.True(t, ok)
	assert.True(t, f.Nullable)
	assert.NotContains(t, ResultSchema.Required, "phonetic")
}

func TestSchema_FieldUnknown(t *testing.T) {
	_, ok := ResultSchema.Field("etymology")
	assert.False(t, ok)
}
