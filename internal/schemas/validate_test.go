package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantError bool
	}{
		{name: "empty object", content: `{}`},
		{name: "full config", content: `{"pattern": "*.yaml", "resources": {"App": "./config"}, "log_level": "debug", "no_color": true}`},
		{name: "unknown field", content: `{"patern": "*.yml"}`, wantError: true},
		{name: "wrong type", content: `{"no_color": "yes"}`, wantError: true},
		{name: "bad level", content: `{"log_level": "loud"}`, wantError: true},
		{name: "empty resource dir", content: `{"resources": {"App": ""}}`, wantError: true},
		{name: "empty pattern", content: `{"pattern": ""}`, wantError: true},
		{name: "not an object", content: `[]`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig([]byte(tt.content))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "got %T: %v", err, err)
			assert.Greater(t, len(validationErr.Errors), 0)
		})
	}
}

func TestValidateConfig_MalformedJSON(t *testing.T) {
	err := ValidateConfig([]byte(`{ invalid json }`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateConfig_RootTypeMismatch(t *testing.T) {
	err := ValidateConfig([]byte(`[]`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, err.Error(), "validation failed")
}
