package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSuccess(t *testing.T) {
	env := NewSuccess(map[string]string{"project_id": "123.abc"})

	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	assert.NotNil(t, env.Data)
}

func TestNewFailure(t *testing.T) {
	env := NewFailure("missing scope").
		WithDetails(map[string]string{"sources": "path, body, query"}).
		WithRequestID("req-1")

	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "missing scope", env.Error.Message)
	assert.Equal(t, "path, body, query", env.Error.Details["sources"])
	assert.Equal(t, "req-1", env.RequestID)
	assert.False(t, env.Error.Timestamp.IsZero())
}

func TestEnvelope_JSONShape(t *testing.T) {
	raw, err := json.Marshal(NewFailure("boom"))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, false, decoded["success"])
	assert.NotContains(t, decoded, "data")

	errObj, ok := decoded["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "boom", errObj["message"])
	assert.Contains(t, errObj, "timestamp")
}

func TestEnvelope_SuccessOmitsError(t *testing.T) {
	raw, err := json.Marshal(NewSuccess("ok"))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, true, decoded["success"])
	assert.NotContains(t, decoded, "error")
}

func TestWithDetails_NoErrorIsNoop(t *testing.T) {
	env := NewSuccess(nil).WithDetails(map[string]string{"k": "v"})
	assert.Nil(t, env.Error)
}
