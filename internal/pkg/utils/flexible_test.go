package utils

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleString(t *testing.T) {
	var payload struct {
		ID FlexibleString `json:"id"`
	}

	t.Run("Number id", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"id": 42}`), &payload))
		assert.Equal(t, "42", payload.ID.String())
	})

	t.Run("String id", func(t *testing.T) {
		require.NoError(t, json.Unmarshal([]byte(`{"id": "A-42"}`), &payload))
		assert.Equal(t, "A-42", payload.ID.String())
	})

	t.Run("Null id", func(t *testing.T) {
		var fresh struct {
			ID FlexibleString `json:"id"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &fresh))
		assert.Empty(t, fresh.ID.String())
	})
}

func TestFlexibleFloat(t *testing.T) {
	var payload struct {
		Score FlexibleFloat `json:"score"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"score": 62.5}`), &payload))
	assert.Equal(t, 62.5, float64(payload.Score))

	require.NoError(t, json.Unmarshal([]byte(`{"score": "80"}`), &payload))
	assert.Equal(t, 80.0, float64(payload.Score))

	assert.Error(t, json.Unmarshal([]byte(`{"score": "high"}`), &payload))
}
