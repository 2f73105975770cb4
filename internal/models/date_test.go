package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnlyJSON(t *testing.T) {
	type payload struct {
		Due *DateOnly `json:"due"`
	}

	t.Run("present date serializes as YYYY-MM-DD", func(t *testing.T) {
		d := NewDate(2024, time.January, 10)
		out, err := json.Marshal(payload{Due: &d})

		require.NoError(t, err)
		assert.JSONEq(t, `{"due":"2024-01-10"}`, string(out))
	})

	t.Run("absent date serializes as null", func(t *testing.T) {
		out, err := json.Marshal(payload{})

		require.NoError(t, err)
		assert.JSONEq(t, `{"due":null}`, string(out))
	})

	t.Run("parses back", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-01-10"}`), &p))

		require.NotNil(t, p.Due)
		assert.Equal(t, "2024-01-10", p.Due.String())
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"due":"10/01/2024"}`), &p)

		assert.Error(t, err)
	})
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.December, d.Month())

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
}

func TestDateOnlyScan(t *testing.T) {
	var d DateOnly

	require.NoError(t, d.Scan(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-01", d.String())

	require.NoError(t, d.Scan("2024-06-15"))
	assert.Equal(t, "2024-06-15", d.String())

	assert.Error(t, d.Scan(42))
}
