package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelDateCorrector(t *testing.T) {
	corrector := NewSentinelDateCorrector()

	t.Run("rewrites sentinel end date", func(t *testing.T) {
		row := Row{RawEnd: "1900-01-10"}

		changed := corrector.Correct(&row)

		assert.True(t, changed)
		assert.Equal(t, "2025-12-31", row.RawEnd)
	})

	t.Run("matches on substring, not exact value", func(t *testing.T) {
		row := Row{RawEnd: "10/01/1900"}

		assert.True(t, corrector.Correct(&row))
		assert.Equal(t, "2025-12-31", row.RawEnd)
	})

	t.Run("leaves healthy dates alone", func(t *testing.T) {
		row := Row{RawEnd: "2024-12-31", RawStart: "1900-01-01"}

		changed := corrector.Correct(&row)

		assert.False(t, changed)
		assert.Equal(t, "2024-12-31", row.RawEnd)
		// Only the end-date column is sanitized.
		assert.Equal(t, "1900-01-01", row.RawStart)
	})

	t.Run("corrected date survives parsing", func(t *testing.T) {
		row := Row{RawEnd: "1900-01-10"}

		corrector.Correct(&row)
		row.parseDates()

		assert.Equal(t, "2025-12-31", row.End.String())
	})
}
