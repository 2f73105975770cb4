package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/metrika-dev/metrika/internal/models"
)

// Row is one spreadsheet line: an (indicator, milestone) pair. Date cells
// are kept raw so correctors can run before parsing.
type Row struct {
	VP              string
	Area            string
	Indicator       string
	IndicatorType   string
	Milestone       string
	RawStart        string
	RawEnd          string
	Progress        float64
	Status          string
	Responsible     string
	LoadResponsible string

	// Parsed by parseDates after correction; nil means absent.
	Start *models.DateOnly
	End   *models.DateOnly
}

// Layouts accepted for date cells. The canonical form is YYYY-MM-DD;
// the rest cover how excelize renders styled date cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
}

// parseCellDate returns nil for empty or unparseable cells; the caller's
// fallback chain decides what an absent date means.
func parseCellDate(raw string) *models.DateOnly {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		d := models.NewDate(t.Year(), t.Month(), t.Day())
		return &d
	}

	return nil
}

func parseProgress(raw string) float64 {
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return value
}

func (r *Row) parseDates() {
	r.Start = parseCellDate(r.RawStart)
	r.End = parseCellDate(r.RawEnd)
}
