package importer

import "strings"

// Corrector is a data-cleaning step applied to each raw row before date
// parsing. Correct reports whether it changed the row.
type Corrector interface {
	Correct(row *Row) bool
}

// SentinelDateCorrector rewrites end-date cells carrying a known bad
// sentinel. The source spreadsheet encodes one missing deadline as a year
// 1900 date; the agreed replacement is 2025-12-31.
type SentinelDateCorrector struct {
	Sentinel    string
	Replacement string
}

func NewSentinelDateCorrector() *SentinelDateCorrector {
	return &SentinelDateCorrector{
		Sentinel:    "1900",
		Replacement: "2025-12-31",
	}
}

func (c *SentinelDateCorrector) Correct(row *Row) bool {
	if !strings.Contains(row.RawEnd, c.Sentinel) {
		return false
	}

	row.RawEnd = c.Replacement
	return true
}
