package importer

import "github.com/metrika-dev/metrika/internal/models"

// Group is all rows sharing one indicator name, plus the date range the
// indicator spans: earliest milestone start to latest milestone end.
type Group struct {
	Name  string
	Rows  []Row
	Start *models.DateOnly
	End   *models.DateOnly
}

// groupRows partitions rows by exact indicator name, preserving first-seen
// order. Names are not normalized: near-duplicates (trailing whitespace,
// case differences) stay separate so data-entry defects surface in the
// import log instead of being merged silently.
func groupRows(rows []Row) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, row := range rows {
		i, ok := index[row.Indicator]
		if !ok {
			i = len(groups)
			index[row.Indicator] = i
			groups = append(groups, Group{Name: row.Indicator})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}

	for i := range groups {
		groups[i].deriveDates()
	}

	return groups
}

// deriveDates computes the group's aggregate range: minimum of the present
// start dates and maximum of the present end dates, falling back to the
// first row's own (possibly absent) date when none are present.
func (g *Group) deriveDates() {
	if len(g.Rows) == 0 {
		return
	}

	g.Start = g.Rows[0].Start
	g.End = g.Rows[0].End

	for _, row := range g.Rows {
		if row.Start != nil && (g.Start == nil || row.Start.Before(*g.Start)) {
			g.Start = row.Start
		}
		if row.End != nil && (g.End == nil || row.End.After(*g.End)) {
			g.End = row.End
		}
	}
}
