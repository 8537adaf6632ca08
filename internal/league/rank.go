package league

import (
	"cmp"
	"slices"

	"github.com/preston-bernstein/league-standings/internal/domain/standings"
)

// Rank orders totals by points (descending) then team name (ascending) and assigns
// competition ranks: tied teams share a rank and the next distinct score takes its
// 1-based position, e.g. 1, 1, 3, 4, 4, 4, 7.
func Rank(totals []standings.Total) []standings.RankedEntry {
	sorted := slices.Clone(totals)
	slices.SortStableFunc(sorted, func(a, b standings.Total) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.Team, b.Team)
	})

	entries := make([]standings.RankedEntry, 0, len(sorted))
	for i, t := range sorted {
		rank := i + 1
		if i > 0 && t.Points == sorted[i-1].Points {
			rank = entries[i-1].Rank
		}
		entries = append(entries, standings.RankedEntry{Rank: rank, Team: t.Team, Points: t.Points})
	}
	return entries
}

// Totals strips ranks from a table.
func Totals(entries []standings.RankedEntry) []standings.Total {
	totals := make([]standings.Total, 0, len(entries))
	for _, e := range entries {
		totals = append(totals, e.Total())
	}
	return totals
}
