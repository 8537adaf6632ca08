package league

import "github.com/preston-bernstein/league-standings/internal/domain/standings"

// Aggregate sums match points per team name (exact, case-sensitive match).
// Totals come back in first-appearance order; Rank imposes the final order.
func Aggregate(points []standings.MatchPoints) []standings.Total {
	index := make(map[string]int, len(points))
	totals := make([]standings.Total, 0, len(points)/2+1)

	for _, p := range points {
		i, ok := index[p.Team]
		if !ok {
			index[p.Team] = len(totals)
			totals = append(totals, standings.Total{Team: p.Team, Points: p.Points})
			continue
		}
		totals[i].Points += p.Points
	}
	return totals
}
