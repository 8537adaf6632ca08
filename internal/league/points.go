package league

import "github.com/preston-bernstein/league-standings/internal/domain/standings"

// Match points awarded per outcome.
const (
	WinPoints  = 3
	DrawPoints = 1
	LossPoints = 0
)

// Award converts a match's goals into match points, keeping the line order.
func Award(m standings.Match) (home, away standings.MatchPoints) {
	home = standings.MatchPoints{Team: m.Home.Team, Points: LossPoints}
	away = standings.MatchPoints{Team: m.Away.Team, Points: LossPoints}

	switch {
	case m.Home.Goals == m.Away.Goals:
		home.Points = DrawPoints
		away.Points = DrawPoints
	case m.Home.Goals > m.Away.Goals:
		home.Points = WinPoints
	default:
		away.Points = WinPoints
	}
	return home, away
}
