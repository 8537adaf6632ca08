package shell

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/league-standings/internal/domain/standings"
)

// PointsLabel returns "pt" for exactly one point and "pts" otherwise.
func PointsLabel(points int) string {
	if points == 1 {
		return "pt"
	}
	return "pts"
}

// FormatEntry renders one standings row as "<rank>. <team>, <points> <pt|pts>".
func FormatEntry(e standings.RankedEntry) string {
	return fmt.Sprintf("%d. %s, %d %s", e.Rank, e.Team, e.Points, PointsLabel(e.Points))
}

// FormatTable renders every row in order.
func FormatTable(entries []standings.RankedEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, FormatEntry(e))
	}
	return lines
}

// ParseYesNo reports whether an answer means yes ("y" or "yes", any case).
func ParseYesNo(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
