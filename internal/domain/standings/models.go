package standings

// Goals is a team's goal count for one match as read from a results line.
type Goals struct {
	Team  string `json:"team"`
	Goals int    `json:"goals"`
}

// Match holds the two sides of one results line in the order they appear.
// Home is the left-hand segment; the file format carries no venue information.
type Match struct {
	Home Goals `json:"home"`
	Away Goals `json:"away"`
}

// MatchPoints is the 3/1/0 award a team earned from a single match.
type MatchPoints struct {
	Team   string `json:"team"`
	Points int    `json:"points"`
}

// Total is a team's points summed over every match in a results file.
type Total struct {
	Team   string `json:"team"`
	Points int    `json:"points"`
}

// RankedEntry is one row of the final standings table.
type RankedEntry struct {
	Rank   int    `json:"rank"`
	Team   string `json:"team"`
	Points int    `json:"points"`
}

// Total drops the rank so a table can be fed back through the ranker.
func (e RankedEntry) Total() Total {
	return Total{Team: e.Team, Points: e.Points}
}

// Table is the JSON payload printed by one-shot runs.
type Table struct {
	Source  string        `json:"source"`
	Matches int           `json:"matches"`
	Entries []RankedEntry `json:"entries"`
}

// NewTable builds a Table payload, normalising nil entries to an empty list.
func NewTable(source string, matches int, entries []RankedEntry) Table {
	if entries == nil {
		entries = []RankedEntry{}
	}
	return Table{
		Source:  source,
		Matches: matches,
		Entries: entries,
	}
}
