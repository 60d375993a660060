package models

// MatchStandingRow is one line of the per-match table: a rated player and
// the plain mean of every score submitted for them in that match.
type MatchStandingRow struct {
	Player    Player  `json:"player"`
	MeanScore float64 `json:"mean_score"`
}

// SeasonStandingRow is one line of the season table. AvgScore is the flat
// mean over every rating submission the player ever received, not a mean of
// per-match means.
type SeasonStandingRow struct {
	Player   Player  `json:"player"`
	AvgScore float64 `json:"avg_score"`
	Wins     int     `json:"wins"`
	Draws    int     `json:"draws"`
	Losses   int     `json:"losses"`
	WinRate  float64 `json:"win_rate"`
}
