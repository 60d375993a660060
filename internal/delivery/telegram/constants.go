package telegram

const (
	KbNone    = "empty"
	KbCancel  = "cancel"
	KbOutcome = "outcome"
	KbScore   = "score"

	StateIdle         = "idle"
	StateMatchDate    = "match_date"
	StateMatchOutcome = "match_outcome"
	StateMatchTeamA   = "match_team_a"
	StateMatchTeamB   = "match_team_b"
	StateVoteMatch    = "vote_match"
	StateVoteSelf     = "vote_self"
	StateVoteScore    = "vote_score"

	dateLayout = "2006-01-02"

	labelTeamAWin = "Team A wins"
	labelTeamBWin = "Team B wins"
	labelDraw     = "Draw"
	labelSkip     = "Skip"
	labelCancel   = "Cancel"
)
