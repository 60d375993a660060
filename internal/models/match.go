package models

import "time"

type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

// Outcome is the structural result tag of a match. The winner is stored as
// the side that won, never as a display name, so reusing team names across
// matches cannot change how old matches classify.
type Outcome string

const (
	OutcomeTeamA Outcome = "A"
	OutcomeTeamB Outcome = "B"
	OutcomeDraw  Outcome = "DRAW"
)

func (o Outcome) Valid() bool {
	return o == OutcomeTeamA || o == OutcomeTeamB || o == OutcomeDraw
}

type Match struct {
	ID      int       `json:"id" db:"id"`
	Date    time.Time `json:"date" db:"date"`
	Outcome Outcome   `json:"outcome" db:"outcome"`
}

type Participant struct {
	MatchID  int  `json:"match_id" db:"match_id"`
	PlayerID int  `json:"player_id" db:"player_id"`
	Team     Team `json:"team" db:"team"`
}
