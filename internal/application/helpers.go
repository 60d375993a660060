package application

import (
	"math"

	"futbolamigos/internal/models"
)

// round1 and round2 round half away from zero, matching how the tables are
// displayed: 7.45 -> 7.5 at one decimal, 0.625 -> 0.63 at two.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type outcomeKind int

const (
	outcomeWin outcomeKind = iota
	outcomeDraw
	outcomeLoss
)

// classifyOutcome maps a match outcome onto one player's result. A draw is
// a draw for everyone; otherwise the player wins iff the winner tag names
// their side.
func classifyOutcome(outcome models.Outcome, team models.Team) outcomeKind {
	switch {
	case outcome == models.OutcomeDraw:
		return outcomeDraw
	case outcome == models.OutcomeTeamA && team == models.TeamA:
		return outcomeWin
	case outcome == models.OutcomeTeamB && team == models.TeamB:
		return outcomeWin
	default:
		return outcomeLoss
	}
}
