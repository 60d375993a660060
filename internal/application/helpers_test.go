package application

import (
	"testing"

	"futbolamigos/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRounding(t *testing.T) {
	assert.Equal(t, 7.7, round1(7.666666))
	assert.Equal(t, 7.5, round1(7.45))
	assert.Equal(t, 7.0, round1(7.0))
	assert.Equal(t, 0.33, round2(1.0/3.0))
	assert.Equal(t, 0.67, round2(2.0/3.0))
	assert.Equal(t, 0.63, round2(0.625))
}

func TestClassifyOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome models.Outcome
		team    models.Team
		want    outcomeKind
	}{
		{"team A wins and player on A", models.OutcomeTeamA, models.TeamA, outcomeWin},
		{"team A wins and player on B", models.OutcomeTeamA, models.TeamB, outcomeLoss},
		{"team B wins and player on B", models.OutcomeTeamB, models.TeamB, outcomeWin},
		{"team B wins and player on A", models.OutcomeTeamB, models.TeamA, outcomeLoss},
		{"draw for player on A", models.OutcomeDraw, models.TeamA, outcomeDraw},
		{"draw for player on B", models.OutcomeDraw, models.TeamB, outcomeDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyOutcome(tt.outcome, tt.team))
		})
	}
}
