package application

import (
	"time"

	"futbolamigos/internal/models"
	"futbolamigos/internal/repository"
)

type MatchServiceImpl struct {
	repo repository.Match
}

func NewMatchServiceImpl(repo repository.Match) *MatchServiceImpl {
	return &MatchServiceImpl{repo: repo}
}

// ComposeMatch validates the two rosters and persists the match with one
// participant row per player. All validation happens before the store is
// touched, so a rejected composition leaves no partial state behind and
// does not consume a match id.
func (s *MatchServiceImpl) ComposeMatch(date time.Time, outcome models.Outcome, teamA, teamB []int) (int, error) {
	if !outcome.Valid() {
		return 0, models.ErrInvalidOutcome
	}
	if len(teamA) == 0 || len(teamB) == 0 {
		return 0, models.ErrEmptyTeam
	}

	seen := make(map[int]struct{}, len(teamA)+len(teamB))
	for _, id := range teamA {
		if _, dup := seen[id]; dup {
			return 0, models.ErrOverlappingTeams
		}
		seen[id] = struct{}{}
	}
	for _, id := range teamB {
		if _, dup := seen[id]; dup {
			return 0, models.ErrOverlappingTeams
		}
		seen[id] = struct{}{}
	}

	participants := make([]models.Participant, 0, len(teamA)+len(teamB))
	for _, id := range teamA {
		participants = append(participants, models.Participant{PlayerID: id, Team: models.TeamA})
	}
	for _, id := range teamB {
		participants = append(participants, models.Participant{PlayerID: id, Team: models.TeamB})
	}

	return s.repo.Create(models.Match{Date: date, Outcome: outcome}, participants)
}

func (s *MatchServiceImpl) ListMatches() ([]models.Match, error) {
	return s.repo.GetAll()
}

func (s *MatchServiceImpl) ParticipantsOf(matchID int) ([]models.Participant, error) {
	if _, err := s.repo.GetByID(matchID); err != nil {
		return nil, err
	}
	return s.repo.GetParticipants(matchID)
}
