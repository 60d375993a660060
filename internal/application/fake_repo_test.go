package application

import (
	"strings"

	"futbolamigos/internal/models"
)

// fakeRepo is an in-memory stand-in for the Postgres stores, with the same
// append + full-scan semantics and the same sentinel errors.
type fakeRepo struct {
	players      []models.Player
	matches      []models.Match
	participants []models.Participant
	votes        []models.VoteRecord
	ratings      []models.RatingSubmission
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{}
}

func (f *fakeRepo) AddPlayer(name string) (int, error) {
	for _, p := range f.players {
		if strings.EqualFold(p.Name, name) {
			return 0, models.ErrDuplicateName
		}
	}
	id := len(f.players) + 1
	f.players = append(f.players, models.Player{ID: id, Name: name})
	return id, nil
}

func (f *fakeRepo) GetAllPlayers() ([]models.Player, error) {
	return append([]models.Player(nil), f.players...), nil
}

func (f *fakeRepo) GetPlayerByID(id int) (models.Player, error) {
	for _, p := range f.players {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Player{}, models.ErrPlayerNotFound
}

func (f *fakeRepo) GetPlayerIDByName(name string) (int, error) {
	for _, p := range f.players {
		if strings.EqualFold(p.Name, name) {
			return p.ID, nil
		}
	}
	return 0, models.ErrPlayerNotFound
}

func (f *fakeRepo) Create(match models.Match, participants []models.Participant) (int, error) {
	id := 0
	for _, m := range f.matches {
		if m.ID > id {
			id = m.ID
		}
	}
	id++

	match.ID = id
	f.matches = append(f.matches, match)
	for _, p := range participants {
		p.MatchID = id
		f.participants = append(f.participants, p)
	}
	return id, nil
}

func (f *fakeRepo) GetAll() ([]models.Match, error) {
	return append([]models.Match(nil), f.matches...), nil
}

func (f *fakeRepo) GetByID(id int) (models.Match, error) {
	for _, m := range f.matches {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Match{}, models.ErrMatchNotFound
}

func (f *fakeRepo) GetParticipants(matchID int) ([]models.Participant, error) {
	var out []models.Participant
	for _, p := range f.participants {
		if p.MatchID == matchID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetAllParticipants() ([]models.Participant, error) {
	return append([]models.Participant(nil), f.participants...), nil
}

func (f *fakeRepo) HasVoted(matchID, voterID int) (bool, error) {
	for _, v := range f.votes {
		if v.MatchID == matchID && v.VoterID == voterID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) RecordVote(record models.VoteRecord, ratings []models.RatingSubmission) error {
	if voted, _ := f.HasVoted(record.MatchID, record.VoterID); voted {
		return models.ErrAlreadyVoted
	}
	f.votes = append(f.votes, record)
	f.ratings = append(f.ratings, ratings...)
	return nil
}

func (f *fakeRepo) CountVoters(matchID int) (int, error) {
	count := 0
	for _, v := range f.votes {
		if v.MatchID == matchID {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) GetRatingsByMatch(matchID int) ([]models.RatingSubmission, error) {
	var out []models.RatingSubmission
	for _, r := range f.ratings {
		if r.MatchID == matchID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetAllRatings() ([]models.RatingSubmission, error) {
	return append([]models.RatingSubmission(nil), f.ratings...), nil
}

// addRating appends a rating row directly, bypassing the vote ledger, for
// tests that only care about aggregation.
func (f *fakeRepo) addRating(matchID, playerID, score int) {
	f.ratings = append(f.ratings, models.RatingSubmission{
		MatchID:       matchID,
		RatedPlayerID: playerID,
		Score:         score,
	})
}
