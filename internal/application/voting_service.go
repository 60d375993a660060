package application

import (
	"futbolamigos/internal/models"
	"futbolamigos/internal/repository"
)

type VotingServiceImpl struct {
	matches repository.Match
	votes   repository.Vote
}

func NewVotingServiceImpl(matches repository.Match, votes repository.Vote) *VotingServiceImpl {
	return &VotingServiceImpl{matches: matches, votes: votes}
}

func (s *VotingServiceImpl) HasVoted(matchID, voterID int) (bool, error) {
	return s.votes.HasVoted(matchID, voterID)
}

// RecordVote validates the submission and appends one ledger entry plus one
// rating row per entry in ratings. The store performs the ledger check and
// the writes under a per-match lock, so the duplicate guard holds even for
// concurrent submissions. Ratings may cover any subset of teammates.
func (s *VotingServiceImpl) RecordVote(matchID, voterID int, ratings map[int]int) error {
	if _, err := s.matches.GetByID(matchID); err != nil {
		return err
	}

	participants, err := s.matches.GetParticipants(matchID)
	if err != nil {
		return err
	}

	inMatch := make(map[int]struct{}, len(participants))
	for _, p := range participants {
		inMatch[p.PlayerID] = struct{}{}
	}
	if _, ok := inMatch[voterID]; !ok {
		return models.ErrVoterNotInMatch
	}

	submissions := make([]models.RatingSubmission, 0, len(ratings))
	for ratedID, score := range ratings {
		if ratedID == voterID {
			return models.ErrSelfRating
		}
		if _, ok := inMatch[ratedID]; !ok {
			return models.ErrPlayerNotFound
		}
		if score < ScoreMin || score > ScoreMax {
			return models.ErrScoreOutOfRange
		}
		submissions = append(submissions, models.RatingSubmission{
			MatchID:       matchID,
			RatedPlayerID: ratedID,
			Score:         score,
		})
	}

	return s.votes.RecordVote(models.VoteRecord{MatchID: matchID, VoterID: voterID}, submissions)
}

func (s *VotingServiceImpl) VotersCount(matchID int) (int, error) {
	return s.votes.CountVoters(matchID)
}
