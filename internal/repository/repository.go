package repository

import (
	"database/sql"

	"futbolamigos/internal/models"
)

type Roster interface {
	AddPlayer(name string) (int, error)
	GetAllPlayers() ([]models.Player, error)
	GetPlayerByID(id int) (models.Player, error)
	GetPlayerIDByName(name string) (int, error)
}

type Match interface {
	Create(match models.Match, participants []models.Participant) (int, error)
	GetAll() ([]models.Match, error)
	GetByID(id int) (models.Match, error)
	GetParticipants(matchID int) ([]models.Participant, error)
	GetAllParticipants() ([]models.Participant, error)
}

type Vote interface {
	HasVoted(matchID, voterID int) (bool, error)
	RecordVote(record models.VoteRecord, ratings []models.RatingSubmission) error
	CountVoters(matchID int) (int, error)
	GetRatingsByMatch(matchID int) ([]models.RatingSubmission, error)
	GetAllRatings() ([]models.RatingSubmission, error)
}

type Repository struct {
	Roster
	Match
	Vote
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Roster: NewRosterPostgres(db),
		Match:  NewMatchPostgres(db),
		Vote:   NewVotePostgres(db),
		db:     db,
	}
}
