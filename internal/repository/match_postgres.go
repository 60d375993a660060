package repository

import (
	"database/sql"
	"fmt"

	"futbolamigos/internal/models"
)

type MatchPostgres struct {
	db *sql.DB
}

func NewMatchPostgres(db *sql.DB) *MatchPostgres {
	return &MatchPostgres{db: db}
}

// Create inserts the match and all its participants in one transaction.
// The id is max(existing)+1, computed inside the transaction; a rejected
// composition never reaches this point, so failed attempts do not advance
// the id sequence.
func (r *MatchPostgres) Create(match models.Match, participants []models.Participant) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var matchID int
	query := `INSERT INTO matches (id, date, outcome)
	          SELECT COALESCE(MAX(id), 0) + 1, $1, $2 FROM matches
	          RETURNING id`
	err = tx.QueryRow(query, match.Date, string(match.Outcome)).Scan(&matchID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert match: %w", err)
	}

	for _, p := range participants {
		_, err = tx.Exec("INSERT INTO match_players (match_id, player_id, team) VALUES ($1, $2, $3)",
			matchID, p.PlayerID, string(p.Team))
		if err != nil {
			return 0, fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return matchID, nil
}

func (r *MatchPostgres) GetAll() ([]models.Match, error) {
	rows, err := r.db.Query("SELECT id, date, outcome FROM matches ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []models.Match
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(&m.ID, &m.Date, &m.Outcome); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *MatchPostgres) GetByID(id int) (models.Match, error) {
	var m models.Match
	err := r.db.QueryRow("SELECT id, date, outcome FROM matches WHERE id = $1", id).
		Scan(&m.ID, &m.Date, &m.Outcome)
	if err == sql.ErrNoRows {
		return models.Match{}, models.ErrMatchNotFound
	}
	if err != nil {
		return models.Match{}, fmt.Errorf("failed to get match %d: %w", id, err)
	}
	return m, nil
}

func (r *MatchPostgres) GetParticipants(matchID int) ([]models.Participant, error) {
	rows, err := r.db.Query(
		"SELECT match_id, player_id, team FROM match_players WHERE match_id = $1 ORDER BY player_id",
		matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	return scanParticipants(rows)
}

func (r *MatchPostgres) GetAllParticipants() ([]models.Participant, error) {
	rows, err := r.db.Query("SELECT match_id, player_id, team FROM match_players ORDER BY match_id, player_id")
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	return scanParticipants(rows)
}

func scanParticipants(rows *sql.Rows) ([]models.Participant, error) {
	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.MatchID, &p.PlayerID, &p.Team); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}
