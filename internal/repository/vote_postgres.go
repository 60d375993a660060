package repository

import (
	"database/sql"
	"fmt"

	"futbolamigos/internal/models"
)

type VotePostgres struct {
	db *sql.DB
}

func NewVotePostgres(db *sql.DB) *VotePostgres {
	return &VotePostgres{db: db}
}

func (r *VotePostgres) HasVoted(matchID, voterID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM votes_log WHERE match_id = $1 AND voter_id = $2)",
		matchID, voterID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check vote ledger: %w", err)
	}
	return exists, nil
}

// RecordVote appends the ledger entry and all rating rows as one unit.
// The whole check-then-write runs inside a transaction holding an advisory
// lock on the match id, so two near-simultaneous submissions from the same
// voter cannot both pass the ledger check.
func (r *VotePostgres) RecordVote(record models.VoteRecord, ratings []models.RatingSubmission) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec("SELECT pg_advisory_xact_lock($1)", record.MatchID); err != nil {
		return fmt.Errorf("failed to lock match: %w", err)
	}

	var exists bool
	err = tx.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM votes_log WHERE match_id = $1 AND voter_id = $2)",
		record.MatchID, record.VoterID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check vote ledger: %w", err)
	}
	if exists {
		err = models.ErrAlreadyVoted
		return err
	}

	_, err = tx.Exec("INSERT INTO votes_log (match_id, voter_id) VALUES ($1, $2)",
		record.MatchID, record.VoterID)
	if err != nil {
		return fmt.Errorf("failed to insert vote record: %w", err)
	}

	for _, rt := range ratings {
		_, err = tx.Exec("INSERT INTO ratings (match_id, rated_player_id, score) VALUES ($1, $2, $3)",
			rt.MatchID, rt.RatedPlayerID, rt.Score)
		if err != nil {
			return fmt.Errorf("failed to insert rating: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *VotePostgres) CountVoters(matchID int) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM votes_log WHERE match_id = $1", matchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count voters: %w", err)
	}
	return count, nil
}

func (r *VotePostgres) GetRatingsByMatch(matchID int) ([]models.RatingSubmission, error) {
	rows, err := r.db.Query(
		"SELECT match_id, rated_player_id, score FROM ratings WHERE match_id = $1", matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer rows.Close()

	return scanRatings(rows)
}

func (r *VotePostgres) GetAllRatings() ([]models.RatingSubmission, error) {
	rows, err := r.db.Query("SELECT match_id, rated_player_id, score FROM ratings")
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer rows.Close()

	return scanRatings(rows)
}

func scanRatings(rows *sql.Rows) ([]models.RatingSubmission, error) {
	var ratings []models.RatingSubmission
	for rows.Next() {
		var rt models.RatingSubmission
		if err := rows.Scan(&rt.MatchID, &rt.RatedPlayerID, &rt.Score); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}
