package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"futbolamigos/internal/models"

	"github.com/lib/pq"
)

type RosterPostgres struct {
	db    *sql.DB
	cache *PlayerCache
}

func NewRosterPostgres(db *sql.DB) *RosterPostgres {
	return &RosterPostgres{db: db, cache: NewPlayerCache()}
}

func (r *RosterPostgres) AddPlayer(name string) (int, error) {
	var id int
	err := r.db.QueryRow("INSERT INTO players (name) VALUES ($1) RETURNING id", name).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, models.ErrDuplicateName
		}
		return 0, fmt.Errorf("failed to insert player: %w", err)
	}
	r.cache.Set(normalizeName(name), id)
	return id, nil
}

func (r *RosterPostgres) GetAllPlayers() ([]models.Player, error) {
	rows, err := r.db.Query("SELECT id, name FROM players ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to get all players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (r *RosterPostgres) GetPlayerByID(id int) (models.Player, error) {
	var p models.Player
	err := r.db.QueryRow("SELECT id, name FROM players WHERE id = $1", id).Scan(&p.ID, &p.Name)
	if err == sql.ErrNoRows {
		return models.Player{}, models.ErrPlayerNotFound
	}
	if err != nil {
		return models.Player{}, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	return p, nil
}

func (r *RosterPostgres) GetPlayerIDByName(name string) (int, error) {
	if id, ok := r.cache.Get(normalizeName(name)); ok {
		return id, nil
	}

	var id int
	err := r.db.QueryRow("SELECT id FROM players WHERE LOWER(name) = LOWER($1)", name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, models.ErrPlayerNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up player %q: %w", name, err)
	}

	r.cache.Set(normalizeName(name), id)
	return id, nil
}
