package application

import (
	"strings"

	"futbolamigos/internal/models"
	"futbolamigos/internal/repository"
)

type RosterServiceImpl struct {
	repo repository.Roster
}

func NewRosterServiceImpl(repo repository.Roster) *RosterServiceImpl {
	return &RosterServiceImpl{repo: repo}
}

func (s *RosterServiceImpl) ListPlayers() ([]models.Player, error) {
	return s.repo.GetAllPlayers()
}

func (s *RosterServiceImpl) AddPlayer(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, models.ErrEmptyName
	}
	return s.repo.AddPlayer(name)
}

func (s *RosterServiceImpl) PlayerByID(id int) (models.Player, error) {
	return s.repo.GetPlayerByID(id)
}

func (s *RosterServiceImpl) PlayerIDByName(name string) (int, error) {
	return s.repo.GetPlayerIDByName(strings.TrimSpace(name))
}
