package application

import (
	"time"

	"futbolamigos/internal/models"
	"futbolamigos/internal/repository"
	"futbolamigos/pkg/sheets"
)

type Logger interface {
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Info(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

type RosterService interface {
	ListPlayers() ([]models.Player, error)
	AddPlayer(name string) (int, error)
	PlayerByID(id int) (models.Player, error)
	PlayerIDByName(name string) (int, error)
}

type MatchService interface {
	ComposeMatch(date time.Time, outcome models.Outcome, teamA, teamB []int) (int, error)
	ListMatches() ([]models.Match, error)
	ParticipantsOf(matchID int) ([]models.Participant, error)
}

type VotingService interface {
	HasVoted(matchID, voterID int) (bool, error)
	RecordVote(matchID, voterID int, ratings map[int]int) error
	VotersCount(matchID int) (int, error)
}

type StandingsService interface {
	MatchStandings(matchID int) ([]models.MatchStandingRow, error)
	SeasonStandings() ([]models.SeasonStandingRow, error)
}

type ExportService interface {
	ExcelReport() ([]byte, error)
	SyncToGoogleSheet() (string, error)
}

type Service struct {
	Roster    RosterService
	Match     MatchService
	Voting    VotingService
	Standings StandingsService
	Export    ExportService
}

func NewService(repos *repository.Repository, sheetsClient sheets.Client, sheetsCfg sheets.Config, logger Logger) *Service {
	standings := NewStandingsServiceImpl(repos.Roster, repos.Match, repos.Vote)
	return &Service{
		Roster:    NewRosterServiceImpl(repos.Roster),
		Match:     NewMatchServiceImpl(repos.Match),
		Voting:    NewVotingServiceImpl(repos.Match, repos.Vote),
		Standings: standings,
		Export:    NewExportServiceImpl(standings, sheetsClient, sheetsCfg, logger),
	}
}
