package application

import (
	"sort"

	"futbolamigos/internal/models"
	"futbolamigos/internal/repository"
)

type StandingsServiceImpl struct {
	roster  repository.Roster
	matches repository.Match
	votes   repository.Vote
}

func NewStandingsServiceImpl(roster repository.Roster, matches repository.Match, votes repository.Vote) *StandingsServiceImpl {
	return &StandingsServiceImpl{roster: roster, matches: matches, votes: votes}
}

// MatchStandings returns the per-match table: every rated player with the
// unweighted mean of the scores submitted for them, rounded to one decimal,
// sorted by mean descending with player name ascending as the tiebreak.
// A match nobody has voted on yet yields an empty table, not an error.
func (s *StandingsServiceImpl) MatchStandings(matchID int) ([]models.MatchStandingRow, error) {
	if _, err := s.matches.GetByID(matchID); err != nil {
		return nil, err
	}

	ratings, err := s.votes.GetRatingsByMatch(matchID)
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return []models.MatchStandingRow{}, nil
	}

	players, err := s.playersByID()
	if err != nil {
		return nil, err
	}

	sums := make(map[int]int)
	counts := make(map[int]int)
	for _, r := range ratings {
		sums[r.RatedPlayerID] += r.Score
		counts[r.RatedPlayerID]++
	}

	rows := make([]models.MatchStandingRow, 0, len(sums))
	for id, sum := range sums {
		rows = append(rows, models.MatchStandingRow{
			Player:    players[id],
			MeanScore: round1(float64(sum) / float64(counts[id])),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].MeanScore != rows[j].MeanScore {
			return rows[i].MeanScore > rows[j].MeanScore
		}
		return rows[i].Player.Name < rows[j].Player.Name
	})
	return rows, nil
}

// SeasonStandings builds the season table. The average is the flat mean of
// every submission the player ever received, not a mean of per-match means.
// Win/draw/loss counts come from every match the player took part in, but
// only players with at least one rating appear in the table: never-rated
// players are dropped by the join, a known limitation kept on purpose.
func (s *StandingsServiceImpl) SeasonStandings() ([]models.SeasonStandingRow, error) {
	ratings, err := s.votes.GetAllRatings()
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return []models.SeasonStandingRow{}, nil
	}

	matches, err := s.matches.GetAll()
	if err != nil {
		return nil, err
	}
	participants, err := s.matches.GetAllParticipants()
	if err != nil {
		return nil, err
	}
	players, err := s.playersByID()
	if err != nil {
		return nil, err
	}

	outcomes := make(map[int]models.Outcome, len(matches))
	for _, m := range matches {
		outcomes[m.ID] = m.Outcome
	}

	sums := make(map[int]int)
	counts := make(map[int]int)
	for _, r := range ratings {
		sums[r.RatedPlayerID] += r.Score
		counts[r.RatedPlayerID]++
	}

	type record struct{ wins, draws, losses int }
	records := make(map[int]*record)
	for _, p := range participants {
		rec, ok := records[p.PlayerID]
		if !ok {
			rec = &record{}
			records[p.PlayerID] = rec
		}
		switch classifyOutcome(outcomes[p.MatchID], p.Team) {
		case outcomeWin:
			rec.wins++
		case outcomeDraw:
			rec.draws++
		case outcomeLoss:
			rec.losses++
		}
	}

	rows := make([]models.SeasonStandingRow, 0, len(sums))
	for id, sum := range sums {
		rec, ok := records[id]
		if !ok {
			// Rated but never on a team sheet: cannot happen through
			// RecordVote, and such a row would have no outcome counts.
			continue
		}
		total := rec.wins + rec.draws + rec.losses
		if total == 0 {
			continue
		}
		rows = append(rows, models.SeasonStandingRow{
			Player:   players[id],
			AvgScore: round1(float64(sum) / float64(counts[id])),
			Wins:     rec.wins,
			Draws:    rec.draws,
			Losses:   rec.losses,
			WinRate:  round2(float64(rec.wins) / float64(total)),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AvgScore != rows[j].AvgScore {
			return rows[i].AvgScore > rows[j].AvgScore
		}
		return rows[i].Player.Name < rows[j].Player.Name
	})
	return rows, nil
}

func (s *StandingsServiceImpl) playersByID() (map[int]models.Player, error) {
	all, err := s.roster.GetAllPlayers()
	if err != nil {
		return nil, err
	}
	byID := make(map[int]models.Player, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}
	return byID, nil
}
