package application

import (
	"testing"
	"time"

	"futbolamigos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRoster(t *testing.T, repo *fakeRepo, names ...string) []int {
	t.Helper()
	ids := make([]int, 0, len(names))
	for _, name := range names {
		id, err := repo.AddPlayer(name)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestComposeMatch(t *testing.T) {
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	t.Run("creates match with participants on both teams", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewMatchServiceImpl(repo)
		ids := seedRoster(t, repo, "Ana", "Bruno", "Carla", "Diego")

		matchID, err := svc.ComposeMatch(date, models.OutcomeTeamA, ids[:2], ids[2:])
		require.NoError(t, err)
		assert.Equal(t, 1, matchID)

		participants, err := svc.ParticipantsOf(matchID)
		require.NoError(t, err)
		require.Len(t, participants, 4)

		teams := make(map[int]models.Team)
		for _, p := range participants {
			teams[p.PlayerID] = p.Team
		}
		assert.Equal(t, models.TeamA, teams[ids[0]])
		assert.Equal(t, models.TeamA, teams[ids[1]])
		assert.Equal(t, models.TeamB, teams[ids[2]])
		assert.Equal(t, models.TeamB, teams[ids[3]])
	})

	t.Run("rejects empty team", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewMatchServiceImpl(repo)
		ids := seedRoster(t, repo, "Ana", "Bruno")

		_, err := svc.ComposeMatch(date, models.OutcomeDraw, ids, nil)
		assert.ErrorIs(t, err, models.ErrEmptyTeam)

		_, err = svc.ComposeMatch(date, models.OutcomeDraw, nil, ids)
		assert.ErrorIs(t, err, models.ErrEmptyTeam)
	})

	t.Run("rejects overlapping teams", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewMatchServiceImpl(repo)
		ids := seedRoster(t, repo, "Ana", "Bruno", "Carla")

		_, err := svc.ComposeMatch(date, models.OutcomeTeamB, []int{ids[0], ids[1]}, []int{ids[1]})
		assert.ErrorIs(t, err, models.ErrOverlappingTeams)

		_, err = svc.ComposeMatch(date, models.OutcomeTeamB, []int{ids[0]}, []int{ids[0]})
		assert.ErrorIs(t, err, models.ErrOverlappingTeams)
	})

	t.Run("rejects player listed twice on the same team", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewMatchServiceImpl(repo)
		ids := seedRoster(t, repo, "Ana", "Bruno")

		_, err := svc.ComposeMatch(date, models.OutcomeDraw, []int{ids[0], ids[0]}, []int{ids[1]})
		assert.ErrorIs(t, err, models.ErrOverlappingTeams)
	})

	t.Run("rejects unknown outcome", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewMatchServiceImpl(repo)
		ids := seedRoster(t, repo, "Ana", "Bruno")

		_, err := svc.ComposeMatch(date, models.Outcome("TeamAWin"), []int{ids[0]}, []int{ids[1]})
		assert.ErrorIs(t, err, models.ErrInvalidOutcome)
	})

	t.Run("rejected composition persists nothing and does not consume an id", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewMatchServiceImpl(repo)
		ids := seedRoster(t, repo, "Ana", "Bruno", "Carla")

		first, err := svc.ComposeMatch(date, models.OutcomeTeamA, []int{ids[0], ids[1]}, []int{ids[2]})
		require.NoError(t, err)
		require.Equal(t, 1, first)

		_, err = svc.ComposeMatch(date, models.OutcomeTeamA, []int{ids[0]}, []int{ids[0]})
		require.ErrorIs(t, err, models.ErrOverlappingTeams)

		matches, err := svc.ListMatches()
		require.NoError(t, err)
		assert.Len(t, matches, 1)

		all, err := repo.GetAllParticipants()
		require.NoError(t, err)
		assert.Len(t, all, 3)

		second, err := svc.ComposeMatch(date, models.OutcomeDraw, []int{ids[0]}, []int{ids[1]})
		require.NoError(t, err)
		assert.Equal(t, 2, second)
	})

	t.Run("participants of unknown match", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewMatchServiceImpl(repo)

		_, err := svc.ParticipantsOf(99)
		assert.ErrorIs(t, err, models.ErrMatchNotFound)
	})
}
