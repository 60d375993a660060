package application

import (
	"testing"

	"futbolamigos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterService(t *testing.T) {
	t.Run("adds and lists players in insertion order", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewRosterServiceImpl(repo)

		id, err := svc.AddPlayer("Ana")
		require.NoError(t, err)
		assert.Equal(t, 1, id)

		id, err = svc.AddPlayer("  Bruno ")
		require.NoError(t, err)
		assert.Equal(t, 2, id)

		players, err := svc.ListPlayers()
		require.NoError(t, err)
		require.Len(t, players, 2)
		assert.Equal(t, "Ana", players[0].Name)
		assert.Equal(t, "Bruno", players[1].Name)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewRosterServiceImpl(repo)

		_, err := svc.AddPlayer("Ana")
		require.NoError(t, err)

		_, err = svc.AddPlayer("Ana")
		assert.ErrorIs(t, err, models.ErrDuplicateName)
	})

	t.Run("rejects empty names", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewRosterServiceImpl(repo)

		_, err := svc.AddPlayer("   ")
		assert.ErrorIs(t, err, models.ErrEmptyName)
	})

	t.Run("finds players by name", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewRosterServiceImpl(repo)

		id, err := svc.AddPlayer("Ana")
		require.NoError(t, err)

		got, err := svc.PlayerIDByName(" ana ")
		require.NoError(t, err)
		assert.Equal(t, id, got)

		_, err = svc.PlayerIDByName("Nadie")
		assert.ErrorIs(t, err, models.ErrPlayerNotFound)
	})
}
