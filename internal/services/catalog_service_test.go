package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ubermelon/internal/repos"
	"ubermelon/internal/services"
)

func TestCatalog_AllStableOrder(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc := services.NewCatalogService(repos.NewMelonRepo(db))
	melons, err := svc.All()
	require.NoError(t, err)
	require.NotEmpty(t, melons)
	for i := 1; i < len(melons); i++ {
		require.Greater(t, melons[i].ID, melons[i-1].ID)
	}
}

func TestCatalog_GetUnknownIsNotFound(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc := services.NewCatalogService(repos.NewMelonRepo(db))

	_, err = svc.Get(999)
	require.ErrorIs(t, err, services.ErrMelonNotFound)

	m, err := svc.Get(1)
	require.NoError(t, err)
	require.Equal(t, "Watermelon", m.Name)
}
