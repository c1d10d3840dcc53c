package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	appErr "github.com/campuslab/printbooth/internal/pkg/errors"
	"github.com/campuslab/printbooth/internal/service"
	"github.com/campuslab/printbooth/test/testutil"
)

func seedParams() service.SeedManagerParams {
	return service.SeedManagerParams{
		Name:          "Default Manager",
		Email:         "manager@printbooth.local",
		Password:      "bootstrap-secret",
		BoothName:     "Main Booth",
		BoothLocation: "Student Union Building",
		BoothCode:     "BOOTH-001",
		PaperCapacity: 500,
		PrinterName:   "Main Printer",
		PrinterModel:  "HP LaserJet Pro M404dn",
	}
}

func TestEnsureSeedManagerIdempotent(t *testing.T) {
	managers := testutil.NewFakeBoothManagerRepository()

	created, first, err := service.EnsureSeedManager(context.Background(), managers, seedParams())
	require.NoError(t, err)
	require.True(t, created)
	require.Empty(t, first.PasswordHash)

	created, second, err := service.EnsureSeedManager(context.Background(), managers, seedParams())
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first.ID, second.ID)
	require.Len(t, managers.Items, 1)
}

func TestEnsureSeedManagerRequiresPassword(t *testing.T) {
	managers := testutil.NewFakeBoothManagerRepository()
	params := seedParams()
	params.Password = ""

	created, _, err := service.EnsureSeedManager(context.Background(), managers, params)
	require.ErrorIs(t, err, appErr.ErrInvalid)
	require.False(t, created)
	require.Empty(t, managers.Items)
}

func TestEnsureSeedManagerKeepsExistingCredentials(t *testing.T) {
	managers := testutil.NewFakeBoothManagerRepository()

	_, _, err := service.EnsureSeedManager(context.Background(), managers, seedParams())
	require.NoError(t, err)
	before, err := managers.GetByEmail(context.Background(), "manager@printbooth.local")
	require.NoError(t, err)

	params := seedParams()
	params.Password = "different-secret"
	created, _, err := service.EnsureSeedManager(context.Background(), managers, params)
	require.NoError(t, err)
	require.False(t, created)

	after, err := managers.GetByEmail(context.Background(), "manager@printbooth.local")
	require.NoError(t, err)
	require.Equal(t, before.PasswordHash, after.PasswordHash)
}
