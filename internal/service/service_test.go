package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MDMahidul/bistro-boss-server/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, repository.NewUserRepo(gdb).Migrate())
	require.NoError(t, repository.NewMenuRepo(gdb).Migrate())
	require.NoError(t, repository.NewCartRepo(gdb).Migrate())
	require.NoError(t, repository.NewPaymentRepo(gdb).Migrate())
	return gdb
}
