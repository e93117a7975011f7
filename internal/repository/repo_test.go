package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, NewUserRepo(gdb).Migrate())
	require.NoError(t, NewMenuRepo(gdb).Migrate())
	require.NoError(t, NewCartRepo(gdb).Migrate())
	require.NoError(t, NewPaymentRepo(gdb).Migrate())
	return gdb
}
