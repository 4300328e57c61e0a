package db

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSetDB(t *testing.T) {
	gormDB, err := OpenInMemory("db_set")
	require.NoError(t, err)
	t.Cleanup(func() { DB = nil })

	t.Run(`migration error is returned`, func(t *testing.T) {
		err := setDB(gormDB, false, func() error {
			return errors.New("нет прав на создание таблиц")
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "нет прав на создание таблиц")
	})

	t.Run(`migration applied`, func(t *testing.T) {
		DB = nil
		require.NoError(t, setDB(gormDB, false, AutoMigrateDB))
		require.Equal(t, gormDB, DB)
	})

	t.Run(`without migration`, func(t *testing.T) {
		DB = nil
		require.NoError(t, setDB(gormDB, false, nil))
		require.NotNil(t, DB)
	})
}
