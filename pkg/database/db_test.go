package database

import (
	"testing"

	"Foodgram/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	t.Parallel()

	for _, driver := range []string{config.DriverMySQL, config.DriverPostgres, config.DriverSQLite} {
		d, err := Dialector(config.Database{Driver: driver, Dsn: "x"})
		require.NoError(t, err, driver)
		assert.Equal(t, driver, d.Name())
	}

	_, err := Dialector(config.Database{Driver: "oracle"})
	assert.Error(t, err)
}

func TestNewDB_SQLiteMigrate(t *testing.T) {
	t.Parallel()

	conf := config.Default()
	conf.Database.Dsn = "file:dbtest?mode=memory&cache=shared"

	db, err := NewDB(conf)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "ingredients", "tags", "recipes", "recipe_ingredients", "recipe_tags", "recipe_relations", "user_follow"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
