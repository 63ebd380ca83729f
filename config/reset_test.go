package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Lewis3ai/INFOA1test/models"
)

func newMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Pokemon{}, &models.UserPokemon{}))
	return db
}

func TestResetDB_DropsExistingRows(t *testing.T) {
	db := newMemoryDB(t)

	// GIVEN a populated schema
	require.NoError(t, db.Create(&models.User{Username: "ash", Email: "ash@x.com", Password: "hash"}).Error)
	require.NoError(t, db.Create(&models.Pokemon{ID: 25, Name: "Pikachu", Type1: "electric"}).Error)
	require.NoError(t, db.Create(&models.UserPokemon{UserID: 1, PokemonID: 25, Name: "Zappy"}).Error)

	// WHEN the schema is reset
	require.NoError(t, ResetDB(db))

	// THEN the tables exist again but hold nothing
	for _, model := range []any{&models.User{}, &models.Pokemon{}, &models.UserPokemon{}} {
		assert.True(t, db.Migrator().HasTable(model))
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		assert.Zero(t, n)
	}
}

func TestResetDB_SchemaUsableAfterReset(t *testing.T) {
	db := newMemoryDB(t)
	require.NoError(t, db.Create(&models.User{Username: "ash", Email: "ash@x.com", Password: "hash"}).Error)

	require.NoError(t, ResetDB(db))

	// Fresh inserts work, including reuse of previously taken values.
	assert.NoError(t, db.Create(&models.User{Username: "ash", Email: "ash@x.com", Password: "hash"}).Error)
}
