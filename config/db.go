// Picks the GORM driver by DBDriver. No repository/service code changes
// when you change databases.

package config

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"

	"github.com/Lewis3ai/INFOA1test/models"
)

// InitDB opens a database connection using the configured driver and
// applies auto-migrations for the three tables. TranslateError is on so
// unique-constraint violations surface as gorm.ErrDuplicatedKey across
// dialects.
func InitDB(cfg *Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	switch cfg.DBDriver {
	case "mysql":
		if cfg.MySQLDSN == "" {
			log.Fatal("[db] mysql selected but mysql_dsn empty")
		}
		db, err = gorm.Open(mysql.Open(cfg.MySQLDSN), gormCfg)
	case "postgres":
		if cfg.PostgresDSN == "" {
			log.Fatal("[db] postgres selected but postgres_dsn empty")
		}
		db, err = gorm.Open(postgres.Open(cfg.PostgresDSN), gormCfg)
	case "sqlite":
		// SQLite only needs a file path; the file is created if missing.
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	case "sqlserver":
		if cfg.SQLServerDSN == "" {
			log.Fatal("[db] sqlserver selected but sqlserver_dsn empty")
		}
		db, err = gorm.Open(sqlserver.Open(cfg.SQLServerDSN), gormCfg)
	default:
		log.Fatalf("[db] unknown DBDriver: %s", cfg.DBDriver)
	}

	if err != nil {
		log.Fatalf("[db] connection error: %v", err)
	}

	// Catalog first so the UserPokemon FKs have something to reference.
	if err := db.AutoMigrate(&models.User{}, &models.Pokemon{}, &models.UserPokemon{}); err != nil {
		log.Fatalf("[db] automigrate error: %v", err)
	}

	return db
}

// ResetDB drops the three tables and recreates them empty. Backs the
// admin "init" command; everything in the database is lost.
func ResetDB(db *gorm.DB) error {
	// UserPokemon first: it references the other two.
	if err := db.Migrator().DropTable(&models.UserPokemon{}, &models.User{}, &models.Pokemon{}); err != nil {
		return err
	}
	return db.AutoMigrate(&models.User{}, &models.Pokemon{}, &models.UserPokemon{})
}
