package repositories

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Lewis3ai/INFOA1test/models"
)

// helper: new GORM DB using a sqlmock connection with MySQL dialect.
func newMySQLMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	// Important: pass existing *sql.DB to gorm's mysql driver.
	dial := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true, // no real server to ping
	})

	gdb, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock, sqlDB
}

func TestUserRepository_Create(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users` (`username`,`email`,`password`,`created_at`,`updated_at`) VALUES (?,?,?,?,?)")).
		WithArgs("ash", "ash@x.com", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	u := &models.User{Username: "ash", Email: "ash@x.com", Password: "hash", CreatedAt: now, UpdatedAt: now}
	err := repo.Create(u)
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.ID) // GORM maps last insert id
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users`")).
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry 'ash' for key 'users.idx_users_username'"})
	mock.ExpectRollback()

	err := repo.Create(&models.User{Username: "ash", Email: "ash@x.com", Password: "hash"})
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()

	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password", "created_at", "updated_at"}).
		AddRow(2, "ash", "ash@x.com", "hash", time.Now(), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `users` WHERE username = ? ORDER BY `users`.`id` LIMIT ?",
	)).WithArgs("ash", sqlmock.AnyArg()).
		WillReturnRows(rows)

	u, err := repo.FindByUsername("ash")
	require.NoError(t, err)
	assert.Equal(t, uint(2), u.ID)
	assert.Equal(t, "ash@x.com", u.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	db, mock, sqlDB := newMySQLMockDB(t)
	defer sqlDB.Close()
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `users` WHERE `users`.`id` = ?")).
		WithArgs(999).
		WillReturnResult(sqlmock.NewResult(0, 0)) // RowsAffected = 0 -> not found
	mock.ExpectCommit()

	err := repo.Delete(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
