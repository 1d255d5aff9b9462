package persistence

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hsati/directory-backend/internal/domain/directory"
)

// setupEventMockDB wires gorm to a sqlmock connection so the tests can
// assert the SQL the repository emits against postgres.
func setupEventMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestGormEventRepository_DeleteSQL(t *testing.T) {
	db, mock := setupEventMockDB(t)
	repo := NewGormEventRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "events" WHERE id = $1`)).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Zero rows affected is still success: deletes are idempotent
	err := repo.Delete(context.Background(), 42)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormEventRepository_UpdateFieldsSQL(t *testing.T) {
	db, mock := setupEventMockDB(t)
	repo := NewGormEventRepository(db)

	mock.ExpectExec(`UPDATE "events" SET .+ WHERE id = \$\d`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "events" WHERE id = \$\d`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "eventdate", "image_url"}).
			AddRow(int64(7), "AGM", "2025-03-01", ""))

	event, err := repo.UpdateFields(context.Background(), 7, map[string]any{"title": "AGM"})
	require.NoError(t, err)
	assert.Equal(t, "AGM", event.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormEventRepository_FindAllSQL(t *testing.T) {
	db, mock := setupEventMockDB(t)
	repo := NewGormEventRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "events" ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "eventdate", "image_url"}))

	events, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func setupEventSQLiteDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL DEFAULT '',
			eventdate TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT ''
		)
	`).Error
	require.NoError(t, err)

	return db
}

func TestGormEventRepository_CreateAndUpdateWithSQLite(t *testing.T) {
	db := setupEventSQLiteDB(t)
	repo := NewGormEventRepository(db)
	ctx := context.Background()

	event := &directory.Event{Title: "Annual Dinner", EventDate: "2025-12-01"}
	require.NoError(t, repo.Create(ctx, event))
	assert.NotZero(t, event.ID)

	updated, err := repo.UpdateFields(ctx, event.ID, map[string]any{"image_url": "https://img/e.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "Annual Dinner", updated.Title)
	assert.Equal(t, "https://img/e.jpg", updated.ImageURL)
}
