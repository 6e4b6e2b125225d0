package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"blogapi/app/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, InitSchema(db))
	t.Cleanup(func() { db.Close() })

	return db
}

func testPost(id string, date time.Time) *models.Post {
	return &models.Post{
		ID:        id,
		Title:     "Title " + id,
		Content:   "Content " + id,
		Date:      date,
		UpdatedAt: time.Now().UTC(),
	}
}
