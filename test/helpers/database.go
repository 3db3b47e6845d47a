package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kibahcorps/schedule1-go/internal/infrastructure/database"
)

// NewTestDB opens a migrated in-memory SQLite database closed at test cleanup
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.OpenMemory()
	require.NoError(t, err, "failed to create test database")
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
