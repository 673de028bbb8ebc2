package repositories

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/studyflash/flashcards-api/models"
)

// newTestDB opens a fresh in-memory database per test, migrated to the
// current schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.StudySet{}, &models.FlashCard{}, &models.AuthToken{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, PasswordHash: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createSet(t *testing.T, db *gorm.DB, owner *models.User, title string) *models.StudySet {
	t.Helper()
	s := &models.StudySet{Title: title, UserID: owner.ID}
	require.NoError(t, db.Create(s).Error)
	return s
}

func createCard(t *testing.T, db *gorm.DB, set *models.StudySet, term, definition string) *models.FlashCard {
	t.Helper()
	c := &models.FlashCard{StudySetID: set.ID, Term: term, Definition: definition}
	require.NoError(t, db.Create(c).Error)
	return c
}
