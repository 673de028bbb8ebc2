package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyflash/flashcards-api/errs"
	"github.com/studyflash/flashcards-api/models"
)

func TestFlashcardStore_ListScopedThroughParentSet(t *testing.T) {
	db := newTestDB(t)
	store := NewFlashcardStore(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	aliceSet := createSet(t, db, alice, "History")
	bobSet := createSet(t, db, bob, "Chemistry")
	createCard(t, db, aliceSet, "WWI", "1914-1918")
	createCard(t, db, aliceSet, "WWII", "1939-1945")
	createCard(t, db, bobSet, "H2O", "Water")

	cards, err := store.ListForUser(ctx, alice, nil)
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	cards, err = store.ListForUser(ctx, bob, nil)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "H2O", cards[0].Term)
}

func TestFlashcardStore_FilterByForeignSetYieldsEmpty(t *testing.T) {
	db := newTestDB(t)
	store := NewFlashcardStore(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	bobSet := createSet(t, db, bob, "Chemistry")
	createCard(t, db, bobSet, "H2O", "Water")

	// Filtering on someone else's set is not an error, just empty.
	cards, err := store.ListForUser(ctx, alice, &bobSet.ID)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestFlashcardStore_GetHidesForeignCards(t *testing.T) {
	db := newTestDB(t)
	store := NewFlashcardStore(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	set := createSet(t, db, alice, "History")
	card := createCard(t, db, set, "WWI", "1914-1918")

	got, err := store.GetForUser(ctx, alice, card.ID)
	require.NoError(t, err)
	assert.Equal(t, "WWI", got.Term)
	assert.True(t, got.OwnedBy(alice))
	assert.False(t, got.OwnedBy(bob))

	_, err = store.GetForUser(ctx, bob, card.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestFlashcardStore_DuplicateTermWithinSetConflicts(t *testing.T) {
	db := newTestDB(t)
	store := NewFlashcardStore(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	set := createSet(t, db, alice, "History")
	otherSet := createSet(t, db, alice, "History II")

	first := &models.FlashCard{StudySetID: set.ID, Term: "WWI", Definition: "1914-1918"}
	require.NoError(t, store.Create(ctx, first))

	dup := &models.FlashCard{StudySetID: set.ID, Term: "WWI", Definition: "The Great War"}
	assert.ErrorIs(t, store.Create(ctx, dup), errs.ErrConflict)

	// The same term in a different set is fine.
	elsewhere := &models.FlashCard{StudySetID: otherSet.ID, Term: "WWI", Definition: "1914-1918"}
	assert.NoError(t, store.Create(ctx, elsewhere))
}

func TestFlashcardStore_SaveDuplicateTermConflicts(t *testing.T) {
	db := newTestDB(t)
	store := NewFlashcardStore(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	set := createSet(t, db, alice, "History")
	createCard(t, db, set, "WWI", "1914-1918")
	card := createCard(t, db, set, "WWII", "1939-1945")

	got, err := store.GetForUser(ctx, alice, card.ID)
	require.NoError(t, err)
	got.Term = "WWI"
	assert.ErrorIs(t, store.Save(ctx, got), errs.ErrConflict)
}

func TestFlashcardStore_DeleteScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	store := NewFlashcardStore(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	set := createSet(t, db, alice, "History")
	card := createCard(t, db, set, "WWI", "1914-1918")

	assert.ErrorIs(t, store.DeleteForUser(ctx, bob, card.ID), errs.ErrNotFound)
	require.NoError(t, store.DeleteForUser(ctx, alice, card.ID))

	var count int64
	require.NoError(t, db.Model(&models.FlashCard{}).Count(&count).Error)
	assert.Zero(t, count)
}
