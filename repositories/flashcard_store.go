package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/studyflash/flashcards-api/errs"
	"github.com/studyflash/flashcards-api/models"
)

type FlashcardStore struct {
	db *gorm.DB
}

func NewFlashcardStore(db *gorm.DB) *FlashcardStore {
	return &FlashcardStore{db: db}
}

// ownedByUser scopes flashcard queries to sets owned by user.
func (s *FlashcardStore) ownedByUser(ctx context.Context, user *models.User) *gorm.DB {
	return s.db.WithContext(ctx).
		Select("flash_cards.*").
		Joins("JOIN study_sets ON study_sets.id = flash_cards.study_set_id").
		Where("study_sets.user_id = ?", user.ID)
}

// ListForUser returns the user's flashcards across all their sets. When
// studySetID is non-nil the result is restricted to that set; a filter
// pointing at another user's set simply matches nothing.
func (s *FlashcardStore) ListForUser(ctx context.Context, user *models.User, studySetID *uint) ([]models.FlashCard, error) {
	cards := []models.FlashCard{}
	q := s.ownedByUser(ctx, user)
	if studySetID != nil {
		q = q.Where("flash_cards.study_set_id = ?", *studySetID)
	}
	err := q.Order("flash_cards.id").Find(&cards).Error
	return cards, err
}

// GetForUser returns the flashcard with the given id if the parent set is
// owned by user.
func (s *FlashcardStore) GetForUser(ctx context.Context, user *models.User, id uint) (*models.FlashCard, error) {
	var card models.FlashCard
	err := s.ownedByUser(ctx, user).
		Preload("StudySet").
		Where("flash_cards.id = ?", id).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &card, nil
}

// Create persists a new flashcard. The caller must have resolved and
// ownership-checked the parent set; card.StudySetID points at it. A duplicate
// term within the set violates the unique index and is reported as a conflict.
func (s *FlashcardStore) Create(ctx context.Context, card *models.FlashCard) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(card).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrConflict
		}
		return err
	}
	return nil
}

// Save persists field changes to an already ownership-checked flashcard.
func (s *FlashcardStore) Save(ctx context.Context, card *models.FlashCard) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(card).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrConflict
		}
		return err
	}
	return nil
}

// DeleteForUser removes the flashcard if its parent set is owned by user.
func (s *FlashcardStore) DeleteForUser(ctx context.Context, user *models.User, id uint) error {
	card, err := s.GetForUser(ctx, user, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(card).Error
}
