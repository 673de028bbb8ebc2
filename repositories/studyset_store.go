// Package repositories contains ownership-scoped data access for study sets
// and flashcards. Every query in this package filters by the owning user, so
// handlers cannot accidentally reach another user's rows.
package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/studyflash/flashcards-api/errs"
	"github.com/studyflash/flashcards-api/models"
)

type StudySetStore struct {
	db *gorm.DB
}

func NewStudySetStore(db *gorm.DB) *StudySetStore {
	return &StudySetStore{db: db}
}

// ListForUser returns all study sets owned by user.
func (s *StudySetStore) ListForUser(ctx context.Context, user *models.User) ([]models.StudySet, error) {
	sets := []models.StudySet{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", user.ID).
		Order("id").
		Find(&sets).Error
	return sets, err
}

// GetForUser returns the study set with the given id if user owns it, with
// its flashcards preloaded. A set owned by someone else is reported exactly
// like a missing one.
func (s *StudySetStore) GetForUser(ctx context.Context, user *models.User, id uint) (*models.StudySet, error) {
	var set models.StudySet
	err := s.db.WithContext(ctx).
		Preload("FlashCards").
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&set).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &set, nil
}

// Create persists a new study set owned by user. Any owner already present on
// the value is overwritten.
func (s *StudySetStore) Create(ctx context.Context, user *models.User, set *models.StudySet) error {
	set.UserID = user.ID
	return s.db.WithContext(ctx).Create(set).Error
}

// Save persists field changes to an already ownership-checked set.
func (s *StudySetStore) Save(ctx context.Context, set *models.StudySet) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(set).Error
}

// DeleteForUser removes the set and all its flashcards in one transaction.
func (s *StudySetStore) DeleteForUser(ctx context.Context, user *models.User, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var set models.StudySet
		err := tx.Where("id = ? AND user_id = ?", id, user.ID).First(&set).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrNotFound
			}
			return err
		}
		if err := tx.Where("study_set_id = ?", set.ID).Delete(&models.FlashCard{}).Error; err != nil {
			return err
		}
		return tx.Delete(&set).Error
	})
}
