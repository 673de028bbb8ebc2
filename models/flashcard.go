package models

import "time"

// FlashCard represents a single term/definition pair inside a study set.
// The (study_set_id, term) unique index keeps terms unique within a set
// even under concurrent creates.
type FlashCard struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StudySetID uint      `gorm:"not null;index;uniqueIndex:idx_set_term" json:"study_set"`
	StudySet   StudySet  `gorm:"foreignKey:StudySetID" json:"-"`
	Term       string    `gorm:"not null;size:200;uniqueIndex:idx_set_term" json:"term"`
	Definition string    `gorm:"not null;size:200" json:"definition"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// OwnedBy resolves ownership through the parent study set. The StudySet
// association must be loaded.
func (f *FlashCard) OwnedBy(u *User) bool {
	return u != nil && f.StudySet.OwnedBy(u)
}
