package models

import "time"

// StudySet represents a user's collection of flashcards
type StudySet struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null;size:200" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	UserID      uint      `gorm:"not null;index" json:"user"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	FlashCards []FlashCard `gorm:"foreignKey:StudySetID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"flashcards,omitempty"`
}

// OwnedBy reports whether u is the owner of the set.
func (s *StudySet) OwnedBy(u *User) bool {
	return u != nil && s.UserID == u.ID
}
