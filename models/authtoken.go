package models

import "time"

// AuthToken is an opaque bearer credential issued at login and deleted at
// logout. A user may hold several tokens at once (one per session).
type AuthToken struct {
	Key       string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"not null;index"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
