// Package auth implements registration, login and the bearer-token lifecycle.
package auth

import (
	"context"
	"errors"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"

	"github.com/studyflash/flashcards-api/errs"
	"github.com/studyflash/flashcards-api/models"
)

// tokenLength is the size of issued token keys. 32 nanoid characters carry
// ~190 bits of entropy.
const tokenLength = 32

// Service issues and resolves opaque bearer tokens backed by the auth_tokens
// table. Tokens are revocable: logout deletes the presented token and nothing
// else.
type Service struct {
	db *gorm.DB
}

// NewService constructs the authentication service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Register creates a new user with a bcrypt-hashed password. A taken username
// or missing field yields a field-keyed validation error.
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	v := &errs.ValidationError{}
	if username == "" {
		v.Add("username", "this field is required")
	}
	if password == "" {
		v.Add("password", "this field is required")
	}
	if len(v.Fields) > 0 {
		return nil, v
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewValidation("username", "a user with that username already exists")
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a new token for the user. Unknown
// usernames and wrong passwords are both reported as ErrUnauthorized so the
// response does not reveal which accounts exist.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil || !CheckPassword(user.PasswordHash, password) {
		return "", errs.ErrUnauthorized
	}

	key, err := gonanoid.New(tokenLength)
	if err != nil {
		return "", err
	}

	token := models.AuthToken{Key: key, UserID: user.ID}
	if err := s.db.WithContext(ctx).Create(&token).Error; err != nil {
		return "", err
	}
	return key, nil
}

// Logout revokes the presented token. An unknown key is treated as an invalid
// credential.
func (s *Service) Logout(ctx context.Context, key string) error {
	result := s.db.WithContext(ctx).Delete(&models.AuthToken{}, "key = ?", key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrUnauthorized
	}
	return nil
}

// Authenticate resolves a token key to its owning user.
func (s *Service) Authenticate(ctx context.Context, key string) (*models.User, error) {
	if key == "" {
		return nil, errs.ErrUnauthorized
	}
	var token models.AuthToken
	err := s.db.WithContext(ctx).Preload("User").Where("key = ?", key).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}
	return &token.User, nil
}
