package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"photo-backend/internal/models"
)

// UserService owns every read and write against the users table.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// FindCriteria selects at most one lookup key. Zero-valued fields are ignored.
type FindCriteria struct {
	ID       string
	Username string
	Email    string
}

// FindUser returns the matching user, or (nil, nil) when no user matches.
// A missing record is a normal outcome, not an error.
func (s *UserService) FindUser(ctx context.Context, criteria FindCriteria) (*models.User, error) {
	query := s.db.WithContext(ctx)
	switch {
	case criteria.ID != "":
		query = query.Where("id = ?", criteria.ID)
	case criteria.Username != "":
		query = query.Where("username = ?", criteria.Username)
	case criteria.Email != "":
		query = query.Where("email = ?", criteria.Email)
	default:
		return nil, nil
	}

	var user models.User
	err := query.First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("user lookup failed: %v", err)
		return nil, ErrStorage
	}
	return &user, nil
}

// Register creates a new account. A username collision is reported before an
// email collision when both apply. Two racing registrations on the same
// username are arbitrated by the unique index; the loser gets ErrStorage.
func (s *UserService) Register(ctx context.Context, username, email, password string) (string, error) {
	existing, err := s.FindUser(ctx, FindCriteria{Username: username})
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrUsernameExists
	}

	existing, err = s.FindUser(ctx, FindCriteria{Email: email})
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailExists
	}

	hash, err := HashPassword(password)
	if err != nil {
		log.Printf("password hashing failed: %v", err)
		return "", ErrStorage
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		log.Printf("user insert failed: %v", err)
		return "", ErrStorage
	}

	return user.ID, nil
}

// Login verifies the credentials and returns the user. An unknown username
// and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.FindUser(ctx, FindCriteria{Username: username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		log.Printf("password verification failed for user %s: %v", user.ID, err)
		return nil, ErrStorage
	}

	return user, nil
}

// UpdateEmail sets a new email on an existing user. A duplicate email trips
// the unique constraint and surfaces as ErrStorage, leaving the row untouched.
func (s *UserService) UpdateEmail(ctx context.Context, userID, newEmail string) error {
	user, err := s.FindUser(ctx, FindCriteria{ID: userID})
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	err = s.db.WithContext(ctx).Model(user).Update("email", newEmail).Error
	if err != nil {
		log.Printf("email update failed for user %s: %v", userID, err)
		return ErrStorage
	}
	return nil
}

// DeleteUser removes the user; owned photos and activity logs go with it.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	user, err := s.FindUser(ctx, FindCriteria{ID: userID})
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.db.WithContext(ctx).Delete(user).Error; err != nil {
		log.Printf("user delete failed for user %s: %v", userID, err)
		return ErrStorage
	}
	return nil
}
