package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"photo-backend/internal/models"
)

// PhotoService owns every read and write against the photos table.
type PhotoService struct {
	db *gorm.DB
}

func NewPhotoService(db *gorm.DB) *PhotoService {
	return &PhotoService{db: db}
}

// AddPhoto persists a new photo owned by ownerID and returns its id.
func (s *PhotoService) AddPhoto(ctx context.Context, ownerID, payload string, description *string) (string, error) {
	photo := models.Photo{
		UserID:      ownerID,
		PhotoData:   payload,
		Description: description,
	}
	if err := s.db.WithContext(ctx).Create(&photo).Error; err != nil {
		log.Printf("photo insert failed: %v", err)
		return "", ErrStorage
	}
	return photo.ID, nil
}

// GetPhotoByID returns the photo, or (nil, nil) when no photo has that id.
func (s *PhotoService) GetPhotoByID(ctx context.Context, id string) (*models.Photo, error) {
	var photo models.Photo
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&photo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("photo lookup failed: %v", err)
		return nil, ErrStorage
	}
	return &photo, nil
}

// DeletePhoto removes an already-resolved photo. The caller is expected to
// have fetched it and checked ownership. Deletion is terminal; there is no
// update transition for photos.
func (s *PhotoService) DeletePhoto(ctx context.Context, photo *models.Photo) bool {
	if photo == nil {
		return false
	}
	if err := s.db.WithContext(ctx).Delete(photo).Error; err != nil {
		log.Printf("photo delete failed for photo %s: %v", photo.ID, err)
		return false
	}
	return true
}
