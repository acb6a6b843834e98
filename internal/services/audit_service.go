package services

import (
	"log"
	"sync"

	"gorm.io/gorm"

	"photo-backend/internal/models"
)

// AuditService appends rows to the activity log. Nothing in the request path
// reads them back.
type AuditService struct {
	db *gorm.DB
	wg sync.WaitGroup
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Log writes an activity row.
func (s *AuditService) Log(userID, activity, details string) error {
	entry := models.ActivityLog{
		UserID:   userID,
		Activity: activity,
		Details:  details,
	}
	return s.db.Create(&entry).Error
}

// Record writes an activity row in the background, best-effort: a failed
// insert is logged and never delays or fails the request that triggered it.
func (s *AuditService) Record(userID, activity, details string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.Log(userID, activity, details); err != nil {
			log.Printf("failed to record activity %q for user %s: %v", activity, userID, err)
		}
	}()
}

// Wait blocks until every in-flight Record has finished. Called before the
// database handle is closed.
func (s *AuditService) Wait() {
	s.wg.Wait()
}
