package models

import "time"

// ActivityLog is an append-only audit row. Rows are written best-effort by the
// audit recorder and never read back by any route.
type ActivityLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:uuid;index;not null"`
	Activity  string    `json:"activity" gorm:"size:255;not null"`
	Details   string    `json:"details,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
