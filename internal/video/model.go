package video

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video represents a published video record
type Video struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	URL       string    `gorm:"not null" json:"videoUrl"`
	Image     string    `gorm:"not null" json:"image"`
	CreatedBy uuid.UUID `gorm:"type:uuid;index;not null" json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate hook to assign an ID when none is set
func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
