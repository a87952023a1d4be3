package models

import (
	"time"

	"gorm.io/datatypes"
)

// HomeContentSection stores one named block of the public home page as raw JSON.
type HomeContentSection struct {
	Section   string         `gorm:"primaryKey;type:varchar(64)" json:"section"`
	Content   datatypes.JSON `json:"content"`
	UpdatedAt time.Time      `json:"updated_at"`
}
