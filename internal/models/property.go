package models

import (
	"time"

	"gorm.io/datatypes"
)

// Property is a listed unit. BuilderName caches Builder.Name for BuilderID.
type Property struct {
	ID           uint                        `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title        string                      `gorm:"not null" json:"title"`
	Description  string                      `gorm:"type:text" json:"description"`
	Price        float64                     `gorm:"not null;index" json:"price"`
	Location     string                      `gorm:"not null" json:"location"`
	PropertyType string                      `gorm:"type:varchar(64);index;not null" json:"property_type"`
	Status       string                      `gorm:"type:varchar(64);index;not null" json:"status"`
	Bedrooms     int                         `json:"bedrooms"`
	Bathrooms    int                         `json:"bathrooms"`
	AreaSqft     float64                     `json:"area_sqft"`
	BuilderID    *uint                       `gorm:"index" json:"builder_id"`
	BuilderName  string                      `json:"builder_name"`
	IsFavorite   bool                        `gorm:"not null;default:false" json:"is_favorite"`
	Images       datatypes.JSONSlice[string] `json:"images"`
	CreatedAt    time.Time                   `json:"created_at"`
}

func (p *Property) GetID() uint   { return p.ID }
func (p *Property) SetID(id uint) { p.ID = id }
