package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project is a development (a group of units) by a builder.
type Project struct {
	ID             uint                        `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title          string                      `gorm:"not null" json:"title"`
	Description    string                      `gorm:"type:text" json:"description"`
	Location       string                      `gorm:"not null" json:"location"`
	Status         string                      `gorm:"type:varchar(64);index;not null" json:"status"`
	CompletionDate string                      `json:"completion_date"`
	TotalUnits     int                         `json:"total_units"`
	BuilderID      *uint                       `gorm:"index" json:"builder_id"`
	BuilderName    string                      `json:"builder_name"`
	Images         datatypes.JSONSlice[string] `json:"images"`
	Tag            string                      `gorm:"type:varchar(64);index" json:"tag"`
	IsFavorite     bool                        `gorm:"not null;default:false" json:"is_favorite"`
	Type           string                      `json:"type"`
	Area           string                      `json:"area"`
	PriceRange     string                      `json:"price_range"`
	Address        string                      `json:"address"`
	City           string                      `json:"city"`
	State          string                      `json:"state"`
	Pincode        string                      `json:"pincode"`
	CreatedAt      time.Time                   `json:"created_at"`
}

func (p *Project) GetID() uint   { return p.ID }
func (p *Project) SetID(id uint) { p.ID = id }
