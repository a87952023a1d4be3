package models

import "time"

// Builder is a developer referenced by properties and projects.
type Builder struct {
	ID            uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	ProjectsCount int       `json:"projects_count"`
	Image         string    `json:"image"`
	Description   string    `gorm:"type:text" json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

func (b *Builder) GetID() uint   { return b.ID }
func (b *Builder) SetID(id uint) { b.ID = id }
