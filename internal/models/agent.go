package models

import "time"

// Agent is a member of the sales team shown on the public site.
type Agent struct {
	ID             uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name           string    `gorm:"not null;index" json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Position       string    `json:"position"`
	Experience     string    `json:"experience"`
	PropertiesSold int       `json:"properties_sold"`
	Image          string    `json:"image"`
	Bio            string    `gorm:"type:text" json:"bio"`
	IsFavorite     bool      `gorm:"not null;default:false" json:"is_favorite"`
	CreatedAt      time.Time `json:"created_at"`
}

func (a *Agent) GetID() uint   { return a.ID }
func (a *Agent) SetID(id uint) { a.ID = id }
