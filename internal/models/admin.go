package models

import "time"

// Admin is a dashboard operator. At least one must always exist.
type Admin struct {
	ID           uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"type:varchar(32);not null;default:admin" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a *Admin) GetID() uint   { return a.ID }
func (a *Admin) SetID(id uint) { a.ID = id }
