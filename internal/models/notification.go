package models

import "time"

// Notification is one audit record. Only Read ever changes after insert.
type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Type      string    `gorm:"type:varchar(16);index;not null" json:"type"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	AdminID   uint      `json:"admin_id"`
	AdminName string    `json:"admin_name"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
}

func (n *Notification) GetID() uint   { return n.ID }
func (n *Notification) SetID(id uint) { n.ID = id }
