package models

import "time"

const (
	InquiryPending = "pending"
	InquirySolved  = "solved"
)

// Inquiry is a contact request submitted from the public site.
type Inquiry struct {
	ID         uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UserName   string    `gorm:"not null" json:"user_name"`
	Email      string    `gorm:"not null" json:"email"`
	Phone      string    `json:"phone"`
	PropertyID *uint     `json:"property_id"`
	Message    string    `gorm:"type:text" json:"message"`
	Status     string    `gorm:"type:varchar(16);index;not null;default:pending" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (i *Inquiry) GetID() uint   { return i.ID }
func (i *Inquiry) SetID(id uint) { i.ID = id }
