package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ContactMethodEmail = "email"
	ContactMethodPhone = "phone"

	TimeSlotMorning   = "morning"
	TimeSlotAfternoon = "afternoon"
	TimeSlotEvening   = "evening"
)

// Booking references exactly one Service. The reference is not enforced
// at the storage level, so a booking can outlive its service (an orphan);
// reads must tolerate a nil Service. UserID is nil for anonymous bookings
// and is set once at creation, never reassigned.
type Booking struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID uuid.UUID  `gorm:"type:uuid;index;not null" json:"serviceId"`
	Service   *Service   `gorm:"foreignKey:ServiceID" json:"service"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"userId,omitempty"`

	CustomerName  string    `gorm:"not null" json:"customerName"`
	Date          time.Time `gorm:"not null" json:"date"`
	ContactMethod string    `gorm:"type:varchar(10);not null" json:"contactMethod"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	TimeSlot      string    `gorm:"type:varchar(10);not null" json:"timeSlot"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
