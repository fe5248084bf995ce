package models

import "time"

const (
	// DateLayout is the wire and storage format of Event.Date.
	DateLayout = "2006-01-02"
	// TimeLayout is the stored format of Event.Time.
	TimeLayout = "15:04"
)

type Event struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Name         string        `gorm:"size:200;not null" json:"name"`
	Description  string        `gorm:"type:text;not null" json:"description"`
	Date         time.Time     `gorm:"type:date;not null;index" json:"date"`
	Time         string        `gorm:"size:5;not null" json:"time"`
	Location     string        `gorm:"size:255;not null" json:"location"`
	CategoryID   uint          `gorm:"not null;index" json:"category_id"`
	Category     Category      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Participants []Participant `gorm:"many2many:event_participants;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Day formats the event date as YYYY-MM-DD.
func (e Event) Day() string {
	return e.Date.Format(DateLayout)
}

func (e Event) ParticipantIDs() []uint {
	ids := make([]uint, len(e.Participants))
	for i, p := range e.Participants {
		ids[i] = p.ID
	}
	return ids
}
