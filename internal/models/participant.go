package models

import "time"

// Participant is the inverse side of Event.Participants; both share the
// event_participants join table.
type Participant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:254;not null" json:"email"`
	Events    []Event   `gorm:"many2many:event_participants;constraint:OnDelete:CASCADE" json:"events,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Participant) EventIDs() []uint {
	ids := make([]uint, len(p.Events))
	for i, e := range p.Events {
		ids[i] = e.ID
	}
	return ids
}
