package dto

import (
	"net/url"
	"time"

	"github.com/Eursukkul/eventhub/internal/models"
)

// EventForm holds the raw submitted values so an invalid form can be
// re-rendered exactly as typed.
type EventForm struct {
	Name         string
	Description  string
	Date         string
	Time         string
	Location     string
	Category     string
	Participants []string
}

// EventInput is a validated EventForm. CategoryID and ParticipantIDs are
// well-formed but not yet checked against the store.
type EventInput struct {
	Name           string
	Description    string
	Date           time.Time
	Time           string
	Location       string
	CategoryID     uint
	ParticipantIDs []uint
}

func BindEventForm(values url.Values) EventForm {
	return EventForm{
		Name:         values.Get("name"),
		Description:  values.Get("description"),
		Date:         values.Get("date"),
		Time:         values.Get("time"),
		Location:     values.Get("location"),
		Category:     values.Get("category"),
		Participants: values["participants"],
	}
}

func EventFormFrom(e *models.Event) EventForm {
	return EventForm{
		Name:         e.Name,
		Description:  e.Description,
		Date:         e.Day(),
		Time:         e.Time,
		Location:     e.Location,
		Category:     idString(e.CategoryID),
		Participants: idStrings(e.ParticipantIDs()),
	}
}

func (f EventForm) Validate() (EventInput, FieldErrors) {
	errs := FieldErrors{}
	in := EventInput{
		Name:           cleanText(errs, "name", f.Name, 200),
		Description:    cleanText(errs, "description", f.Description, 0),
		Date:           cleanDate(errs, "date", f.Date),
		Time:           cleanTime(errs, "time", f.Time),
		Location:       cleanText(errs, "location", f.Location, 255),
		CategoryID:     cleanChoice(errs, "category", f.Category),
		ParticipantIDs: cleanMultiChoice(errs, "participants", f.Participants),
	}
	return in, errs
}

// IsCategory reports whether id is the selected category.
func (f EventForm) IsCategory(id uint) bool {
	return containsID([]string{f.Category}, id)
}

// HasParticipant reports whether id is among the selected participants.
func (f EventForm) HasParticipant(id uint) bool {
	return containsID(f.Participants, id)
}

// Apply copies the scalar fields onto e. The participant set is written by
// the repository.
func (in EventInput) Apply(e *models.Event) {
	e.Name = in.Name
	e.Description = in.Description
	e.Date = in.Date
	e.Time = in.Time
	e.Location = in.Location
	e.CategoryID = in.CategoryID
}
