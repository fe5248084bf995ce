package dto

import (
	"net/url"

	"github.com/Eursukkul/eventhub/internal/models"
)

type ParticipantForm struct {
	Name   string
	Email  string
	Events []string
}

type ParticipantInput struct {
	Name     string
	Email    string
	EventIDs []uint
}

func BindParticipantForm(values url.Values) ParticipantForm {
	return ParticipantForm{
		Name:   values.Get("name"),
		Email:  values.Get("email"),
		Events: values["events"],
	}
}

func ParticipantFormFrom(p *models.Participant) ParticipantForm {
	return ParticipantForm{
		Name:   p.Name,
		Email:  p.Email,
		Events: idStrings(p.EventIDs()),
	}
}

func (f ParticipantForm) Validate() (ParticipantInput, FieldErrors) {
	errs := FieldErrors{}
	in := ParticipantInput{
		Name:     cleanText(errs, "name", f.Name, 100),
		Email:    cleanEmail(errs, "email", f.Email, 254),
		EventIDs: cleanMultiChoice(errs, "events", f.Events),
	}
	return in, errs
}

func (f ParticipantForm) HasEvent(id uint) bool {
	return containsID(f.Events, id)
}

func (in ParticipantInput) Apply(p *models.Participant) {
	p.Name = in.Name
	p.Email = in.Email
}
