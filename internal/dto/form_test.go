package dto

import (
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Eursukkul/eventhub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors(t *testing.T) {
	errs := FieldErrors{}
	assert.False(t, errs.Any())
	assert.NoError(t, errs.Err())

	errs.Add("name", MsgRequired)
	errs.Add("name", "second message is ignored")
	errs.Add("date", MsgInvalidDate)

	assert.True(t, errs.Any())
	assert.True(t, errs.Has("name"))
	assert.False(t, errs.Has("email"))
	assert.Equal(t, MsgRequired, errs.Get("name"))
	assert.Equal(t, "invalid form: date: Enter a valid date.; name: This field is required.", errs.Error())

	var fe FieldErrors
	require.True(t, errors.As(errs.Err(), &fe))
	assert.Len(t, fe, 2)
}

func TestCategoryForm_Validate(t *testing.T) {
	form := BindCategoryForm(url.Values{"name": {"  Music "}, "description": {"Live shows"}})

	in, errs := form.Validate()

	assert.False(t, errs.Any())
	assert.Equal(t, CategoryInput{Name: "Music", Description: "Live shows"}, in)

	var c models.Category
	in.Apply(&c)
	assert.Equal(t, "Music", c.Name)
}

func TestCategoryForm_Validate_Errors(t *testing.T) {
	form := CategoryForm{Name: strings.Repeat("a", 101), Description: "   "}

	_, errs := form.Validate()

	assert.Equal(t, "Ensure this value has at most 100 characters (it has 101).", errs.Get("name"))
	assert.Equal(t, MsgRequired, errs.Get("description"))
}

func TestCategoryFormFrom(t *testing.T) {
	form := CategoryFormFrom(&models.Category{ID: 1, Name: "Tech", Description: "Talks"})

	assert.Equal(t, CategoryForm{Name: "Tech", Description: "Talks"}, form)
}

func validEventValues() url.Values {
	return url.Values{
		"name":         {"Jazz Music Festival"},
		"description":  {"An evening of jazz."},
		"date":         {"2026-10-17"},
		"time":         {"19:30"},
		"location":     {"Town Hall, Auckland"},
		"category":     {"2"},
		"participants": {"5", "3", "5", ""},
	}
}

func TestEventForm_Validate(t *testing.T) {
	in, errs := BindEventForm(validEventValues()).Validate()

	require.False(t, errs.Any(), errs)
	assert.Equal(t, "Jazz Music Festival", in.Name)
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), in.Date)
	assert.Equal(t, "19:30", in.Time)
	assert.Equal(t, uint(2), in.CategoryID)
	assert.Equal(t, []uint{5, 3}, in.ParticipantIDs)
}

func TestEventForm_Validate_TimeWithSeconds(t *testing.T) {
	v := validEventValues()
	v.Set("time", "09:05:59")

	in, errs := BindEventForm(v).Validate()

	require.False(t, errs.Any())
	assert.Equal(t, "09:05", in.Time)
}

func TestEventForm_Validate_NoParticipants(t *testing.T) {
	v := validEventValues()
	v.Del("participants")

	in, errs := BindEventForm(v).Validate()

	require.False(t, errs.Any())
	assert.Empty(t, in.ParticipantIDs)
}

func TestEventForm_Validate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		want  string
	}{
		{"missing name", "name", "", MsgRequired},
		{"bad date", "date", "17/10/2026", MsgInvalidDate},
		{"impossible date", "date", "2026-02-30", MsgInvalidDate},
		{"missing date", "date", "", MsgRequired},
		{"bad time", "time", "25:00", MsgInvalidTime},
		{"missing category", "category", "", MsgRequired},
		{"non-numeric category", "category", "music", MsgInvalidChoice},
		{"zero category", "category", "0", MsgInvalidChoice},
		{"bad participant", "participants", "abc", `"abc" is not a valid value.`},
		{"long location", "location", strings.Repeat("x", 256), "Ensure this value has at most 255 characters (it has 256)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validEventValues()
			v.Set(tt.field, tt.value)

			_, errs := BindEventForm(v).Validate()

			assert.Equal(t, tt.want, errs.Get(tt.field))
			assert.Len(t, errs, 1)
		})
	}
}

func TestEventFormFrom(t *testing.T) {
	e := &models.Event{
		Name:         "Meetup",
		Description:  "Go talks",
		Date:         time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		Time:         "18:00",
		Location:     "Library",
		CategoryID:   4,
		Participants: []models.Participant{{ID: 1}, {ID: 9}},
	}

	form := EventFormFrom(e)

	assert.Equal(t, "2026-11-02", form.Date)
	assert.Equal(t, "4", form.Category)
	assert.Equal(t, []string{"1", "9"}, form.Participants)
	assert.True(t, form.IsCategory(4))
	assert.False(t, form.IsCategory(3))
	assert.True(t, form.HasParticipant(9))
	assert.False(t, form.HasParticipant(2))
}

func TestEventInput_Apply(t *testing.T) {
	e := &models.Event{ID: 7, Participants: []models.Participant{{ID: 1}}}
	in := EventInput{Name: "New", Time: "10:00", CategoryID: 3, ParticipantIDs: []uint{2}}

	in.Apply(e)

	assert.Equal(t, uint(7), e.ID)
	assert.Equal(t, "New", e.Name)
	assert.Equal(t, uint(3), e.CategoryID)
	assert.Equal(t, []uint{1}, e.ParticipantIDs())
}

func TestParticipantForm_Validate(t *testing.T) {
	form := BindParticipantForm(url.Values{
		"name":   {"Ana Silva"},
		"email":  {"ana.silva1@example.com"},
		"events": {"1", "2"},
	})

	in, errs := form.Validate()

	require.False(t, errs.Any())
	assert.Equal(t, ParticipantInput{Name: "Ana Silva", Email: "ana.silva1@example.com", EventIDs: []uint{1, 2}}, in)
	assert.True(t, form.HasEvent(2))
}

func TestParticipantForm_Validate_Errors(t *testing.T) {
	_, errs := ParticipantForm{Name: "", Email: "not-an-email"}.Validate()
	assert.Equal(t, MsgRequired, errs.Get("name"))
	assert.Equal(t, MsgInvalidEmail, errs.Get("email"))

	_, errs = ParticipantForm{Name: "Bo", Email: " "}.Validate()
	assert.Equal(t, MsgRequired, errs.Get("email"))
}

func TestParticipantFormFrom(t *testing.T) {
	p := &models.Participant{Name: "Bo", Email: "bo@example.com", Events: []models.Event{{ID: 3}}}

	assert.Equal(t, ParticipantForm{Name: "Bo", Email: "bo@example.com", Events: []string{"3"}}, ParticipantFormFrom(p))
}

func TestUnknownChoice(t *testing.T) {
	assert.Equal(t, "Select a valid choice. 42 is not one of the available choices.", UnknownChoice(42))
}

func TestEventListPage_SelectedCategory(t *testing.T) {
	p := EventListPage{CategoryID: "3"}

	assert.True(t, p.SelectedCategory(3))
	assert.False(t, p.SelectedCategory(4))
}

func TestChangeNotice_RoutingKey(t *testing.T) {
	assert.Equal(t, "event.created", ChangeNotice{Entity: "event", Action: "created"}.RoutingKey())
}
