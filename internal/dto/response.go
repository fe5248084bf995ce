package dto

import (
	"time"

	"github.com/Eursukkul/eventhub/internal/models"
)

// Form actions shown on submit buttons and headings.
const (
	ActionCreate = "Create"
	ActionUpdate = "Update"
)

type Dashboard struct {
	TotalEvents       int64
	TotalParticipants int64
	UpcomingEvents    int64
	PastEvents        int64
	TodaysEvents      []models.Event
	ListEvents        []models.Event
	ActiveStat        string
}

type EventListPage struct {
	Events            []models.Event
	Categories        []models.Category
	TotalParticipants int64

	// Echoed filter values.
	Search     string
	CategoryID string
	StartDate  string
	EndDate    string
}

// SelectedCategory reports whether the list is filtered by id.
func (p EventListPage) SelectedCategory(id uint) bool {
	return p.CategoryID == idString(id)
}

type EventDetailPage struct {
	Event *models.Event
}

type EventFormPage struct {
	Action       string
	Event        *models.Event
	Form         EventForm
	Errors       FieldErrors
	Categories   []models.Category
	Participants []models.Participant
}

type EventDeletePage struct {
	Event *models.Event
}

type CategoryListPage struct {
	Categories []models.Category
}

type CategoryFormPage struct {
	Action   string
	Category *models.Category
	Form     CategoryForm
	Errors   FieldErrors
}

type CategoryDeletePage struct {
	Category   *models.Category
	EventCount int64
	// Cascade is set when deleting also removes the category's events.
	Cascade bool
	// Message explains why the delete was refused.
	Message string
}

type ParticipantListPage struct {
	Participants []models.Participant
}

type ParticipantFormPage struct {
	Action      string
	Participant *models.Participant
	Form        ParticipantForm
	Errors      FieldErrors
	Events      []models.Event
}

type ParticipantDeletePage struct {
	Participant *models.Participant
}

type ErrorPage struct {
	Code    int
	Message string
}

// ChangeNotice is the message body published after a successful write.
type ChangeNotice struct {
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     uint      `json:"id"`
	Name   string    `json:"name"`
	At     time.Time `json:"at"`
}

// RoutingKey is "<entity>.<action>", e.g. "event.created".
func (n ChangeNotice) RoutingKey() string {
	return n.Entity + "." + n.Action
}
