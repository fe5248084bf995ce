package service

import (
	"context"
	"fmt"

	"github.com/Eursukkul/eventhub/internal/dto"
	"github.com/Eursukkul/eventhub/internal/filter"
	"github.com/Eursukkul/eventhub/internal/models"
	"github.com/Eursukkul/eventhub/internal/repository"
)

type EventService interface {
	ListEvents(ctx context.Context, f filter.Events) ([]models.Event, error)
	GetEvent(ctx context.Context, id uint) (*models.Event, error)
	// CreateEvent and UpdateEvent return dto.FieldErrors when the category or
	// a participant does not exist; nothing is written in that case.
	CreateEvent(ctx context.Context, in dto.EventInput) (*models.Event, error)
	UpdateEvent(ctx context.Context, id uint, in dto.EventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
}

type eventService struct {
	events       repository.EventRepository
	categories   repository.CategoryRepository
	participants repository.ParticipantRepository
	notifier     Notifier
	now          Clock
}

func NewEventService(
	events repository.EventRepository,
	categories repository.CategoryRepository,
	participants repository.ParticipantRepository,
	notifier Notifier,
	now Clock,
) EventService {
	return &eventService{
		events:       events,
		categories:   categories,
		participants: participants,
		notifier:     notifier,
		now:          now,
	}
}

func (s *eventService) ListEvents(ctx context.Context, f filter.Events) ([]models.Event, error) {
	events, err := s.events.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrEventNotFound)
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, in dto.EventInput) (*models.Event, error) {
	participants, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}

	event := &models.Event{}
	in.Apply(event)
	event.Participants = participants

	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	publish(s.notifier, s.now, "event", "created", event.ID, event.Name)
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id uint, in dto.EventInput) (*models.Event, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	participants, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}

	in.Apply(event)
	if err := s.events.Update(ctx, event, participants); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	publish(s.notifier, s.now, "event", "updated", event.ID, event.Name)
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id uint) error {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return err
	}

	if err := s.events.Delete(ctx, id); err != nil {
		return notFound(err, ErrEventNotFound)
	}

	publish(s.notifier, s.now, "event", "deleted", event.ID, event.Name)
	return nil
}

// resolve checks the input's references against the store and loads the
// selected participants.
func (s *eventService) resolve(ctx context.Context, in dto.EventInput) ([]models.Participant, error) {
	errs := dto.FieldErrors{}

	ok, err := s.categories.Exists(ctx, in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}
	if !ok {
		errs.Add("category", dto.MsgInvalidChoice)
	}

	participants, err := s.participants.FindByIDs(ctx, in.ParticipantIDs)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	have := make([]uint, len(participants))
	for i, p := range participants {
		have[i] = p.ID
	}
	if id, missing := firstMissing(in.ParticipantIDs, have); missing {
		errs.Add("participants", dto.UnknownChoice(id))
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return participants, nil
}
