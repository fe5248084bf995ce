package service

import (
	"context"
	"fmt"

	"github.com/Eursukkul/eventhub/internal/dto"
	"github.com/Eursukkul/eventhub/internal/models"
	"github.com/Eursukkul/eventhub/internal/repository"
)

type ParticipantService interface {
	ListParticipants(ctx context.Context) ([]models.Participant, error)
	CountParticipants(ctx context.Context) (int64, error)
	GetParticipant(ctx context.Context, id uint) (*models.Participant, error)
	CreateParticipant(ctx context.Context, in dto.ParticipantInput) (*models.Participant, error)
	UpdateParticipant(ctx context.Context, id uint, in dto.ParticipantInput) (*models.Participant, error)
	DeleteParticipant(ctx context.Context, id uint) error
}

type participantService struct {
	participants repository.ParticipantRepository
	events       repository.EventRepository
	notifier     Notifier
	now          Clock
}

func NewParticipantService(
	participants repository.ParticipantRepository,
	events repository.EventRepository,
	notifier Notifier,
	now Clock,
) ParticipantService {
	return &participantService{
		participants: participants,
		events:       events,
		notifier:     notifier,
		now:          now,
	}
}

func (s *participantService) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	participants, err := s.participants.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}

func (s *participantService) CountParticipants(ctx context.Context) (int64, error) {
	n, err := s.participants.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count participants: %w", err)
	}
	return n, nil
}

func (s *participantService) GetParticipant(ctx context.Context, id uint) (*models.Participant, error) {
	participant, err := s.participants.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrParticipantNotFound)
	}
	return participant, nil
}

func (s *participantService) CreateParticipant(ctx context.Context, in dto.ParticipantInput) (*models.Participant, error) {
	events, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}

	participant := &models.Participant{}
	in.Apply(participant)
	participant.Events = events

	if err := s.participants.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
	}

	publish(s.notifier, s.now, "participant", "created", participant.ID, participant.Name)
	return participant, nil
}

func (s *participantService) UpdateParticipant(ctx context.Context, id uint, in dto.ParticipantInput) (*models.Participant, error) {
	participant, err := s.GetParticipant(ctx, id)
	if err != nil {
		return nil, err
	}

	events, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}

	in.Apply(participant)
	if err := s.participants.Update(ctx, participant, events); err != nil {
		return nil, fmt.Errorf("update participant: %w", err)
	}

	publish(s.notifier, s.now, "participant", "updated", participant.ID, participant.Name)
	return participant, nil
}

func (s *participantService) DeleteParticipant(ctx context.Context, id uint) error {
	participant, err := s.GetParticipant(ctx, id)
	if err != nil {
		return err
	}

	if err := s.participants.Delete(ctx, id); err != nil {
		return notFound(err, ErrParticipantNotFound)
	}

	publish(s.notifier, s.now, "participant", "deleted", participant.ID, participant.Name)
	return nil
}

func (s *participantService) resolve(ctx context.Context, in dto.ParticipantInput) ([]models.Event, error) {
	events, err := s.events.FindByIDs(ctx, in.EventIDs)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	have := make([]uint, len(events))
	for i, e := range events {
		have[i] = e.ID
	}
	if id, missing := firstMissing(in.EventIDs, have); missing {
		return nil, dto.FieldErrors{"events": dto.UnknownChoice(id)}
	}
	return events, nil
}
