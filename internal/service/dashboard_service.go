package service

import (
	"context"
	"fmt"

	"github.com/Eursukkul/eventhub/internal/dto"
	"github.com/Eursukkul/eventhub/internal/filter"
	"github.com/Eursukkul/eventhub/internal/repository"
)

type DashboardService interface {
	BuildDashboard(ctx context.Context, stat filter.StatType) (*dto.Dashboard, error)
}

type dashboardService struct {
	events       repository.EventRepository
	participants repository.ParticipantRepository
	now          Clock
}

func NewDashboardService(events repository.EventRepository, participants repository.ParticipantRepository, now Clock) DashboardService {
	return &dashboardService{events: events, participants: participants, now: now}
}

// BuildDashboard runs each aggregate as its own query. They are not read in
// one snapshot, so a write landing in between can make them disagree.
func (s *dashboardService) BuildDashboard(ctx context.Context, stat filter.StatType) (*dto.Dashboard, error) {
	today := filter.Today(s.now())
	d := &dto.Dashboard{ActiveStat: string(stat)}

	var err error
	if d.TotalEvents, err = s.events.Count(ctx, filter.Events{}); err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	if d.TotalParticipants, err = s.participants.Count(ctx); err != nil {
		return nil, fmt.Errorf("count participants: %w", err)
	}
	if d.UpcomingEvents, err = s.events.Count(ctx, filter.Stat(filter.StatUpcoming, today)); err != nil {
		return nil, fmt.Errorf("count upcoming events: %w", err)
	}
	if d.PastEvents, err = s.events.Count(ctx, filter.Stat(filter.StatPast, today)); err != nil {
		return nil, fmt.Errorf("count past events: %w", err)
	}
	if d.TodaysEvents, err = s.events.Find(ctx, filter.OnDay(today)); err != nil {
		return nil, fmt.Errorf("find today's events: %w", err)
	}
	if d.ListEvents, err = s.events.Find(ctx, filter.Stat(stat, today)); err != nil {
		return nil, fmt.Errorf("list %s events: %w", stat, err)
	}

	return d, nil
}
