// Package seed fills the store with random sample categories, participants
// and events for local development.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/Eursukkul/eventhub/internal/filter"
	"github.com/Eursukkul/eventhub/internal/models"
	"github.com/Eursukkul/eventhub/internal/repository"
)

var ErrNoCategories = errors.New("events need at least one category")

type Options struct {
	Categories   int
	Events       int
	Participants int
}

func DefaultOptions() Options {
	return Options{Categories: 5, Events: 20, Participants: 30}
}

// Summary holds the totals in the store after a run, not just what the run added.
type Summary struct {
	Categories   int64
	Events       int64
	Participants int64
}

type Seeder struct {
	categories   repository.CategoryRepository
	participants repository.ParticipantRepository
	events       repository.EventRepository
	rng          *rand.Rand
	now          func() time.Time
	log          *slog.Logger
}

func New(
	categories repository.CategoryRepository,
	participants repository.ParticipantRepository,
	events repository.EventRepository,
	rng *rand.Rand,
	now func() time.Time,
	log *slog.Logger,
) *Seeder {
	return &Seeder{
		categories:   categories,
		participants: participants,
		events:       events,
		rng:          rng,
		now:          now,
		log:          log,
	}
}

func (s *Seeder) Run(ctx context.Context, opts Options) (*Summary, error) {
	if opts.Events > 0 && opts.Categories <= 0 {
		return nil, ErrNoCategories
	}

	categories, err := s.seedCategories(ctx, opts.Categories)
	if err != nil {
		return nil, err
	}
	participants, err := s.seedParticipants(ctx, opts.Participants)
	if err != nil {
		return nil, err
	}
	if err := s.seedEvents(ctx, opts.Events, categories, participants); err != nil {
		return nil, err
	}

	return s.summary(ctx)
}

func (s *Seeder) seedCategories(ctx context.Context, n int) ([]models.Category, error) {
	s.log.Info("creating categories", "count", n)

	categories := make([]models.Category, 0, n)
	for i := range n {
		name := categoryNames[i%len(categoryNames)]
		taken, err := s.categories.ExistsByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("check category %q: %w", name, err)
		}
		if taken {
			name = fmt.Sprintf("%s %d", name, i+1)
		}

		c := models.Category{Name: name, Description: categoryDescriptions[i%len(categoryDescriptions)]}
		if err := s.categories.Create(ctx, &c); err != nil {
			return nil, fmt.Errorf("create category %q: %w", name, err)
		}
		s.log.Debug("created category", "id", c.ID, "name", c.Name)
		categories = append(categories, c)
	}
	return categories, nil
}

func (s *Seeder) seedParticipants(ctx context.Context, n int) ([]models.Participant, error) {
	s.log.Info("creating participants", "count", n)

	participants := make([]models.Participant, 0, n)
	for i := range n {
		p := s.participant(i)
		if err := s.participants.Create(ctx, &p); err != nil {
			return nil, fmt.Errorf("create participant %q: %w", p.Email, err)
		}
		participants = append(participants, p)
		if (i+1)%10 == 0 {
			s.log.Info("created participants", "done", i+1)
		}
	}
	return participants, nil
}

func (s *Seeder) seedEvents(ctx context.Context, n int, categories []models.Category, participants []models.Participant) error {
	s.log.Info("creating events", "count", n)

	today := filter.Today(s.now())
	for i := range n {
		e := s.event(i, today, categories, participants)
		if err := s.events.Create(ctx, &e); err != nil {
			return fmt.Errorf("create event %q: %w", e.Name, err)
		}
		if (i+1)%5 == 0 {
			s.log.Info("created events", "done", i+1)
		}
	}
	return nil
}

// participant builds the i-th participant. The index in the email keeps it
// unique even when the random names repeat.
func (s *Seeder) participant(i int) models.Participant {
	first := pick(s.rng, firstNames)
	last := pick(s.rng, lastNames)
	return models.Participant{
		Name:  first + " " + last,
		Email: fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
	}
}

func (s *Seeder) event(i int, today time.Time, categories []models.Category, participants []models.Participant) models.Event {
	date := today.AddDate(0, 0, s.rng.IntN(91)-30)
	hour := 9 + s.rng.IntN(12)
	minute := pick(s.rng, quarterHours)

	name := pick(s.rng, eventNames)
	if i > 0 && s.rng.Float64() < 0.3 {
		name = fmt.Sprintf("%s %d", name, date.Year())
	}

	category := pick(s.rng, categories)
	return models.Event{
		Name:         name,
		Description:  fmt.Sprintf(descriptionFormat, strings.ToLower(name)),
		Date:         date,
		Time:         fmt.Sprintf("%02d:%02d", hour, minute),
		Location:     pick(s.rng, venues) + ", " + pick(s.rng, cities),
		CategoryID:   category.ID,
		Participants: s.sample(participants),
	}
}

// sample returns between 2 and 8 distinct participants, or all of them when
// fewer than 2 exist.
func (s *Seeder) sample(participants []models.Participant) []models.Participant {
	if len(participants) < 2 {
		return participants
	}
	k := 2 + s.rng.IntN(min(8, len(participants))-1)
	out := make([]models.Participant, k)
	for i, j := range s.rng.Perm(len(participants))[:k] {
		out[i] = participants[j]
	}
	return out
}

func (s *Seeder) summary(ctx context.Context) (*Summary, error) {
	categories, err := s.categories.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	events, err := s.events.Count(ctx, filter.Events{})
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	participants, err := s.participants.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count participants: %w", err)
	}
	return &Summary{
		Categories:   categories,
		Events:       events,
		Participants: participants,
	}, nil
}

func pick[T any](rng *rand.Rand, from []T) T {
	return from[rng.IntN(len(from))]
}
