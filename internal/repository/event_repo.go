package repository

import (
	"context"

	"github.com/Eursukkul/eventhub/internal/filter"
	"github.com/Eursukkul/eventhub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepository interface {
	// Create inserts event and links event.Participants, which must already exist.
	Create(ctx context.Context, event *models.Event) error
	// Update saves event's own columns and replaces its participant set with
	// exactly participants.
	Update(ctx context.Context, event *models.Event, participants []models.Participant) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	Find(ctx context.Context, f filter.Events) ([]models.Event, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Event, error)
	Count(ctx context.Context, f filter.Events) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Omit("Category", "Participants.*").Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event, participants []models.Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(event).Error; err != nil {
			return err
		}
		assoc := tx.Model(event).Association("Participants")
		if len(participants) == 0 {
			if err := assoc.Clear(); err != nil {
				return err
			}
		} else if err := assoc.Replace(participants); err != nil {
			return err
		}
		event.Participants = participants
		return nil
	})
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		event := &models.Event{ID: id}
		if err := tx.Model(event).Association("Participants").Clear(); err != nil {
			return err
		}
		res := tx.Delete(event)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Participants", byName).
		First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Find(ctx context.Context, f filter.Events) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Scopes(f.Apply, filter.Ordered).
		Preload("Category").
		Preload("Participants", byName).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var events []models.Event
	if err := r.db.WithContext(ctx).Scopes(filter.Ordered).Find(&events, ids).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Count(ctx context.Context, f filter.Events) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Event{}).Scopes(f.Apply).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func byName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC").Order("id ASC")
}
