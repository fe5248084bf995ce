package repository

import (
	"context"

	"github.com/Eursukkul/eventhub/internal/filter"
	"github.com/Eursukkul/eventhub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ParticipantRepository interface {
	// Create inserts participant and links participant.Events, which must already exist.
	Create(ctx context.Context, participant *models.Participant) error
	// Update saves participant's columns and replaces its event set with exactly events.
	Update(ctx context.Context, participant *models.Participant, events []models.Event) error
	// Delete unlinks the participant from every event, then removes it. The
	// events themselves are kept.
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Participant, error)
	FindAll(ctx context.Context) ([]models.Participant, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Participant, error)
	Count(ctx context.Context) (int64, error)
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(ctx context.Context, participant *models.Participant) error {
	return r.db.WithContext(ctx).Omit("Events.*").Create(participant).Error
}

func (r *participantRepository) Update(ctx context.Context, participant *models.Participant, events []models.Event) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(participant).Error; err != nil {
			return err
		}
		assoc := tx.Model(participant).Association("Events")
		if len(events) == 0 {
			if err := assoc.Clear(); err != nil {
				return err
			}
		} else if err := assoc.Replace(events); err != nil {
			return err
		}
		participant.Events = events
		return nil
	})
}

func (r *participantRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		participant := &models.Participant{ID: id}
		if err := tx.Model(participant).Association("Events").Clear(); err != nil {
			return err
		}
		res := tx.Delete(participant)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *participantRepository) FindByID(ctx context.Context, id uint) (*models.Participant, error) {
	var participant models.Participant
	err := r.db.WithContext(ctx).
		Preload("Events", filter.Ordered).
		First(&participant, id).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) FindAll(ctx context.Context) ([]models.Participant, error) {
	var participants []models.Participant
	err := r.db.WithContext(ctx).
		Scopes(byName).
		Preload("Events", filter.Ordered).
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Participant, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var participants []models.Participant
	if err := r.db.WithContext(ctx).Scopes(byName).Find(&participants, ids).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Participant{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
