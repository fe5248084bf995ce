package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eursukkul/eventhub/internal/dto"
	"github.com/Eursukkul/eventhub/internal/filter"
	"github.com/Eursukkul/eventhub/internal/models"
	"github.com/Eursukkul/eventhub/internal/repository"
	"gorm.io/gorm"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, in dto.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uint, in dto.CategoryInput) (*models.Category, error)
	// DeleteCategory returns ErrCategoryInUse under DeleteRestrict while
	// events still reference the category.
	DeleteCategory(ctx context.Context, id uint) error
	CountEvents(ctx context.Context, id uint) (int64, error)
	Policy() DeletePolicy
}

type categoryService struct {
	categories repository.CategoryRepository
	events     repository.EventRepository
	policy     DeletePolicy
	notifier   Notifier
	now        Clock
}

func NewCategoryService(
	categories repository.CategoryRepository,
	events repository.EventRepository,
	policy DeletePolicy,
	notifier Notifier,
	now Clock,
) CategoryService {
	return &categoryService{
		categories: categories,
		events:     events,
		policy:     policy,
		notifier:   notifier,
		now:        now,
	}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCategoryNotFound)
	}
	return category, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, in dto.CategoryInput) (*models.Category, error) {
	category := &models.Category{}
	in.Apply(category)

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	publish(s.notifier, s.now, "category", "created", category.ID, category.Name)
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint, in dto.CategoryInput) (*models.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Apply(category)
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	publish(s.notifier, s.now, "category", "updated", category.ID, category.Name)
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return err
	}

	cascade := s.policy == DeleteCascade
	if !cascade {
		n, err := s.CountEvents(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrCategoryInUse
		}
	}

	if err := s.categories.Delete(ctx, id, cascade); err != nil {
		// An event may have been added since the count.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrCategoryInUse
		}
		return notFound(err, ErrCategoryNotFound)
	}

	publish(s.notifier, s.now, "category", "deleted", category.ID, category.Name)
	return nil
}

func (s *categoryService) CountEvents(ctx context.Context, id uint) (int64, error) {
	n, err := s.events.Count(ctx, filter.ForCategory(id))
	if err != nil {
		return 0, fmt.Errorf("count category events: %w", err)
	}
	return n, nil
}

func (s *categoryService) Policy() DeletePolicy {
	return s.policy
}
