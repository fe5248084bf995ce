package service

import (
	"context"
	"time"

	"github.com/Eursukkul/eventhub/internal/filter"
	"github.com/Eursukkul/eventhub/internal/models"
)

// --- Mock EventRepository ---

type mockEventRepo struct {
	createFn    func(ctx context.Context, event *models.Event) error
	updateFn    func(ctx context.Context, event *models.Event, participants []models.Participant) error
	deleteFn    func(ctx context.Context, id uint) error
	findByIDFn  func(ctx context.Context, id uint) (*models.Event, error)
	findFn      func(ctx context.Context, f filter.Events) ([]models.Event, error)
	findByIDsFn func(ctx context.Context, ids []uint) ([]models.Event, error)
	countFn     func(ctx context.Context, f filter.Events) (int64, error)
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.Event) error {
	return m.createFn(ctx, event)
}
func (m *mockEventRepo) Update(ctx context.Context, event *models.Event, participants []models.Participant) error {
	return m.updateFn(ctx, event, participants)
}
func (m *mockEventRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockEventRepo) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockEventRepo) Find(ctx context.Context, f filter.Events) ([]models.Event, error) {
	return m.findFn(ctx, f)
}
func (m *mockEventRepo) FindByIDs(ctx context.Context, ids []uint) ([]models.Event, error) {
	return m.findByIDsFn(ctx, ids)
}
func (m *mockEventRepo) Count(ctx context.Context, f filter.Events) (int64, error) {
	return m.countFn(ctx, f)
}

// --- Mock CategoryRepository ---

type mockCategoryRepo struct {
	createFn   func(ctx context.Context, category *models.Category) error
	updateFn   func(ctx context.Context, category *models.Category) error
	deleteFn   func(ctx context.Context, id uint, cascade bool) error
	findByIDFn func(ctx context.Context, id uint) (*models.Category, error)
	findAllFn  func(ctx context.Context) ([]models.Category, error)
	existsFn   func(ctx context.Context, id uint) (bool, error)
	byNameFn   func(ctx context.Context, name string) (bool, error)
	countFn    func(ctx context.Context) (int64, error)
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	return m.createFn(ctx, category)
}
func (m *mockCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	return m.updateFn(ctx, category)
}
func (m *mockCategoryRepo) Delete(ctx context.Context, id uint, cascade bool) error {
	return m.deleteFn(ctx, id, cascade)
}
func (m *mockCategoryRepo) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	return m.findAllFn(ctx)
}
func (m *mockCategoryRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return m.existsFn(ctx, id)
}
func (m *mockCategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return m.byNameFn(ctx, name)
}
func (m *mockCategoryRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

// --- Mock ParticipantRepository ---

type mockParticipantRepo struct {
	createFn    func(ctx context.Context, participant *models.Participant) error
	updateFn    func(ctx context.Context, participant *models.Participant, events []models.Event) error
	deleteFn    func(ctx context.Context, id uint) error
	findByIDFn  func(ctx context.Context, id uint) (*models.Participant, error)
	findAllFn   func(ctx context.Context) ([]models.Participant, error)
	findByIDsFn func(ctx context.Context, ids []uint) ([]models.Participant, error)
	countFn     func(ctx context.Context) (int64, error)
}

func (m *mockParticipantRepo) Create(ctx context.Context, participant *models.Participant) error {
	return m.createFn(ctx, participant)
}
func (m *mockParticipantRepo) Update(ctx context.Context, participant *models.Participant, events []models.Event) error {
	return m.updateFn(ctx, participant, events)
}
func (m *mockParticipantRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockParticipantRepo) FindByID(ctx context.Context, id uint) (*models.Participant, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockParticipantRepo) FindAll(ctx context.Context) ([]models.Participant, error) {
	return m.findAllFn(ctx)
}
func (m *mockParticipantRepo) FindByIDs(ctx context.Context, ids []uint) ([]models.Participant, error) {
	return m.findByIDsFn(ctx, ids)
}
func (m *mockParticipantRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

// --- Mock Notifier ---

type published struct {
	key     string
	payload any
}

type mockNotifier struct {
	sent []published
	err  error
}

func (m *mockNotifier) Publish(routingKey string, payload any) error {
	m.sent = append(m.sent, published{key: routingKey, payload: payload})
	return m.err
}

var fixedNow = time.Date(2026, 10, 17, 21, 15, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }
