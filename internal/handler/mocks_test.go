package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Eursukkul/eventhub/internal/dto"
	"github.com/Eursukkul/eventhub/internal/filter"
	"github.com/Eursukkul/eventhub/internal/models"
	"github.com/Eursukkul/eventhub/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// --- Mock services ---

type mockDashboardService struct {
	buildFn func(ctx context.Context, stat filter.StatType) (*dto.Dashboard, error)
}

func (m *mockDashboardService) BuildDashboard(ctx context.Context, stat filter.StatType) (*dto.Dashboard, error) {
	return m.buildFn(ctx, stat)
}

type mockEventService struct {
	listFn   func(ctx context.Context, f filter.Events) ([]models.Event, error)
	getFn    func(ctx context.Context, id uint) (*models.Event, error)
	createFn func(ctx context.Context, in dto.EventInput) (*models.Event, error)
	updateFn func(ctx context.Context, id uint, in dto.EventInput) (*models.Event, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockEventService) ListEvents(ctx context.Context, f filter.Events) ([]models.Event, error) {
	return m.listFn(ctx, f)
}
func (m *mockEventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	return m.getFn(ctx, id)
}
func (m *mockEventService) CreateEvent(ctx context.Context, in dto.EventInput) (*models.Event, error) {
	return m.createFn(ctx, in)
}
func (m *mockEventService) UpdateEvent(ctx context.Context, id uint, in dto.EventInput) (*models.Event, error) {
	return m.updateFn(ctx, id, in)
}
func (m *mockEventService) DeleteEvent(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

type mockCategoryService struct {
	listFn   func(ctx context.Context) ([]models.Category, error)
	getFn    func(ctx context.Context, id uint) (*models.Category, error)
	createFn func(ctx context.Context, in dto.CategoryInput) (*models.Category, error)
	updateFn func(ctx context.Context, id uint, in dto.CategoryInput) (*models.Category, error)
	deleteFn func(ctx context.Context, id uint) error
	countFn  func(ctx context.Context, id uint) (int64, error)
	policy   service.DeletePolicy
}

func (m *mockCategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return m.listFn(ctx)
}
func (m *mockCategoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	return m.getFn(ctx, id)
}
func (m *mockCategoryService) CreateCategory(ctx context.Context, in dto.CategoryInput) (*models.Category, error) {
	return m.createFn(ctx, in)
}
func (m *mockCategoryService) UpdateCategory(ctx context.Context, id uint, in dto.CategoryInput) (*models.Category, error) {
	return m.updateFn(ctx, id, in)
}
func (m *mockCategoryService) DeleteCategory(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}
func (m *mockCategoryService) CountEvents(ctx context.Context, id uint) (int64, error) {
	return m.countFn(ctx, id)
}
func (m *mockCategoryService) Policy() service.DeletePolicy {
	return m.policy
}

type mockParticipantService struct {
	listFn   func(ctx context.Context) ([]models.Participant, error)
	countFn  func(ctx context.Context) (int64, error)
	getFn    func(ctx context.Context, id uint) (*models.Participant, error)
	createFn func(ctx context.Context, in dto.ParticipantInput) (*models.Participant, error)
	updateFn func(ctx context.Context, id uint, in dto.ParticipantInput) (*models.Participant, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockParticipantService) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	return m.listFn(ctx)
}
func (m *mockParticipantService) CountParticipants(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}
func (m *mockParticipantService) GetParticipant(ctx context.Context, id uint) (*models.Participant, error) {
	return m.getFn(ctx, id)
}
func (m *mockParticipantService) CreateParticipant(ctx context.Context, in dto.ParticipantInput) (*models.Participant, error) {
	return m.createFn(ctx, in)
}
func (m *mockParticipantService) UpdateParticipant(ctx context.Context, id uint, in dto.ParticipantInput) (*models.Participant, error) {
	return m.updateFn(ctx, id, in)
}
func (m *mockParticipantService) DeleteParticipant(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Test helpers ---

// captureRenderer records what a handler asked to render.
type captureRenderer struct {
	name string
	data any
}

func (r *captureRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	r.name = name
	r.data = data
	_, err := io.WriteString(w, name)
	return err
}

type registrar interface {
	RegisterRoutes(e *echo.Echo)
}

func newEcho(handlers ...registrar) (*echo.Echo, *captureRenderer) {
	e := echo.New()
	r := &captureRenderer{}
	e.Renderer = r
	for _, h := range handlers {
		h.RegisterRoutes(e)
	}
	return e, r
}

func get(e *echo.Echo, target string, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func post(e *echo.Echo, target string, id string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func someCategories(ctx context.Context) ([]models.Category, error) {
	return []models.Category{{ID: 1, Name: "Music"}}, nil
}

func someParticipants(ctx context.Context) ([]models.Participant, error) {
	return []models.Participant{{ID: 1, Name: "Ana"}}, nil
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if assert.True(t, ok, "expected *echo.HTTPError, got %v", err) {
		assert.Equal(t, code, he.Code)
	}
}
