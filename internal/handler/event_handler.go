package handler

import (
	"context"
	"net/http"

	"github.com/Eursukkul/eventhub/internal/dto"
	"github.com/Eursukkul/eventhub/internal/filter"
	"github.com/Eursukkul/eventhub/internal/service"
	"github.com/labstack/echo/v4"
)

type EventHandler struct {
	events       service.EventService
	categories   service.CategoryService
	participants service.ParticipantService
}

func NewEventHandler(events service.EventService, categories service.CategoryService, participants service.ParticipantService) *EventHandler {
	return &EventHandler{events: events, categories: categories, participants: participants}
}

func (h *EventHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/events/", h.List).Name = RouteEventList
	formPage(e, "/event/create/", RouteEventCreate, h.Create)
	e.GET("/event/:id/", h.Detail).Name = RouteEventDetail
	formPage(e, "/event/:id/update/", RouteEventUpdate, h.Update)
	formPage(e, "/event/:id/delete/", RouteEventDelete, h.Delete)
}

func (h *EventHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	q := c.QueryParams()

	events, err := h.events.ListEvents(ctx, filter.FromQuery(q))
	if err != nil {
		return err
	}
	categories, err := h.categories.ListCategories(ctx)
	if err != nil {
		return err
	}
	total, err := h.participants.CountParticipants(ctx)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "event_list.html", dto.EventListPage{
		Events:            events,
		Categories:        categories,
		TotalParticipants: total,
		Search:            q.Get("search"),
		CategoryID:        q.Get("category"),
		StartDate:         q.Get("start_date"),
		EndDate:           q.Get("end_date"),
	})
}

func (h *EventHandler) Detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	event, err := h.events.GetEvent(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.Render(http.StatusOK, "event_detail.html", dto.EventDetailPage{Event: event})
}

func (h *EventHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	page := dto.EventFormPage{Action: dto.ActionCreate}

	if isSubmit(c) {
		values, err := formValues(c)
		if err != nil {
			return err
		}
		page.Form = dto.BindEventForm(values)

		in, errs := page.Form.Validate()
		if !errs.Any() {
			_, err := h.events.CreateEvent(ctx, in)
			if err == nil {
				return redirect(c, RouteEventList)
			}
			fe, ok := fieldErrors(err)
			if !ok {
				return err
			}
			errs = fe
		}
		page.Errors = errs
	}

	return h.renderForm(ctx, c, page)
}

func (h *EventHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseID(c)
	if err != nil {
		return err
	}

	event, err := h.events.GetEvent(ctx, id)
	if err != nil {
		return httpError(err)
	}
	page := dto.EventFormPage{Action: dto.ActionUpdate, Event: event, Form: dto.EventFormFrom(event)}

	if isSubmit(c) {
		values, err := formValues(c)
		if err != nil {
			return err
		}
		page.Form = dto.BindEventForm(values)

		in, errs := page.Form.Validate()
		if !errs.Any() {
			_, err := h.events.UpdateEvent(ctx, id, in)
			if err == nil {
				return redirect(c, RouteEventDetail, id)
			}
			fe, ok := fieldErrors(err)
			if !ok {
				return httpError(err)
			}
			errs = fe
		}
		page.Errors = errs
	}

	return h.renderForm(ctx, c, page)
}

func (h *EventHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if isSubmit(c) {
		if err := h.events.DeleteEvent(ctx, id); err != nil {
			return httpError(err)
		}
		return redirect(c, RouteEventList)
	}

	event, err := h.events.GetEvent(ctx, id)
	if err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "event_confirm_delete.html", dto.EventDeletePage{Event: event})
}

func (h *EventHandler) renderForm(ctx context.Context, c echo.Context, page dto.EventFormPage) error {
	var err error
	if page.Categories, err = h.categories.ListCategories(ctx); err != nil {
		return err
	}
	if page.Participants, err = h.participants.ListParticipants(ctx); err != nil {
		return err
	}
	return c.Render(http.StatusOK, "event_form.html", page)
}
