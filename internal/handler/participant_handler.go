package handler

import (
	"context"
	"net/http"

	"github.com/Eursukkul/eventhub/internal/dto"
	"github.com/Eursukkul/eventhub/internal/filter"
	"github.com/Eursukkul/eventhub/internal/service"
	"github.com/labstack/echo/v4"
)

type ParticipantHandler struct {
	participants service.ParticipantService
	events       service.EventService
}

func NewParticipantHandler(participants service.ParticipantService, events service.EventService) *ParticipantHandler {
	return &ParticipantHandler{participants: participants, events: events}
}

func (h *ParticipantHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/participants/", h.List).Name = RouteParticipantList
	formPage(e, "/participant/create/", RouteParticipantCreate, h.Create)
	formPage(e, "/participant/:id/update/", RouteParticipantUpdate, h.Update)
	formPage(e, "/participant/:id/delete/", RouteParticipantDelete, h.Delete)
}

func (h *ParticipantHandler) List(c echo.Context) error {
	participants, err := h.participants.ListParticipants(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "participant_list.html", dto.ParticipantListPage{Participants: participants})
}

func (h *ParticipantHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	page := dto.ParticipantFormPage{Action: dto.ActionCreate}

	if isSubmit(c) {
		values, err := formValues(c)
		if err != nil {
			return err
		}
		page.Form = dto.BindParticipantForm(values)

		in, errs := page.Form.Validate()
		if !errs.Any() {
			_, err := h.participants.CreateParticipant(ctx, in)
			if err == nil {
				return redirect(c, RouteParticipantList)
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

func (h *ParticipantHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseID(c)
	if err != nil {
		return err
	}

	participant, err := h.participants.GetParticipant(ctx, id)
	if err != nil {
		return httpError(err)
	}
	page := dto.ParticipantFormPage{
		Action:      dto.ActionUpdate,
		Participant: participant,
		Form:        dto.ParticipantFormFrom(participant),
	}

	if isSubmit(c) {
		values, err := formValues(c)
		if err != nil {
			return err
		}
		page.Form = dto.BindParticipantForm(values)

		in, errs := page.Form.Validate()
		if !errs.Any() {
			_, err := h.participants.UpdateParticipant(ctx, id, in)
			if err == nil {
				return redirect(c, RouteParticipantList)
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

func (h *ParticipantHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if isSubmit(c) {
		if err := h.participants.DeleteParticipant(ctx, id); err != nil {
			return httpError(err)
		}
		return redirect(c, RouteParticipantList)
	}

	participant, err := h.participants.GetParticipant(ctx, id)
	if err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "participant_confirm_delete.html", dto.ParticipantDeletePage{Participant: participant})
}

func (h *ParticipantHandler) renderForm(ctx context.Context, c echo.Context, page dto.ParticipantFormPage) error {
	events, err := h.events.ListEvents(ctx, filter.Events{})
	if err != nil {
		return err
	}
	page.Events = events
	return c.Render(http.StatusOK, "participant_form.html", page)
}
