package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Eursukkul/eventhub/internal/dto"
	"github.com/Eursukkul/eventhub/internal/service"
	"github.com/labstack/echo/v4"
)

// Route names, used with echo's Reverse for redirects and by the templates'
// url helper.
const (
	RouteDashboard = "dashboard"

	RouteEventList   = "event-list"
	RouteEventDetail = "event-detail"
	RouteEventCreate = "event-create"
	RouteEventUpdate = "event-update"
	RouteEventDelete = "event-delete"

	RouteCategoryList   = "category-list"
	RouteCategoryCreate = "category-create"
	RouteCategoryUpdate = "category-update"
	RouteCategoryDelete = "category-delete"

	RouteParticipantList   = "participant-list"
	RouteParticipantCreate = "participant-create"
	RouteParticipantUpdate = "participant-update"
	RouteParticipantDelete = "participant-delete"
)

// formPage registers the same handler for GET (render) and POST (submit).
func formPage(e *echo.Echo, path, name string, h echo.HandlerFunc) {
	e.GET(path, h).Name = name
	e.POST(path, h)
}

func isSubmit(c echo.Context) bool {
	return c.Request().Method == http.MethodPost
}

func redirect(c echo.Context, route string, params ...any) error {
	return c.Redirect(http.StatusFound, c.Echo().Reverse(route, params...))
}

// parseID reads the :id path parameter. Anything that is not a positive
// integer cannot name a record, so it is a 404 like an unknown id.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "page not found")
	}
	return uint(id), nil
}

func formValues(c echo.Context) (url.Values, error) {
	values, err := c.FormParams()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	return values, nil
}

// fieldErrors extracts reference errors a service reported for a form.
func fieldErrors(err error) (dto.FieldErrors, bool) {
	var fe dto.FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// httpError maps service sentinels to HTTP errors. Anything else is returned
// unchanged and ends up as a 500.
func httpError(err error) error {
	switch {
	case errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrParticipantNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrCategoryInUse):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return err
}
