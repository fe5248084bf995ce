package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Eursukkul/eventhub/internal/dto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureRenderer struct {
	name string
	data any
}

func (r *captureRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	r.name = name
	r.data = data
	_, err := io.WriteString(w, "rendered")
	return err
}

func newContext(e *echo.Echo, method string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return e.NewContext(httptest.NewRequest(method, "/event/9/", nil), rec), rec
}

func TestErrorHandler_HTTPError(t *testing.T) {
	e := echo.New()
	r := &captureRenderer{}
	e.Renderer = r
	c, rec := newContext(e, http.MethodGet)

	ErrorHandler(echo.NewHTTPError(http.StatusNotFound, "event not found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error.html", r.name)
	assert.Equal(t, dto.ErrorPage{Code: http.StatusNotFound, Message: "event not found"}, r.data)
}

func TestErrorHandler_UnexpectedErrorIs500(t *testing.T) {
	e := echo.New()
	r := &captureRenderer{}
	e.Renderer = r
	c, rec := newContext(e, http.MethodGet)

	ErrorHandler(errors.New("dial tcp: connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	page, ok := r.data.(dto.ErrorPage)
	require.True(t, ok)
	assert.Equal(t, "Internal Server Error", page.Message)
}

func TestErrorHandler_WithoutRendererFallsBackToText(t *testing.T) {
	e := echo.New()
	c, rec := newContext(e, http.MethodGet)

	ErrorHandler(echo.NewHTTPError(http.StatusConflict, "category still has events"), c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "category still has events", rec.Body.String())
}

func TestErrorHandler_NonStringMessage(t *testing.T) {
	e := echo.New()
	c, rec := newContext(e, http.MethodGet)

	ErrorHandler(echo.NewHTTPError(http.StatusForbidden, map[string]string{"x": "y"}), c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden", rec.Body.String())
}

func TestErrorHandler_Head(t *testing.T) {
	e := echo.New()
	c, rec := newContext(e, http.MethodHead)

	ErrorHandler(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	c, rec := newContext(e, http.MethodGet)
	require.NoError(t, c.String(http.StatusOK, "done"))

	ErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
