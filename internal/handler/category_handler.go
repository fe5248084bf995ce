package handler

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/eventhub/internal/dto"
	"github.com/Eursukkul/eventhub/internal/service"
	"github.com/labstack/echo/v4"
)

const msgCategoryInUse = "This category still has events. Move or delete them before deleting the category."

type CategoryHandler struct {
	svc service.CategoryService
}

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/categories/", h.List).Name = RouteCategoryList
	formPage(e, "/category/create/", RouteCategoryCreate, h.Create)
	formPage(e, "/category/:id/update/", RouteCategoryUpdate, h.Update)
	formPage(e, "/category/:id/delete/", RouteCategoryDelete, h.Delete)
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.svc.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "category_list.html", dto.CategoryListPage{Categories: categories})
}

func (h *CategoryHandler) Create(c echo.Context) error {
	page := dto.CategoryFormPage{Action: dto.ActionCreate}

	if isSubmit(c) {
		values, err := formValues(c)
		if err != nil {
			return err
		}
		page.Form = dto.BindCategoryForm(values)

		in, errs := page.Form.Validate()
		if !errs.Any() {
			if _, err := h.svc.CreateCategory(c.Request().Context(), in); err != nil {
				return err
			}
			return redirect(c, RouteCategoryList)
		}
		page.Errors = errs
	}

	return c.Render(http.StatusOK, "category_form.html", page)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseID(c)
	if err != nil {
		return err
	}

	category, err := h.svc.GetCategory(ctx, id)
	if err != nil {
		return httpError(err)
	}
	page := dto.CategoryFormPage{Action: dto.ActionUpdate, Category: category, Form: dto.CategoryFormFrom(category)}

	if isSubmit(c) {
		values, err := formValues(c)
		if err != nil {
			return err
		}
		page.Form = dto.BindCategoryForm(values)

		in, errs := page.Form.Validate()
		if !errs.Any() {
			if _, err := h.svc.UpdateCategory(ctx, id, in); err != nil {
				return httpError(err)
			}
			return redirect(c, RouteCategoryList)
		}
		page.Errors = errs
	}

	return c.Render(http.StatusOK, "category_form.html", page)
}

// Delete follows the configured delete policy. Under restrict a category that
// still has events is refused with 409 and the confirmation page explains why.
func (h *CategoryHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := parseID(c)
	if err != nil {
		return err
	}

	category, err := h.svc.GetCategory(ctx, id)
	if err != nil {
		return httpError(err)
	}
	count, err := h.svc.CountEvents(ctx, id)
	if err != nil {
		return err
	}
	page := dto.CategoryDeletePage{
		Category:   category,
		EventCount: count,
		Cascade:    h.svc.Policy() == service.DeleteCascade,
	}

	if isSubmit(c) {
		err := h.svc.DeleteCategory(ctx, id)
		if err == nil {
			return redirect(c, RouteCategoryList)
		}
		if !errors.Is(err, service.ErrCategoryInUse) {
			return httpError(err)
		}
		page.Message = msgCategoryInUse
		return c.Render(http.StatusConflict, "category_confirm_delete.html", page)
	}

	return c.Render(http.StatusOK, "category_confirm_delete.html", page)
}
