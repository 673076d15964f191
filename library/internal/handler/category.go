package handler

import (
	"net/http"

	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateCategory(c echo.Context) error {
	var req model.CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	category, err := h.librarySvc.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *Handler) ListCategories(c echo.Context) error {
	categories, err := h.librarySvc.ListCategories(c.Request().Context())
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *Handler) GetCategory(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	category, err := h.librarySvc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *Handler) UpdateCategory(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.CategoryRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	category, err := h.librarySvc.UpdateCategory(c.Request().Context(), id, req)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *Handler) DeleteCategory(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err = h.librarySvc.DeleteCategory(c.Request().Context(), id); err != nil {
		return h.errorResponse(err)
	}
	return c.NoContent(http.StatusNoContent)
}
