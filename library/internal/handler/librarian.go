package handler

import (
	"net/http"

	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateLibrarian(c echo.Context) error {
	var req model.AccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	librarian, err := h.librarySvc.CreateLibrarian(c.Request().Context(), req)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusCreated, librarian)
}

func (h *Handler) ListLibrarians(c echo.Context) error {
	librarians, err := h.librarySvc.ListLibrarians(c.Request().Context())
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, librarians)
}

func (h *Handler) GetLibrarian(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	librarian, err := h.librarySvc.GetLibrarian(c.Request().Context(), id)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, librarian)
}

func (h *Handler) UpdateLibrarian(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.AccountRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	librarian, err := h.librarySvc.UpdateLibrarian(c.Request().Context(), id, req)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, librarian)
}

func (h *Handler) DeleteLibrarian(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err = h.librarySvc.DeleteLibrarian(c.Request().Context(), id); err != nil {
		return h.errorResponse(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetLibrarianMe(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	librarian, err := h.librarySvc.GetLibrarian(c.Request().Context(), id)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, librarian)
}

func (h *Handler) UpdateLibrarianMe(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	var req model.AccountRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	librarian, err := h.librarySvc.UpdateLibrarian(c.Request().Context(), id, req)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, librarian)
}
