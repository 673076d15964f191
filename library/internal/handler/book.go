package handler

import (
	"net/http"
	"strconv"

	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.BookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	book, err := h.librarySvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.librarySvc.ListBooks(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) TopBorrowed(c echo.Context) error {
	var limit int
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		var err error
		if limit, err = strconv.Atoi(limitParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("limit is invalid"))
		}
	}
	books, err := h.librarySvc.TopBorrowed(c.Request().Context(), limit)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	book, err := h.librarySvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.BookRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	book, err := h.librarySvc.UpdateBook(c.Request().Context(), id, req)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err = h.librarySvc.DeleteBook(c.Request().Context(), id); err != nil {
		return h.errorResponse(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListBooksByCategory(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	books, err := h.librarySvc.ListBooksByCategory(c.Request().Context(), id)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) BorrowedBooks(c echo.Context) error {
	userID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err = actingFor(c, userID); err != nil {
		return err
	}
	ids, err := h.librarySvc.BorrowedBookIDs(c.Request().Context(), userID)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, ids)
}
