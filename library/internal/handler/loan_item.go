package handler

import (
	"net/http"

	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateLoanItem(c echo.Context) error {
	var req model.CreateLoanItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.librarySvc.CreateLoanItem(c.Request().Context(), req)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *Handler) ListLoanItems(c echo.Context) error {
	items, err := h.librarySvc.ListLoanItems(c.Request().Context())
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListLoanItemsByLoan(c echo.Context) error {
	loanID, err := paramID(c, "loanId")
	if err != nil {
		return err
	}
	items, err := h.librarySvc.ListLoanItemsByLoan(c.Request().Context(), loanID)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetLoanItem(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.librarySvc.GetLoanItem(c.Request().Context(), id)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) UpdateLoanItem(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.UpdateLoanItemRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	item, err := h.librarySvc.UpdateLoanItem(c.Request().Context(), id, req)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteLoanItem(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err = h.librarySvc.DeleteLoanItem(c.Request().Context(), id); err != nil {
		return h.errorResponse(err)
	}
	return c.NoContent(http.StatusNoContent)
}
