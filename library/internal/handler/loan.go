package handler

import (
	"net/http"

	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateLoanWithItem(c echo.Context) error {
	var req model.CreateLoanWithItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.LoanDate.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "loan_date is required")
	}
	if err := actingFor(c, req.UserID); err != nil {
		return err
	}
	resp, err := h.librarySvc.CreateLoanWithItem(c.Request().Context(), req)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) CreateLoan(c echo.Context) error {
	var req model.CreateLoanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.LoanDate.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "loan_date is required")
	}
	if err := actingFor(c, req.UserID); err != nil {
		return err
	}
	loan, err := h.librarySvc.CreateLoan(c.Request().Context(), req)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) ListLoans(c echo.Context) error {
	loans, err := h.librarySvc.ListLoans(c.Request().Context())
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, loans)
}

// ListMyLoans lists the caller's own loan items with titles.
func (h *Handler) ListMyLoans(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	loans, err := h.librarySvc.ListLoansByUser(c.Request().Context(), userID)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) GetLoan(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	loan, err := h.librarySvc.GetLoan(c.Request().Context(), id)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) GetLoanWithItems(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	details, err := h.librarySvc.GetLoanWithItems(c.Request().Context(), id)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, details)
}

func (h *Handler) UpdateLoan(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.CreateLoanRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.LoanDate.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "loan_date is required")
	}
	if err = actingFor(c, req.UserID); err != nil {
		return err
	}
	loan, err := h.librarySvc.UpdateLoan(c.Request().Context(), id, req)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) DeleteLoan(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err = h.librarySvc.DeleteLoan(c.Request().Context(), id); err != nil {
		return h.errorResponse(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ReturnBooks(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.librarySvc.ReturnBooks(c.Request().Context(), id)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, resp)
}
