package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campuslib/circulation-service/internal/model"
)

func borrowerFromQuery(c echo.Context) (model.Borrower, error) {
	kind := model.PersonKind(c.QueryParam("borrowerKind"))
	if !kind.CanBorrow() {
		return model.Borrower{}, errors.New("borrowerKind must be student or faculty")
	}
	id, err := strconv.ParseInt(c.QueryParam("borrowerId"), 10, 64)
	if err != nil || id <= 0 {
		return model.Borrower{}, errors.New("borrowerId is invalid")
	}
	return model.Borrower{Kind: kind, ID: id}, nil
}

func (h *Handler) Issue(c echo.Context) error {
	var req model.IssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	loan, err := h.circulationSvc.Issue(c.Request().Context(),
		model.Borrower{Kind: req.BorrowerKind, ID: req.BorrowerID}, req.BookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) Return(c echo.Context) error {
	var req model.IssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.circulationSvc.Return(c.Request().Context(),
		model.Borrower{Kind: req.BorrowerKind, ID: req.BorrowerID}, req.BookID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) LoansOf(c echo.Context) error {
	b, err := borrowerFromQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	loans, err := h.circulationSvc.LoansOf(c.Request().Context(), b)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) SearchLoans(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("q is required"))
	}

	rows, err := h.circulationSvc.SearchLoans(c.Request().Context(), query)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) RemoveOrphanedLoans(c echo.Context) error {
	removed, err := h.reconcilerSvc.RemoveOrphanedLoans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"removed": removed})
}
