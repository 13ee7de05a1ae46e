package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campuslib/circulation-service/internal/model"
)

func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("%s is invalid", name)
	}
	return id, nil
}

func parseKind(c echo.Context) (model.PersonKind, error) {
	kind := model.PersonKind(c.Param("kind"))
	if !kind.Valid() {
		return "", errors.New("kind is invalid")
	}
	return kind, nil
}

func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.registrySvc.Register(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// CheckIdentity answers the registration UI's pre-flight uniqueness checks.
func (h *Handler) CheckIdentity(c echo.Context) error {
	ctx := c.Request().Context()

	email := c.QueryParam("email")
	mobile := c.QueryParam("mobile")
	if email == "" && mobile == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("email or mobile is required"))
	}

	resp := echo.Map{}
	if email != "" {
		resp["emailUnique"] = h.registrySvc.IsEmailUnique(ctx, email)
	}
	if mobile != "" {
		resp["mobileUnique"] = h.registrySvc.IsMobileUnique(ctx, mobile)
	}

	acc, err := h.registrySvc.FindExistingAccount(ctx, email, mobile)
	if err != nil {
		return httpError(err)
	}
	if acc != nil {
		resp["existingAccount"] = acc
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetPerson(c echo.Context) error {
	kind, err := parseKind(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.registrySvc.GetPerson(c.Request().Context(), kind, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPersons(c echo.Context) error {
	kind, err := parseKind(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items, err := h.registrySvc.ListPersons(c.Request().Context(), kind)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdatePerson(c echo.Context) error {
	kind, err := parseKind(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req model.UpdatePersonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.registrySvc.UpdatePerson(c.Request().Context(), kind, id, req); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) DeletePerson(c echo.Context) error {
	kind, err := parseKind(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := parseID(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.registrySvc.DeletePerson(c.Request().Context(), kind, id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetBorrowerByRfid(c echo.Context) error {
	rfid := c.Param("rfid")
	if rfid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("empty rfid"))
	}

	p, err := h.registrySvc.FindBorrowerByRfid(c.Request().Context(), rfid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}
