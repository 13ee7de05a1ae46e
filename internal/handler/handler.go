package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/circulation-service/internal/errs"
	md "github.com/campuslib/circulation-service/pkg/middleware"
	"github.com/campuslib/circulation-service/pkg/validate"
)

type Handler struct {
	registrySvc    RegistryService
	inventorySvc   InventoryService
	circulationSvc CirculationService
	reconcilerSvc  ReconcilerService
	log            *zap.Logger
}

func New(
	registrySvc RegistryService,
	inventorySvc InventoryService,
	circulationSvc CirculationService,
	reconcilerSvc ReconcilerService,
	log *zap.Logger,
) *Handler {
	return &Handler{
		registrySvc:    registrySvc,
		inventorySvc:   inventorySvc,
		circulationSvc: circulationSvc,
		reconcilerSvc:  reconcilerSvc,
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/persons", h.Register)
	api.GET("/persons/check", h.CheckIdentity)
	api.GET("/persons/rfid/:rfid", h.GetBorrowerByRfid)
	api.GET("/persons/:kind", h.ListPersons)
	api.GET("/persons/:kind/:id", h.GetPerson)
	api.PUT("/persons/:kind/:id", h.UpdatePerson)
	api.DELETE("/persons/:kind/:id", h.DeletePerson)

	api.GET("/books", h.ListBooks)
	api.POST("/books", h.AddBook)
	api.GET("/books/search", h.SearchBooks)
	api.GET("/books/stats", h.TotalCopies)
	api.GET("/books/barcode/:barcode", h.GetBookByBarcode)
	api.GET("/books/:id", h.GetBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)
	api.GET("/books/:id/available", h.AvailableCopies)

	api.GET("/categories", h.ListCategories)
	api.POST("/categories", h.CreateCategory)
	api.PUT("/categories/:id", h.RenameCategory)
	api.DELETE("/categories/:id", h.DeleteCategory)

	api.POST("/loans", h.Issue)
	api.POST("/loans/return", h.Return)
	api.GET("/loans", h.LoansOf)
	api.GET("/loans/search", h.SearchLoans)

	api.POST("/maintenance/orphaned-loans", h.RemoveOrphanedLoans)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the error taxonomy onto status codes. Storage errors stay
// generic so driver detail never leaks to the caller.
func httpError(err error) *echo.HTTPError {
	var vErr *errs.ValidationError
	if errors.As(err, &vErr) {
		return echo.NewHTTPError(http.StatusBadRequest, vErr.Error())
	}

	var cErr *errs.ConflictError
	if errors.As(err, &cErr) {
		he := echo.NewHTTPError(http.StatusConflict, cErr.Error())
		if cErr.Account != nil {
			he.Message = echo.Map{
				"message":         cErr.Err.Error(),
				"existingAccount": cErr.Account,
			}
		}
		return he
	}

	switch {
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrNoSuchLoan):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrNoCopiesAvailable),
		errors.Is(err, errs.ErrAlreadyIssued),
		errors.Is(err, errs.ErrBorrowLimitExceeded),
		errors.Is(err, errs.ErrBookCurrentlyIssued),
		errors.Is(err, errs.ErrCategoryNotEmpty),
		errors.Is(err, errs.ErrPersonHasLoans),
		errors.Is(err, errs.ErrDuplicateEmail),
		errors.Is(err, errs.ErrDuplicateMobile),
		errors.Is(err, errs.ErrDuplicateRfid),
		errors.Is(err, errs.ErrDuplicateBarcode):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "storage error, try again")
}
