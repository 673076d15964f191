package handler

import (
	"net/http"
	"strconv"

	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/pkg/auth"
	md "github.com/gh215tth/QLTV-dart/pkg/middleware"
	"github.com/gh215tth/QLTV-dart/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	librarySvc LibraryService
	log        *zap.Logger
}

func New(librarySvc LibraryService, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		log:        log.Named("handler"),
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
		AllowHeaders:     []string{echo.HeaderContentType, auth.XUserIDHeader, auth.XUserRoleHeader},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.AuthContext,
	)
	librarian := md.RequireRole(auth.RoleLibrarian)
	member := md.RequireRole(auth.RoleUser)

	loans := api.Group("/loans")
	loans.POST("/with-item", h.CreateLoanWithItem)
	loans.POST("", h.CreateLoan)
	loans.GET("", h.ListMyLoans)
	loans.GET("/all", h.ListLoans, librarian)
	loans.GET("/:id", h.GetLoan)
	loans.GET("/:id/items", h.GetLoanWithItems)
	loans.PUT("/:id", h.UpdateLoan)
	loans.DELETE("/:id", h.DeleteLoan)
	loans.POST("/:id/return", h.ReturnBooks)

	items := api.Group("/loan-items")
	items.POST("", h.CreateLoanItem)
	items.GET("", h.ListLoanItems)
	items.GET("/loan/:loanId", h.ListLoanItemsByLoan)
	items.GET("/:id", h.GetLoanItem)
	items.PUT("/:id", h.UpdateLoanItem)
	items.DELETE("/:id", h.DeleteLoanItem)

	books := api.Group("/books")
	books.POST("", h.CreateBook, librarian)
	books.GET("", h.ListBooks)
	books.GET("/top", h.TopBorrowed)
	books.GET("/:id", h.GetBook)
	books.PUT("/:id", h.UpdateBook, librarian)
	books.DELETE("/:id", h.DeleteBook, librarian)

	categories := api.Group("/categories")
	categories.POST("", h.CreateCategory, librarian)
	categories.GET("", h.ListCategories)
	categories.GET("/:id", h.GetCategory)
	categories.GET("/:id/books", h.ListBooksByCategory)
	categories.PUT("/:id", h.UpdateCategory, librarian)
	categories.DELETE("/:id", h.DeleteCategory, librarian)

	users := api.Group("/users")
	users.GET("/me", h.GetMe, member)
	users.PUT("/me", h.UpdateMe, member)
	users.POST("", h.CreateUser, librarian)
	users.GET("", h.ListUsers, librarian)
	users.GET("/:id", h.GetUser, librarian)
	users.PUT("/:id", h.UpdateUser, librarian)
	users.DELETE("/:id", h.DeleteUser, librarian)
	users.GET("/:id/borrowed-books", h.BorrowedBooks)

	librarians := api.Group("/librarians", librarian)
	librarians.GET("/me", h.GetLibrarianMe)
	librarians.PUT("/me", h.UpdateLibrarianMe)
	librarians.POST("", h.CreateLibrarian)
	librarians.GET("", h.ListLibrarians)
	librarians.GET("/:id", h.GetLibrarian)
	librarians.PUT("/:id", h.UpdateLibrarian)
	librarians.DELETE("/:id", h.DeleteLibrarian)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// errorResponse maps a service error onto its HTTP status.
func (h *Handler) errorResponse(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errs.IsBusiness(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		h.log.Error("internal", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func paramID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// callerID is the account id the gateway authenticated.
func callerID(c echo.Context) (int, error) {
	info, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return info.UserID, nil
}

// actingFor rejects a plain user working on someone else's records.
func actingFor(c echo.Context, userID int) error {
	info, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if info.Role != auth.RoleLibrarian && info.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "access denied")
	}
	return nil
}
