package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/library/internal/handler"
	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/gh215tth/QLTV-dart/pkg/auth"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/gh215tth/QLTV-dart/library/internal/handler/mocks"
)

type caller struct {
	userID string
	role   string
}

var (
	member    = caller{userID: "7", role: auth.RoleUser}
	librarian = caller{userID: "1", role: auth.RoleLibrarian}
)

func serve(t *testing.T, svc handler.LibraryService, method, target, body string, who caller) *httptest.ResponseRecorder {
	t.Helper()
	h := handler.New(svc, zap.NewNop())
	e := h.NewRouter()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if who.userID != "" {
		r.Header.Set(auth.XUserIDHeader, who.userID)
	}
	if who.role != "" {
		r.Header.Set(auth.XUserRoleHeader, who.role)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func body(w *httptest.ResponseRecorder) string {
	return strings.Trim(w.Body.String(), "\n")
}

func TestHandler_CreateLoanWithItem(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)
	loanDate := model.NewDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	var tests = []struct {
		name         string
		body         string
		who          caller
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"user_id":7,"loan_date":"2025-06-01","book_id":2}`,
			who:  member,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateLoanWithItem(gomock.Any(), model.CreateLoanWithItemRequest{UserID: 7, LoanDate: loanDate, BookID: 2}).
					Return(model.CreateLoanWithItemResponse{
						LoanID:   11,
						LoanItem: model.LoanItem{ID: 21, LoanID: 11, BookID: 2},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"loan_id":11,"loan_item":{"id":21,"loan_id":11,"book_id":2,"return_date":null}}`,
			},
		},
		{
			name:         "err. loan_date required",
			body:         `{"user_id":7,"book_id":2}`,
			who:          member,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"loan_date is required"}`,
			},
		},
		{
			name:         "err. user borrows for someone else",
			body:         `{"user_id":8,"loan_date":"2025-06-01","book_id":2}`,
			who:          member,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"access denied"}`,
			},
		},
		{
			name: "err. out of stock",
			body: `{"user_id":8,"loan_date":"2025-06-01","book_id":2}`,
			who:  librarian,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateLoanWithItem(gomock.Any(), gomock.Any()).
					Return(model.CreateLoanWithItemResponse{}, errs.ErrBookOutOfStock)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"book is out of stock"}`,
			},
		},
		{
			name:         "err. no identity",
			body:         `{"user_id":7,"loan_date":"2025-06-01","book_id":2}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"user-id is empty"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			tt.mockBehavior(svc)

			w := serve(t, svc, http.MethodPost, "/api/v1/loans/with-item", tt.body, tt.who)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, body(w))
		})
	}
}

func TestHandler_ReturnBooks(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name:   "ok",
			target: "/api/v1/loans/1/return",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().ReturnBooks(gomock.Any(), 1).Return(model.ReturnResponse{
					LoanID:     1,
					ReturnDate: model.NewDate(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)),
					Returned:   2,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"loan_id":1,"return_date":"2025-06-10","returned":2}`,
		},
		{
			name:   "err. same day",
			target: "/api/v1/loans/1/return",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().ReturnBooks(gomock.Any(), 1).Return(model.ReturnResponse{}, errs.ErrInvalidReturnDate)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"return date must be after loan date"}`,
		},
		{
			name:   "err. not found",
			target: "/api/v1/loans/1/return",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().ReturnBooks(gomock.Any(), 1).Return(model.ReturnResponse{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"not found"}`,
		},
		{
			name:   "err. internal",
			target: "/api/v1/loans/1/return",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().ReturnBooks(gomock.Any(), 1).Return(model.ReturnResponse{}, errors.New("db internal"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"db internal"}`,
		},
		{
			name:         "err. bad id",
			target:       "/api/v1/loans/abc/return",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"id is invalid"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			tt.mockBehavior(svc)

			w := serve(t, svc, http.MethodPost, tt.target, "", member)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, body(w))
		})
	}
}

func TestHandler_LibrarianRoutes(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)

	w := serve(t, svc, http.MethodGet, "/api/v1/loans/all", "", member)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = serve(t, svc, http.MethodDelete, "/api/v1/books/3", "", member)
	require.Equal(t, http.StatusForbidden, w.Code)

	svc.EXPECT().ListLoans(gomock.Any()).Return([]model.LoanSummary{}, nil)
	w = serve(t, svc, http.MethodGet, "/api/v1/loans/all", "", librarian)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[]`, body(w))

	svc.EXPECT().DeleteBook(gomock.Any(), 3).Return(errs.ErrBookInUse)
	w = serve(t, svc, http.MethodDelete, "/api/v1/books/3", "", librarian)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"book is currently borrowed"}`, body(w))
}

func TestHandler_ListMyLoans(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)
	svc.EXPECT().ListLoansByUser(gomock.Any(), 7).Return([]model.UserLoan{}, nil)

	w := serve(t, svc, http.MethodGet, "/api/v1/loans", "", member)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_TopBorrowed(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)

	w := serve(t, svc, http.MethodGet, "/api/v1/books/top?limit=x", "", member)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"limit is invalid"}`, body(w))

	svc.EXPECT().TopBorrowed(gomock.Any(), 3).Return([]model.Book{
		{ID: 5, Title: "Go", Author: "Pike", CategoryID: 1, Quantity: 2, TotalBorrowed: 9},
	}, nil)
	w = serve(t, svc, http.MethodGet, "/api/v1/books/top?limit=3", "", member)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[{"id":5,"title":"Go","author":"Pike","category_id":1,"quantity":2,"total_borrowed":9}]`, body(w))
}

func TestHandler_UpdateLoanItem(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)
	otherLoan := 4
	svc.EXPECT().
		UpdateLoanItem(gomock.Any(), 9, model.UpdateLoanItemRequest{LoanID: &otherLoan, BookID: 3}).
		Return(model.LoanItem{}, errs.ErrInvalidUpdateLoanID)

	w := serve(t, svc, http.MethodPut, "/api/v1/loan-items/9", `{"loan_id":4,"book_id":3}`, member)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"loan_id of a loan item cannot be changed"}`, body(w))
}

func TestHandler_UpdateLoan(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)

	w := serve(t, svc, http.MethodPut, "/api/v1/loans/4", `{"user_id":8,"loan_date":"2025-06-01"}`, member)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, `{"message":"access denied"}`, body(w))

	loanDate := model.NewDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	svc.EXPECT().
		UpdateLoan(gomock.Any(), 4, model.CreateLoanRequest{UserID: 7, LoanDate: loanDate}).
		Return(model.Loan{ID: 4, UserID: 7, LoanDate: loanDate}, nil)
	w = serve(t, svc, http.MethodPut, "/api/v1/loans/4", `{"user_id":7,"loan_date":"2025-06-01"}`, member)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"id":4,"user_id":7,"loan_date":"2025-06-01"}`, body(w))

	svc.EXPECT().
		UpdateLoan(gomock.Any(), 4, model.CreateLoanRequest{UserID: 8, LoanDate: loanDate}).
		Return(model.Loan{ID: 4, UserID: 8, LoanDate: loanDate}, nil)
	w = serve(t, svc, http.MethodPut, "/api/v1/loans/4", `{"user_id":8,"loan_date":"2025-06-01"}`, librarian)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)

	w := serve(t, svc, http.MethodGet, "/manage/health", "", caller{})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
