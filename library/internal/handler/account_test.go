package handler_test

import (
	"net/http"
	"testing"

	"github.com/gh215tth/QLTV-dart/library/internal/errs"
	"github.com/gh215tth/QLTV-dart/library/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	service_mocks "github.com/gh215tth/QLTV-dart/library/internal/handler/mocks"
)

func TestHandler_CreateUser(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLibraryService)
	req := model.AccountRequest{Username: "ann", Email: "ann@example.com"}

	var tests = []struct {
		name         string
		body         string
		who          caller
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			body: `{"username":"ann","email":"ann@example.com"}`,
			who:  librarian,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().CreateUser(gomock.Any(), req).
					Return(model.User{ID: 7, Username: "ann", Email: "ann@example.com"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":7,"username":"ann","email":"ann@example.com"}`,
		},
		{
			name: "err. username taken",
			body: `{"username":"ann","email":"ann@example.com"}`,
			who:  librarian,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().CreateUser(gomock.Any(), req).Return(model.User{}, errs.ErrDuplicateUsername)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"username is already taken"}`,
		},
		{
			name:         "err. bad email",
			body:         `{"username":"ann","email":"ann"}`,
			who:          librarian,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "err. user cannot create users",
			body:         `{"username":"ann","email":"ann@example.com"}`,
			who:          member,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"access denied"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			svc := service_mocks.NewMockLibraryService(c)
			tt.mockBehavior(svc)

			w := serve(t, svc, http.MethodPost, "/api/v1/users", tt.body, tt.who)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, body(w))
			}
		})
	}
}

func TestHandler_UserMe(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)

	svc.EXPECT().GetUser(gomock.Any(), 7).Return(model.User{ID: 7, Username: "ann", Email: "ann@example.com"}, nil)
	w := serve(t, svc, http.MethodGet, "/api/v1/users/me", "", member)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"id":7,"username":"ann","email":"ann@example.com"}`, body(w))

	req := model.AccountRequest{Username: "ann", Email: "ann@library.org"}
	svc.EXPECT().UpdateUser(gomock.Any(), 7, req).Return(model.User{ID: 7, Username: "ann", Email: "ann@library.org"}, nil)
	w = serve(t, svc, http.MethodPut, "/api/v1/users/me", `{"username":"ann","email":"ann@library.org"}`, member)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(t, svc, http.MethodGet, "/api/v1/users/me", "", librarian)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UserAdminRoutes(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)

	w := serve(t, svc, http.MethodGet, "/api/v1/users", "", member)
	require.Equal(t, http.StatusForbidden, w.Code)
	w = serve(t, svc, http.MethodGet, "/api/v1/users/8", "", member)
	require.Equal(t, http.StatusForbidden, w.Code)

	svc.EXPECT().ListUsers(gomock.Any()).Return([]model.User{}, nil)
	w = serve(t, svc, http.MethodGet, "/api/v1/users", "", librarian)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[]`, body(w))

	svc.EXPECT().DeleteUser(gomock.Any(), 8).Return(errs.ErrUserHasUnreturnedItems)
	w = serve(t, svc, http.MethodDelete, "/api/v1/users/8", "", librarian)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"user has unreturned books"}`, body(w))

	svc.EXPECT().GetUser(gomock.Any(), 8).Return(model.User{}, errs.ErrNotFound)
	w = serve(t, svc, http.MethodGet, "/api/v1/users/8", "", librarian)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_BorrowedBooks(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)

	w := serve(t, svc, http.MethodGet, "/api/v1/users/8/borrowed-books", "", member)
	require.Equal(t, http.StatusForbidden, w.Code)

	svc.EXPECT().BorrowedBookIDs(gomock.Any(), 7).Return([]int{3, 5}, nil)
	w = serve(t, svc, http.MethodGet, "/api/v1/users/7/borrowed-books", "", member)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[3,5]`, body(w))
}

func TestHandler_LibrarianAccounts(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)

	w := serve(t, svc, http.MethodGet, "/api/v1/librarians/me", "", member)
	require.Equal(t, http.StatusForbidden, w.Code)
	w = serve(t, svc, http.MethodPost, "/api/v1/librarians", `{"username":"desk","email":"desk@example.com"}`, member)
	require.Equal(t, http.StatusForbidden, w.Code)

	svc.EXPECT().GetLibrarian(gomock.Any(), 1).Return(model.Librarian{ID: 1, Username: "desk", Email: "desk@example.com"}, nil)
	w = serve(t, svc, http.MethodGet, "/api/v1/librarians/me", "", librarian)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"id":1,"username":"desk","email":"desk@example.com"}`, body(w))

	req := model.AccountRequest{Username: "front", Email: "front@example.com"}
	svc.EXPECT().CreateLibrarian(gomock.Any(), req).Return(model.Librarian{}, errs.ErrDuplicateEmail)
	w = serve(t, svc, http.MethodPost, "/api/v1/librarians", `{"username":"front","email":"front@example.com"}`, librarian)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"email is already registered"}`, body(w))

	svc.EXPECT().DeleteLibrarian(gomock.Any(), 2).Return(nil)
	w = serve(t, svc, http.MethodDelete, "/api/v1/librarians/2", "", librarian)
	require.Equal(t, http.StatusNoContent, w.Code)
}
