package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gh215tth/QLTV-dart/pkg/auth"
	md "github.com/gh215tth/QLTV-dart/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestAuthContext(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		userID   string
		role     string
		wantCode int
	}{
		{name: "ok user", userID: "2", role: auth.RoleUser, wantCode: http.StatusOK},
		{name: "ok librarian", userID: "7", role: auth.RoleLibrarian, wantCode: http.StatusOK},
		{name: "no user id", userID: "", role: auth.RoleUser, wantCode: http.StatusUnauthorized},
		{name: "bad user id", userID: "abc", role: auth.RoleUser, wantCode: http.StatusUnauthorized},
		{name: "bad role", userID: "2", role: "admin", wantCode: http.StatusForbidden},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/", func(c echo.Context) error {
				info, err := auth.FromContext(c.Request().Context())
				if err != nil {
					return err
				}
				return c.String(http.StatusOK, strconv.Itoa(info.UserID))
			}, md.AuthContext)

			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			r.Header.Set(auth.XUserIDHeader, tt.userID)
			r.Header.Set(auth.XUserRoleHeader, tt.role)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				require.Equal(t, tt.userID, w.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()
	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, md.AuthContext, md.RequireRole(auth.RoleLibrarian))

	for role, code := range map[string]int{
		auth.RoleLibrarian: http.StatusOK,
		auth.RoleUser:      http.StatusForbidden,
	} {
		r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		r.Header.Set(auth.XUserIDHeader, "1")
		r.Header.Set(auth.XUserRoleHeader, role)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)
		require.Equal(t, code, w.Code, role)
	}
}
