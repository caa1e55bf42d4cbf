package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brtkwt/BestStoreAPI/internal/http/handlers"
	"github.com/brtkwt/BestStoreAPI/internal/http/middleware"
	"github.com/brtkwt/BestStoreAPI/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// allowAll stands in for the casbin middleware in routing tests
type allowAll struct{}

func (allowAll) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) { c.Next() }
}

func newTestRouter() *gin.Engine {
	authSvc := mocks.NewMockAuthService()
	tokenSvc := mocks.NewMockTokenService()

	return BuildRouter(
		handlers.NewAccountHandlers(authSvc),
		handlers.NewProductHandlers(nil),
		handlers.NewContactHandlers(nil),
		handlers.NewCartHandlers(nil),
		handlers.NewUserHandlers(mocks.NewMockUserRepository()),
		middleware.NewAuthMW(tokenSvc),
		allowAll{},
	)
}

func TestRouter_Builds(t *testing.T) {
	// Registering the full route table must not panic; gin rejects
	// conflicting parameter and static segments at registration time.
	require.NotPanics(t, func() { newTestRouter() })
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestRouter_ProtectedRoutesRequireAToken(t *testing.T) {
	r := newTestRouter()

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/account/profile"},
		{http.MethodPost, "/products"},
		{http.MethodGet, "/contacts"},
		{http.MethodGet, "/users"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))
		assert.Equalf(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestRouter_PublicRoutesNeedNoToken(t *testing.T) {
	r := newTestRouter()

	// Account directory listing is admin only, registration is open
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/account/register", nil))
	assert.NotEqual(t, http.StatusUnauthorized, w.Code)
}
