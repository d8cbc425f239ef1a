package httpapi_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skarut/landing-api/internal/auth"
	"github.com/skarut/landing-api/internal/httpapi"
)

type gateIdentity struct {
	id    string
	email string
}

func (g gateIdentity) ID() string    { return g.id }
func (g gateIdentity) Email() string { return g.email }

func newGateApp(t *testing.T) (*fiber.App, *auth.TokenService) {
	t.Helper()

	svc := auth.NewTokenService([]byte("test-signing-key"), 1, "landing-api", nil)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/protected", httpapi.TokenGate(httpapi.GateConfig{
		Validator:  svc,
		ContextKey: "user",
		AuthScheme: "Bearer",
	}), func(c *fiber.Ctx) error {
		claims, ok := httpapi.ClaimsFromCtx(c, "user")
		require.True(t, ok)
		return c.JSON(fiber.Map{"subject": claims.Subject()})
	})

	return app, svc
}

func TestTokenGate(t *testing.T) {
	app, svc := newGateApp(t)

	token, err := svc.Generate(gateIdentity{id: "admin-1", email: "a@b.com"})
	require.NoError(t, err)

	request := func(authorization string) (int, map[string]any) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authorization != "" {
			req.Header.Set(fiber.HeaderAuthorization, authorization)
		}
		res, err := app.Test(req, -1)
		require.NoError(t, err)
		defer res.Body.Close()

		body := decodeBody(t, res.Body)
		return res.StatusCode, body
	}

	t.Run("missing header is unauthorized", func(t *testing.T) {
		status, body := request("")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "missing authentication token", body["message"])
	})

	t.Run("garbage token is forbidden", func(t *testing.T) {
		status, body := request("not-a-token")
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "invalid authentication token", body["message"])
	})

	t.Run("token signed with another key is forbidden", func(t *testing.T) {
		other := auth.NewTokenService([]byte("other-signing-key"), 1, "landing-api", nil)
		forged, err := other.Generate(gateIdentity{id: "admin-1", email: "a@b.com"})
		require.NoError(t, err)

		status, _ := request(forged)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("expired token is forbidden", func(t *testing.T) {
		stale := auth.NewTokenService([]byte("test-signing-key"), -1, "landing-api", nil)
		expired, err := stale.Generate(gateIdentity{id: "admin-1", email: "a@b.com"})
		require.NoError(t, err)

		status, _ := request(expired)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("bare token passes", func(t *testing.T) {
		status, body := request(token)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "admin-1", body["subject"])
	})

	t.Run("scheme prefixed token passes", func(t *testing.T) {
		status, body := request("Bearer " + token)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "admin-1", body["subject"])
	})

	t.Run("scheme glued to the token is not a schemed token", func(t *testing.T) {
		status, _ := request("Bearer" + token)
		assert.Equal(t, http.StatusForbidden, status)
	})
}
