package httpapi_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPost(t *testing.T) {
	t.Run("creates the admin and returns a token", func(t *testing.T) {
		app := newTestApp(t)

		status, body := doJSON(t, app, http.MethodPost, "/auth/register", fiber.Map{
			"email":    "a@b.com",
			"password": "secret",
		}, "")

		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "a@b.com", body["email"])
		assert.NotEmpty(t, body["id"])
		assert.NotEmpty(t, body["token"])

		// the password digest never leaves the process
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "password_hash")
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		app := newTestApp(t)

		status, body := doJSON(t, app, http.MethodPost, "/auth/register", fiber.Map{
			"email":    "not-an-email",
			"password": "secret",
		}, "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, "validation")
	})

	t.Run("rejects a password shorter than five characters", func(t *testing.T) {
		app := newTestApp(t)

		status, _ := doJSON(t, app, http.MethodPost, "/auth/register", fiber.Map{
			"email":    "a@b.com",
			"password": "1234",
		}, "")

		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("rejects a duplicate email with a conflict", func(t *testing.T) {
		app := newTestApp(t)
		registerAdmin(t, app, "a@b.com", "secret")

		status, _ := doJSON(t, app, http.MethodPost, "/auth/register", fiber.Map{
			"email":    "a@b.com",
			"password": "secret",
		}, "")

		assert.Equal(t, http.StatusConflict, status)
	})

	t.Run("rejects an unparsable body", func(t *testing.T) {
		app := newTestApp(t)

		status, _ := doJSON(t, app, http.MethodPost, "/auth/register", "not an object", "")

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestLoginPost(t *testing.T) {
	t.Run("returns a fresh token for valid credentials", func(t *testing.T) {
		app := newTestApp(t)
		registerAdmin(t, app, "a@b.com", "secret")

		status, body := doJSON(t, app, http.MethodPost, "/auth/login", fiber.Map{
			"email":    "a@b.com",
			"password": "secret",
		}, "")

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "a@b.com", body["email"])
		assert.NotEmpty(t, body["token"])
		assert.NotContains(t, body, "password_hash")
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		app := newTestApp(t)
		registerAdmin(t, app, "a@b.com", "secret")

		wrongStatus, wrongBody := doJSON(t, app, http.MethodPost, "/auth/login", fiber.Map{
			"email":    "a@b.com",
			"password": "not-the-password",
		}, "")

		unknownStatus, unknownBody := doJSON(t, app, http.MethodPost, "/auth/login", fiber.Map{
			"email":    "nobody@b.com",
			"password": "secret",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, wrongStatus)
		assert.Equal(t, http.StatusUnauthorized, unknownStatus)
		assert.Equal(t, wrongBody["message"], unknownBody["message"])
	})

	t.Run("validates the payload before hitting the store", func(t *testing.T) {
		app := newTestApp(t)

		status, _ := doJSON(t, app, http.MethodPost, "/auth/login", fiber.Map{
			"email": "a@b.com",
		}, "")

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestLogoutPost(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		app := newTestApp(t)

		status, _ := doJSON(t, app, http.MethodPost, "/admin/logout", nil, "")

		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		app := newTestApp(t)

		status, _ := doJSON(t, app, http.MethodPost, "/admin/logout", nil, "not-a-token")

		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("acknowledges a valid session", func(t *testing.T) {
		app := newTestApp(t)
		token := registerAdmin(t, app, "a@b.com", "secret")

		status, body := doJSON(t, app, http.MethodPost, "/admin/logout", nil, token)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "admin logged out", body["message"])
	})
}
