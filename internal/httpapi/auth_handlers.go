package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/skarut/landing-api/internal/auth"
	"github.com/skarut/landing-api/internal/store"
)

// UserResponse is the non-secret projection of a credential record plus the
// issued token. The password hash has no field here at all.
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Token     string     `json:"token"`
}

func newUserResponse(user *store.User, token string) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Token:     token,
	}
}

// AuthController exposes registration, login, and logout
type AuthController struct {
	Auther *auth.Auther
	Logger auth.Logger
}

// RegisterPost handles POST /auth/register
func (a *AuthController) RegisterPost(c *fiber.Ctx) error {
	payload := new(CredentialsPayload)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("register parse payload", "error", err)
		return writeError(c, a.Logger, errors.Wrap(err, errors.CategoryBadInput, "unable to parse request body"))
	}

	if err := errors.ValidateWithOzzo(payload.Validate, "invalid registration payload"); err != nil {
		return writeError(c, a.Logger, err)
	}

	user, token, err := a.Auther.Register(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		return writeError(c, a.Logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(newUserResponse(user, token))
}

// LoginPost handles POST /auth/login
func (a *AuthController) LoginPost(c *fiber.Ctx) error {
	payload := new(CredentialsPayload)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("login parse payload", "error", err)
		return writeError(c, a.Logger, errors.Wrap(err, errors.CategoryBadInput, "unable to parse request body"))
	}

	if err := errors.ValidateWithOzzo(payload.Validate, "invalid login payload"); err != nil {
		return writeError(c, a.Logger, err)
	}

	user, token, err := a.Auther.Login(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		return writeError(c, a.Logger, err)
	}

	return c.JSON(newUserResponse(user, token))
}

// LogoutPost handles POST /admin/logout. It sits behind the token gate, so a
// missing or invalid token never reaches this handler. Tokens are stateless:
// nothing is invalidated, the response is an acknowledgement only.
func (a *AuthController) LogoutPost(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "admin logged out",
	})
}
