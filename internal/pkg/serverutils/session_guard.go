package serverutils

import (
	"context"
	"errors"

	"teamsync-be/internal/entity"
	"teamsync-be/internal/pkg/apperror"
	"teamsync-be/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const LocalsUser = "user"

type SessionUserFinder interface {
	FindSessionUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

// SessionGuard resolves the cookie token to a stored user and puts it in Locals.
func SessionGuard(tokens *token.Manager, users SessionUserFinder, cookieName string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		raw := ctx.Cookies(cookieName)
		if raw == "" {
			return apperror.Unauthorized("Unauthorized request. No token provided.")
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				return apperror.Unauthorized("Token has expired.")
			}
			return apperror.Unauthorized("Invalid token.")
		}

		user, err := users.FindSessionUser(ctx.UserContext(), claims.UserId())
		if err != nil {
			return apperror.Internal(err)
		}
		if user == nil {
			return apperror.Unauthorized("Invalid token. User not found.")
		}

		ctx.Locals(LocalsUser, user)
		return ctx.Next()
	}
}

// CurrentUser returns the user placed by SessionGuard, or nil outside guarded routes.
func CurrentUser(ctx *fiber.Ctx) *entity.User {
	user, _ := ctx.Locals(LocalsUser).(*entity.User)
	return user
}
