package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie describes the cookie carrying the session token.
type SessionCookie struct {
	Name   string
	Days   int
	Secure bool
}

func (c SessionCookie) set(ctx *fiber.Ctx, value string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     c.Name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(c.Days) * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   c.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (c SessionCookie) clear(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   c.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
