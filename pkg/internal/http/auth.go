package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/sahifa-news/sahifa/pkg/internal/authn"
	"github.com/sahifa-news/sahifa/pkg/internal/services"
)

// IReader verifies tokens issued by the external identity provider. When it
// is nil every request is treated as anonymous.
var IReader *authn.TokenReader

// authMiddleware resolves the caller into a local author mirror; it never
// rejects a request by itself, handlers decide what anonymity means.
func authMiddleware(c *fiber.Ctx) error {
	if IReader == nil {
		return c.Next()
	}

	header := c.Get(fiber.HeaderAuthorization)
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if len(tokenString) == 0 || tokenString == header {
		return c.Next()
	}

	claims, err := IReader.ReadToken(tokenString)
	if err != nil {
		log.Debug().Err(err).Msg("Unable to read the token in request...")
		return c.Next()
	}

	author, err := services.EnsureAuthor(claims.AccountID, claims.Name, claims.Nick, claims.Avatar)
	if err != nil {
		log.Warn().Err(err).Uint("account", claims.AccountID).Msg("Unable to mirror account into authors...")
		return c.Next()
	}

	c.Locals("user", author)
	c.Locals("claims", claims)

	return c.Next()
}
