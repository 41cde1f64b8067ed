package middleware

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/talentgate/recruiting-backend/internal/policy"
)

// CallerFromCtx extracts the caller identity from the verified JWT placed
// in context locals by the JWT middleware.
func CallerFromCtx(c *fiber.Ctx) (policy.Caller, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return policy.Caller{}, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return policy.Caller{}, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return policy.Caller{}, errors.New("missing sub claim")
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return policy.Caller{}, errors.New("malformed sub claim")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return policy.Caller{}, errors.New("missing role claim")
	}

	return policy.Caller{ID: uint(id), Role: role}, nil
}
