package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"

	httpError "github.com/bcaffe88/cardapio-completo/src/pkg/http-error"
	"github.com/bcaffe88/cardapio-completo/src/pkg/token"
	"github.com/bcaffe88/cardapio-completo/src/pkg/utils"
)

const authLocalKey = "auth"

// VerifyBearer validates the Authorization bearer token and stores the
// decoded claim for handlers downstream.
func VerifyBearer(config *viper.Viper) fiber.Handler {
	secret := []byte(config.GetString("jwt.secret"))

	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			return utils.ResponseError(httpError.NewUnauthorized(), ctx)
		}

		claims := jwt.MapClaims{}
		parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid {
			return utils.ResponseError(httpError.NewUnauthorized(), ctx)
		}

		claim := &token.Claim{}
		if iss, ok := claims["iss"].(string); ok {
			claim.Iss = iss
		}
		if aud, ok := claims["aud"].(string); ok {
			claim.Aud = aud
		}
		if metadata, ok := claims["metadata"].(map[string]interface{}); ok {
			if userID, ok := metadata["user_id"].(string); ok {
				claim.Metadata.UserID = userID
			}
			if fullName, ok := metadata["full_name"].(string); ok {
				claim.Metadata.FullName = fullName
			}
			if role, ok := metadata["role"].(string); ok {
				claim.Metadata.Role = role
			}
		}

		ctx.Locals(authLocalKey, claim)
		return ctx.Next()
	}
}

// GetUser returns the claim VerifyBearer stored, or an empty claim on
// unauthenticated routes.
func GetUser(ctx *fiber.Ctx) *token.Claim {
	if claim, ok := ctx.Locals(authLocalKey).(*token.Claim); ok {
		return claim
	}
	return &token.Claim{}
}
