package middleware

import (
	"fmt"
	"strings"
	"time"

	httpError "kitchen-service/src/pkg/http-error"
	"kitchen-service/src/pkg/log"
	"kitchen-service/src/pkg/token"
	"kitchen-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const claimLocalKey = "claim"

func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		logger := log.GetLogger()
		logger.Info("http",
			fmt.Sprintf("%s %s -> %d", ctx.Method(), ctx.Path(), ctx.Response().StatusCode()),
			"request",
			fmt.Sprintf("latency=%s", time.Since(start)),
		)
		return err
	}
}

// VerifyBearer decodes and checks the bearer token issued by the auth
// service. Only the claims are read here; user management lives elsewhere.
func VerifyBearer(config *viper.Viper) fiber.Handler {
	secret := []byte(config.GetString("auth.jwt.secret"))
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "missing bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		rawToken := strings.TrimPrefix(authHeader, "Bearer ")
		claim := new(token.Claim)
		parsed, err := jwt.ParseWithClaims(rawToken, claim, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		ctx.Locals(claimLocalKey, claim)
		return ctx.Next()
	}
}

// RequireAdmin gates operator endpoints.
func RequireAdmin() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claim := GetUser(ctx)
		if claim == nil || !claim.IsAdmin() {
			errObj := httpError.NewForbidden()
			errObj.Message = "operator access required"
			return utils.ResponseError(errObj, ctx)
		}
		return ctx.Next()
	}
}

func GetUser(ctx *fiber.Ctx) *token.Claim {
	claim, _ := ctx.Locals(claimLocalKey).(*token.Claim)
	return claim
}
