package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// NewLogger emits one structured access-log line per request.
func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		entry := logrus.WithFields(logrus.Fields{
			"method":  ctx.Method(),
			"path":    ctx.Path(),
			"status":  ctx.Response().StatusCode(),
			"latency": time.Since(start).String(),
			"ip":      ctx.IP(),
		})
		if err != nil {
			entry.WithError(err).Error("request failed")
			return err
		}
		entry.Info("request completed")
		return nil
	}
}
