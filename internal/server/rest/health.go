package rest

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const pingTimeout = 2 * time.Second

type healthResponse struct {
	Status   string `json:"status"`
	DBStatus string `json:"db_status"`
	Details  string `json:"details,omitempty"`
}

// health always answers 200; store failures are reported in the payload.
func (s *HTTPServer) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn(ctx, "database ping failed", "error", err.Error())
		return c.JSON(healthResponse{Status: "error", DBStatus: "disconnected", Details: err.Error()})
	}

	return c.JSON(healthResponse{Status: "ok", DBStatus: "connected"})
}
