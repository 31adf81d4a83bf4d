package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/hellofresh/health-go/v5"
)

// HealthCheck is a named check reported by the health endpoint.
type HealthCheck struct {
	Name    string
	Timeout time.Duration
	Check   func(ctx context.Context) error
}

// NewHealthHandler builds the /health handler. A failing check turns the report unavailable.
func NewHealthHandler(version string, checks ...HealthCheck) (fiber.Handler, error) {
	configs := make([]health.Config, 0, len(checks))
	for _, c := range checks {
		configs = append(configs, health.Config{
			Name:      c.Name,
			Timeout:   c.Timeout,
			SkipOnErr: false,
			Check:     c.Check,
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "toko-api",
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(configs...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return adaptor.HTTPHandler(h.Handler()), nil
}
