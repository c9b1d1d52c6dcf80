package handler

import (
	"context"
	"time"

	"farmconnect/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	dbState := "up"
	if h.db == nil {
		dbState = "unconfigured"
		status = fiber.StatusServiceUnavailable
	} else if err := h.db.Ping(ctx); err != nil {
		dbState = "down"
		status = fiber.StatusServiceUnavailable
	}

	cacheState := "up"
	if h.cache == nil {
		cacheState = "unconfigured"
	} else if err := h.cache.Ping(ctx); err != nil {
		cacheState = "down"
	}

	body := fiber.Map{
		"database": dbState,
		"cache":    cacheState,
		"time":     time.Now().UTC().Format(time.RFC3339),
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, "Service degraded", body)
	}
	return response.Success(c, status, response.MessageOK, body)
}
