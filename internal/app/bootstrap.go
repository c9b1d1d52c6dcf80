package app

import (
	"fmt"
	"strings"

	"farmconnect/internal/config"
	"farmconnect/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	f.Use(middleware.NewAccessLogMiddleware(container.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(container.Logger).Middleware())

	container.Routes.Register(f)

	cleanup := func() error {
		return container.Close()
	}

	return &App{Fiber: f, Container: container}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
