package api

import (
	"context"
	"fmt"
	"log"

	"github.com/example/calc-service/modules/calculator"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
)

// Module is the HTTP module: the calculator web form and the JSON API.
type Module struct {
	app      *fiber.App
	calc     calculator.CalculatorPort
	port     int
	viewsDir string
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.DependentModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new API Module listening on the given port and
// loading HTML views from viewsDir.
func NewModule(port int, viewsDir string) *Module {
	return &Module{
		port:     port,
		viewsDir: viewsDir,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *Module) Dependencies() []string {
	return []string{"calculator"}
}

// SetDependencyServiceContainer receives service containers from
// dependencies.
func (m *Module) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "calculator" {
		m.calc = calculator.NewServiceAdapter(container)
	}
}

// Start initializes the Fiber HTTP server.
func (m *Module) Start(_ context.Context) error {
	if m.calc == nil {
		return fmt.Errorf("calculator dependency not set")
	}

	m.app = m.newApp()

	go func() {
		addr := fmt.Sprintf(":%d", m.port)
		log.Printf("[api] Starting HTTP server on %s", addr)
		if err := m.app.Listen(addr); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *Module) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"port": m.port,
		},
	}
}

// newApp builds the Fiber app with middleware and routes.
func (m *Module) newApp() *fiber.App {
	engine := html.New(m.viewsDir, ".html")

	app := fiber.New(fiber.Config{
		AppName:               "Calc Service",
		Views:                 engine,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestID())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New())

	handlers := NewHandlers(m.calc)

	// Web pages
	app.Get("/", handlers.Home)
	app.Post("/calculate", handlers.Calculate)
	app.Get("/history", handlers.History)

	// Health check
	app.Get("/health", handlers.HealthCheck)

	// Original API surface
	app.Get("/api/calc", handlers.APICalc)

	// API v1 routes
	v1 := app.Group("/api/v1")
	v1.Get("/history", handlers.APIHistory)
	v1.Get("/calculations/:id", handlers.APIGetCalculation)

	return app
}

// requestID attaches a short correlation id to every request.
func requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()[:8]
		}
		c.Locals("request_id", id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}

// errorHandler handles errors from Fiber routes.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
	})
}
