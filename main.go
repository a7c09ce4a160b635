package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/calc-service/middleware/ratelimit"
	"github.com/example/calc-service/modules/api"
	"github.com/example/calc-service/modules/calculator"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration from environment
	dbPath := getEnv("DB_PATH", "./calc.db")
	httpPort := getEnvInt("HTTP_PORT", 3000)
	viewsDir := getEnv("VIEWS_DIR", "./views")
	rateLimitEnabled := getEnv("RATE_LIMIT_ENABLED", "false") == "true"
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisPassword := getEnv("REDIS_PASSWORD", "")
	evaluateLimit := getEnvInt("EVALUATE_RATE_LIMIT", 60)
	rateLimitWindow := getEnvDuration("RATE_LIMIT_WINDOW", time.Minute)

	log.Println("=== Calc Service ===")
	log.Printf("Database: %s", dbPath)
	log.Printf("HTTP Port: %d", httpPort)
	if rateLimitEnabled {
		log.Printf("Rate limiting: %d evaluations per %s via Redis at %s",
			evaluateLimit, rateLimitWindow, redisAddr)
	}

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Middleware must be registered before regular modules to intercept
	// service registrations.
	if rateLimitEnabled {
		rateLimitMiddleware, err := ratelimit.New(
			ratelimit.WithRedisAddr(redisAddr),
			ratelimit.WithRedisPassword(redisPassword),
			ratelimit.WithDefaultLimit(getEnvInt("DEFAULT_RATE_LIMIT", 240), rateLimitWindow),
			ratelimit.WithServiceLimit(calculator.ServiceEvaluate, evaluateLimit),
		)
		if err != nil {
			log.Fatalf("Failed to create rate limit middleware: %v", err)
		}
		app.Register(rateLimitMiddleware)
	}

	// Register modules: the calculator core first, then the HTTP
	// adapter that depends on it.
	app.Register(calculator.NewModule(dbPath))
	app.Register(api.NewModule(httpPort, viewsDir))

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(httpPort)

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(port int) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("Web UI (http://localhost:%d):", port)
	log.Println("  GET    /                          - Calculator form")
	log.Println("  POST   /calculate                 - Submit an expression")
	log.Println("  GET    /history                   - Calculation history")
	log.Println("")
	log.Printf("JSON API (http://localhost:%d):", port)
	log.Println("  GET    /api/calc?expr=2%2B3       - Evaluate and persist")
	log.Println("  GET    /api/v1/history            - Recent calculations")
	log.Println("  GET    /api/v1/calculations/:id   - One calculation")
	log.Println("  GET    /health                    - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvDuration returns environment variable as duration or default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("Warning: invalid duration value for %s: %s, using default: %s", key, value, defaultValue)
	}
	return defaultValue
}
