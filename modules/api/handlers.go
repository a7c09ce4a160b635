package api

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/example/calc-service/modules/calculator"
	"github.com/gofiber/fiber/v2"
)

// flashCookie carries a one-shot message across the redirect back to
// the form, the same role the original flash message played.
const flashCookie = "calc_flash"

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	calc calculator.CalculatorPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(calc calculator.CalculatorPort) *Handlers {
	return &Handlers{calc: calc}
}

// Home renders the calculator form.
func (h *Handlers) Home(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Flash": popFlash(c),
	})
}

// Calculate handles the web form submission. On success the user is
// redirected to the history page; on failure back to the form with a
// flash message. Nothing is persisted on failure.
func (h *Handlers) Calculate(c *fiber.Ctx) error {
	expression := strings.TrimSpace(c.FormValue("expression"))
	if expression == "" {
		setFlash(c, "Enter an expression.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if _, err := h.calc.Evaluate(c.UserContext(), expression); err != nil {
		_, _, message := classifyServiceError(err)
		setFlash(c, "Error: "+message)
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	return c.Redirect("/history", fiber.StatusSeeOther)
}

// History renders the most recent calculations.
func (h *Handlers) History(c *fiber.Ctx) error {
	resp, err := h.calc.History(c.UserContext(), calculator.DefaultHistoryLimit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load history")
	}
	return c.Render("history", fiber.Map{
		"Rows": resp.Calculations,
	})
}

// APICalc evaluates the expression in the "expr" query parameter and
// returns the persisted calculation as JSON.
func (h *Handlers) APICalc(c *fiber.Ctx) error {
	expression := strings.TrimSpace(c.Query("expr"))
	if expression == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "expr query param required",
		})
	}

	resp, err := h.calc.Evaluate(c.UserContext(), expression)
	if err != nil {
		status, kind, message := classifyServiceError(err)
		return c.Status(status).JSON(ErrorResponse{
			Error:   kind,
			Message: message,
		})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// APIHistory returns recent calculations as JSON, newest first.
func (h *Handlers) APIHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", calculator.DefaultHistoryLimit)

	resp, err := h.calc.History(c.UserContext(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to load history",
		})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// APIGetCalculation returns a single calculation by id.
func (h *Handlers) APIGetCalculation(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid calculation id",
		})
	}

	resp, err := h.calc.Get(c.UserContext(), uint(id))
	if err != nil {
		status, kind, message := classifyServiceError(err)
		return c.Status(status).JSON(ErrorResponse{
			Error:   kind,
			Message: message,
		})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// HealthCheck reports module health.
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"module": "api",
	})
}

// classifyServiceError maps a calculator service error to an HTTP
// status, error kind and user-facing message. Errors cross the service
// boundary flattened to strings, so classification matches known
// message fragments.
func classifyServiceError(err error) (status int, kind, message string) {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "expression too long"):
		return fiber.StatusBadRequest, "bad_request", "Expression is too long (max 100 characters)"
	case strings.Contains(errStr, "unsupported syntax"):
		return fiber.StatusBadRequest, "bad_request", "Expression contains unsupported syntax"
	case strings.Contains(errStr, "malformed expression"):
		return fiber.StatusBadRequest, "bad_request", "Expression is malformed"
	case strings.Contains(errStr, "division by zero"):
		return fiber.StatusBadRequest, "bad_request", "Division by zero"
	case strings.Contains(errStr, "domain error"):
		return fiber.StatusBadRequest, "bad_request", "Result is outside the supported numeric range"
	case strings.Contains(errStr, "expression is required"):
		return fiber.StatusBadRequest, "bad_request", "Expression is required"
	case strings.Contains(errStr, "not found"):
		return fiber.StatusNotFound, "not_found", "Calculation not found"
	default:
		return fiber.StatusInternalServerError, "internal_error", "Failed to evaluate expression"
	}
}

// setFlash stores a one-shot message for the next page render.
func setFlash(c *fiber.Ctx, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		HTTPOnly: true,
	})
}

// popFlash returns the pending flash message, if any, and clears it.
func popFlash(c *fiber.Ctx) string {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return ""
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}
