package calculator

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/example/calc-service/domain/expr"
	"github.com/go-monolith/mono"
)

// History listing bounds.
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 50
)

// evaluate handles the calculator.evaluate service request. A row is
// written only when evaluation succeeds; failed evaluations leave the
// history untouched.
func (m *Module) evaluate(_ context.Context, req EvaluateRequest, _ *mono.Msg) (CalculationResponse, error) {
	expression := strings.TrimSpace(req.Expression)
	if expression == "" {
		return CalculationResponse{}, fmt.Errorf("expression is required")
	}

	value, err := expr.Evaluate(expression)
	if err != nil {
		return CalculationResponse{}, err
	}

	calc := &Calculation{
		Expression: expression,
		Result:     formatResult(value),
	}
	if err := m.repo.Create(calc); err != nil {
		return CalculationResponse{}, fmt.Errorf("failed to save calculation: %w", err)
	}

	return toCalculationResponse(calc), nil
}

// getCalculation handles the calculator.get service request.
func (m *Module) getCalculation(_ context.Context, req GetCalculationRequest, _ *mono.Msg) (CalculationResponse, error) {
	if req.ID == 0 {
		return CalculationResponse{}, fmt.Errorf("id is required")
	}

	calc, err := m.repo.FindByID(req.ID)
	if err != nil {
		return CalculationResponse{}, err
	}

	return toCalculationResponse(calc), nil
}

// listHistory handles the calculator.history service request.
func (m *Module) listHistory(_ context.Context, req ListHistoryRequest, _ *mono.Msg) (ListHistoryResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	calcs, err := m.repo.FindRecent(limit)
	if err != nil {
		return ListHistoryResponse{}, err
	}

	response := ListHistoryResponse{
		Calculations: make([]CalculationResponse, 0, len(calcs)),
		Total:        len(calcs),
	}
	for _, calc := range calcs {
		response.Calculations = append(response.Calculations, toCalculationResponse(calc))
	}
	return response, nil
}

// formatResult renders a value for storage and display: integral values
// without a decimal point ("5"), everything else in shortest round-trip
// form ("3.5").
func formatResult(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// toCalculationResponse converts a Calculation entity to a response.
func toCalculationResponse(calc *Calculation) CalculationResponse {
	return CalculationResponse{
		ID:         calc.ID,
		Expression: calc.Expression,
		Result:     calc.Result,
		CreatedAt:  calc.CreatedAt,
	}
}
