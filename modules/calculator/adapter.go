package calculator

import (
	"context"
	"encoding/json"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Service names for the calculator module.
const (
	ServiceEvaluate = "evaluate"
	ServiceGet      = "get"
	ServiceHistory  = "history"
)

// CalculatorPort is the interface consumed by other modules.
type CalculatorPort interface {
	Evaluate(ctx context.Context, expression string) (*CalculationResponse, error)
	Get(ctx context.Context, id uint) (*CalculationResponse, error)
	History(ctx context.Context, limit int) (*ListHistoryResponse, error)
}

// ServiceAdapter provides type-safe access to calculator services.
// Use this adapter when consuming calculator services from other
// modules.
type ServiceAdapter struct {
	container mono.ServiceContainer
}

// Compile-time interface check.
var _ CalculatorPort = (*ServiceAdapter)(nil)

// NewServiceAdapter creates a new calculator service adapter.
func NewServiceAdapter(container mono.ServiceContainer) *ServiceAdapter {
	return &ServiceAdapter{container: container}
}

// Evaluate calls the evaluate service: the expression is computed and,
// on success, persisted to history.
func (a *ServiceAdapter) Evaluate(ctx context.Context, expression string) (*CalculationResponse, error) {
	var resp CalculationResponse
	err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceEvaluate,
		json.Marshal,
		json.Unmarshal,
		&EvaluateRequest{Expression: expression},
		&resp,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Get calls the get service and returns one calculation by id.
func (a *ServiceAdapter) Get(ctx context.Context, id uint) (*CalculationResponse, error) {
	var resp CalculationResponse
	err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceGet,
		json.Marshal,
		json.Unmarshal,
		&GetCalculationRequest{ID: id},
		&resp,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// History calls the history service and returns recent calculations,
// newest first.
func (a *ServiceAdapter) History(ctx context.Context, limit int) (*ListHistoryResponse, error) {
	var resp ListHistoryResponse
	err := helper.CallRequestReplyService(
		ctx,
		a.container,
		ServiceHistory,
		json.Marshal,
		json.Unmarshal,
		&ListHistoryRequest{Limit: limit},
		&resp,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
