package calculator

import "time"

// EvaluateRequest is the request for evaluating an expression.
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// CalculationResponse represents a persisted calculation in responses.
type CalculationResponse struct {
	ID         uint      `json:"id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}

// GetCalculationRequest is the request for fetching one calculation.
type GetCalculationRequest struct {
	ID uint `json:"id"`
}

// ListHistoryRequest is the request for listing calculation history.
// A zero Limit means the default; values are capped at MaxHistoryLimit.
type ListHistoryRequest struct {
	Limit int `json:"limit"`
}

// ListHistoryResponse is the response containing recent calculations,
// newest first.
type ListHistoryResponse struct {
	Calculations []CalculationResponse `json:"calculations"`
	Total        int                   `json:"total"`
}
