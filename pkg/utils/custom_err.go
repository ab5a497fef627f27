package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTravelers   = errors.New("travelers must be at least 1")
	ErrUnknownBudgetLevel = errors.New("budget_level must be one of budget, mid, premium")
	ErrAIUnavailable      = errors.New("ai provider unavailable")
	ErrInternal           = errors.New("internal error")
)
