package service

import (
	"github.com/shopspring/decimal"

	apperrors "github.com/spec-kit/event-ticketing/pkg/util"
)

// amountLimit is the smallest value that no longer fits NUMERIC(5,2).
var amountLimit = decimal.NewFromInt(1000)

// validateAmount enforces the fixed-point contract of money and
// duration fields: at most five significant digits, two of them
// fractional.
func validateAmount(field string, d decimal.Decimal) error {
	if d.Exponent() < -2 {
		return apperrors.NewValidationError("at most 2 decimal places allowed", map[string]any{"field": field})
	}
	if d.Abs().GreaterThanOrEqual(amountLimit) {
		return apperrors.NewValidationError("value out of range", map[string]any{"field": field})
	}
	return nil
}
