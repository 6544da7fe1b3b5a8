package services

import (
	"strconv"

	"github.com/doeshing/calcli/internal/domain"
)

// ParseOperands parses exactly two numeric tokens into operands, enforcing
// the configured magnitude bound.
func ParseOperands(tokens []string, cfg domain.Config) (float64, float64, error) {
	if len(tokens) != 2 {
		return 0, 0, &domain.ValidationError{Msg: "exactly two operands required"}
	}
	a, err := strconv.ParseFloat(tokens[0], 64)
	if err != nil {
		return 0, 0, &domain.ValidationError{Msg: "operands must be numeric"}
	}
	b, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return 0, 0, &domain.ValidationError{Msg: "operands must be numeric"}
	}
	for _, v := range []float64{a, b} {
		if err := cfg.ValidateOperand(v); err != nil {
			return 0, 0, err
		}
	}
	return a, b, nil
}
