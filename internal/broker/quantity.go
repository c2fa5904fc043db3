package broker

import (
	"fmt"

	"github.com/newthinker/cryptrade/internal/core"
	"github.com/shopspring/decimal"
)

// ParseQuantity parses text as an exact decimal quantity. Floating point
// is never involved.
func ParseQuantity(text string) (decimal.Decimal, error) {
	q, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, core.WrapError(core.ErrInvalidQuantity,
			fmt.Errorf("QUANTITY %q: %w", text, err))
	}
	return q, nil
}
