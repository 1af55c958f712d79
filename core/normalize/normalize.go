// Package normalize converts free-form source tokens into typed values.
//
// A raw token becomes exactly one of: a numeric value, a one-sided
// inequality, or the Unknown sentinel. Parsing is never fatal: an
// unparsable non-empty token yields Unknown plus a recoverable error the
// caller may log as a warning.
package normalize

import (
	"strings"

	"github.com/shopspring/decimal"

	"supplier-cost/core/types"
	"supplier-cost/internal/errors"
)

// Token normalizes one raw text token. Locale-style decimal commas and
// percent/currency adornments are stripped before parsing.
func Token(raw string) (types.Value, error) {
	if strings.TrimSpace(raw) == "" {
		return types.Unknown(), nil
	}

	clean := strings.NewReplacer(",", ".", "%", "", "€", "").Replace(raw)
	clean = strings.TrimSpace(clean)

	if strings.EqualFold(clean, "N/A") {
		return types.Unknown(), nil
	}

	switch {
	case strings.HasPrefix(clean, "<"):
		bound, err := decimal.NewFromString(strings.TrimSpace(clean[1:]))
		if err != nil {
			return types.Unknown(), errors.Normalization(raw, err)
		}
		return types.LessThan(bound), nil
	case strings.HasPrefix(clean, ">"):
		bound, err := decimal.NewFromString(strings.TrimSpace(clean[1:]))
		if err != nil {
			return types.Unknown(), errors.Normalization(raw, err)
		}
		return types.GreaterThan(bound), nil
	}

	num, err := decimal.NewFromString(clean)
	if err != nil {
		return types.Unknown(), errors.Normalization(raw, err)
	}
	return types.Exact(num), nil
}
