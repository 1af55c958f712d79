// Package types - Core domain types
package types

import "github.com/shopspring/decimal"

// Kind tags a normalized value
type Kind string

const (
	// KindExact is a plain numeric value; as a predicate it requires
	// numeric equality.
	KindExact Kind = "exact"

	// KindLessThan is a strict upper bound
	KindLessThan Kind = "less_than"

	// KindGreaterThan is a strict lower bound
	KindGreaterThan Kind = "greater_than"

	// KindUnknown is the sentinel for empty or unparsable tokens.
	// As a predicate it never matches; as a quantity it counts as zero.
	KindUnknown Kind = "unknown"
)

// Value is the closed variant a raw source token normalizes into:
// a number, a one-sided inequality, or Unknown.
type Value struct {
	Kind Kind            `json:"kind"`
	Num  decimal.Decimal `json:"num"`
}

// Exact returns a plain numeric value
func Exact(d decimal.Decimal) Value {
	return Value{Kind: KindExact, Num: d}
}

// LessThan returns a strict upper-bound predicate
func LessThan(d decimal.Decimal) Value {
	return Value{Kind: KindLessThan, Num: d}
}

// GreaterThan returns a strict lower-bound predicate
func GreaterThan(d decimal.Decimal) Value {
	return Value{Kind: KindGreaterThan, Num: d}
}

// Unknown returns the unknown sentinel
func Unknown() Value {
	return Value{Kind: KindUnknown}
}

// IsUnknown reports whether the value is the unknown sentinel
func (v Value) IsUnknown() bool {
	return v.Kind == KindUnknown
}

// Matches evaluates the value as a predicate against a computed total.
// Unknown predicates never match.
func (v Value) Matches(total decimal.Decimal) bool {
	switch v.Kind {
	case KindExact:
		return total.Equal(v.Num)
	case KindLessThan:
		return total.LessThan(v.Num)
	case KindGreaterThan:
		return total.GreaterThan(v.Num)
	default:
		return false
	}
}

// OrZero evaluates the value as a quantity, treating Unknown as zero
func (v Value) OrZero() decimal.Decimal {
	if v.Kind == KindExact {
		return v.Num
	}
	return decimal.Zero
}

// String returns a compact representation for logs
func (v Value) String() string {
	switch v.Kind {
	case KindExact:
		return v.Num.String()
	case KindLessThan:
		return "<" + v.Num.String()
	case KindGreaterThan:
		return ">" + v.Num.String()
	default:
		return "N/A"
	}
}
