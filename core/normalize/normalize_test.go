package normalize

import (
	"testing"

	"github.com/shopspring/decimal"

	"supplier-cost/core/types"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestToken(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    types.Value
		wantErr bool
	}{
		{
			name: "plain number",
			raw:  "12.5",
			want: types.Exact(dec(t, "12.5")),
		},
		{
			name: "locale decimal comma",
			raw:  "12,5",
			want: types.Exact(dec(t, "12.5")),
		},
		{
			name: "currency adornment",
			raw:  "1234,56 €",
			want: types.Exact(dec(t, "1234.56")),
		},
		{
			name: "percent adornment",
			raw:  "22%",
			want: types.Exact(dec(t, "22")),
		},
		{
			name: "less than bound",
			raw:  "<20",
			want: types.LessThan(dec(t, "20")),
		},
		{
			name: "greater than bound with comma",
			raw:  "> 5,5",
			want: types.GreaterThan(dec(t, "5.5")),
		},
		{
			name: "explicit not available",
			raw:  "N/A",
			want: types.Unknown(),
		},
		{
			name: "empty",
			raw:  "",
			want: types.Unknown(),
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: types.Unknown(),
		},
		{
			name:    "unparsable text",
			raw:     "call for price",
			want:    types.Unknown(),
			wantErr: true,
		},
		{
			name:    "bound without number",
			raw:     "<abc",
			want:    types.Unknown(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Token(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Token(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got.Kind != tt.want.Kind {
				t.Fatalf("Token(%q) kind = %s, want %s", tt.raw, got.Kind, tt.want.Kind)
			}
			if got.Kind != types.KindUnknown && !got.Num.Equal(tt.want.Num) {
				t.Errorf("Token(%q) num = %s, want %s", tt.raw, got.Num, tt.want.Num)
			}
		})
	}
}

func TestTokenNeverFatal(t *testing.T) {
	// Unparsable non-empty input recovers to Unknown with a warning
	// error; the value must still be usable as predicate and quantity.
	v, err := Token("garbage")
	if err == nil {
		t.Fatal("expected recoverable error for unparsable token")
	}
	if !v.IsUnknown() {
		t.Fatalf("expected Unknown, got %s", v)
	}
	if v.Matches(dec(t, "1")) {
		t.Error("Unknown predicate must never match")
	}
	if !v.OrZero().IsZero() {
		t.Error("Unknown quantity must count as zero")
	}
}
