package aggregation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestOperators_InitialAndApply(t *testing.T) {
	tests := []struct {
		name        string
		op          string
		first       decimal.Decimal
		running     decimal.Decimal
		next        decimal.Decimal
		wantInitial decimal.Decimal
		wantApply   decimal.Decimal
	}{
		{
			name:        "sum",
			op:          OpSum,
			first:       decimal.NewFromInt(100),
			running:     decimal.NewFromInt(150),
			next:        decimal.NewFromInt(75),
			wantInitial: decimal.NewFromInt(100),
			wantApply:   decimal.NewFromInt(225),
		},
		{
			name:        "count ignores the value",
			op:          OpCount,
			first:       decimal.NewFromInt(999),
			running:     decimal.NewFromInt(4),
			next:        decimal.NewFromInt(-1),
			wantInitial: decimal.NewFromInt(1),
			wantApply:   decimal.NewFromInt(5),
		},
		{
			name:        "min keeps lower",
			op:          OpMin,
			first:       decimal.NewFromInt(7),
			running:     decimal.NewFromInt(7),
			next:        decimal.NewFromInt(3),
			wantInitial: decimal.NewFromInt(7),
			wantApply:   decimal.NewFromInt(3),
		},
		{
			name:        "min keeps running when next is higher",
			op:          OpMin,
			first:       decimal.NewFromInt(3),
			running:     decimal.NewFromInt(3),
			next:        decimal.NewFromInt(9),
			wantInitial: decimal.NewFromInt(3),
			wantApply:   decimal.NewFromInt(3),
		},
		{
			name:        "max keeps higher",
			op:          OpMax,
			first:       decimal.NewFromInt(3),
			running:     decimal.NewFromInt(3),
			next:        decimal.NewFromInt(9),
			wantInitial: decimal.NewFromInt(3),
			wantApply:   decimal.NewFromInt(9),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			agg, ok := Operators[tc.op]
			require.True(t, ok)
			require.True(t, tc.wantInitial.Equal(agg.Initial(tc.first)))
			require.True(t, tc.wantApply.Equal(agg.Apply(tc.running, tc.next)))
		})
	}
}

func TestValidOperator(t *testing.T) {
	require.True(t, ValidOperator(OpSum))
	require.True(t, ValidOperator(OpCount))
	require.True(t, ValidOperator(OpMin))
	require.True(t, ValidOperator(OpMax))
	require.False(t, ValidOperator("avg"))
	require.False(t, ValidOperator(""))
}
