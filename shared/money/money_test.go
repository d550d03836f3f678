package money_test

import (
	"encoding/json"
	"testing"

	"hoteladmin/shared/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already two digits", input: "150.25", want: "150.25"},
		{name: "round half up", input: "10.005", want: "10.01"},
		{name: "negative", input: "-10.005", want: "-10.01"},
		{name: "integer", input: "300", want: "300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Round(decimal.RequireFromString(tt.input)).String())
		})
	}
}

func TestJSONRendersNumbers(t *testing.T) {
	raw, err := json.Marshal(map[string]decimal.Decimal{"rate": money.FromInt(170)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rate":170}`, string(raw))
}

func TestPtr(t *testing.T) {
	amount := money.Ptr(money.FromInt(20))

	require.NotNil(t, amount)
	assert.True(t, amount.Equal(decimal.NewFromInt(20)))
}
