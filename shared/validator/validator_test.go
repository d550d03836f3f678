package validator_test

import (
	"strings"
	"testing"

	"hoteladmin/shared/date"
	"hoteladmin/shared/failure"
	"hoteladmin/shared/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adjustmentRequest struct {
	RoomTypeID       string           `json:"room_type_id" validate:"required,uuid"`
	AdjustmentAmount *decimal.Decimal `json:"adjustment_amount" validate:"required"`
	EffectiveDate    date.Date        `json:"effective_date" validate:"required"`
	Reason           string           `json:"reason" validate:"omitempty,max=10"`
}

type roomTypeRequest struct {
	Name     string           `json:"name" validate:"required"`
	BaseRate *decimal.Decimal `json:"base_rate" validate:"required,gte=0"`
	Status   string           `json:"status" validate:"omitempty,oneof=active inactive"`
}

func amount(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)

	return &d
}

func TestValidateStruct(t *testing.T) {
	validID := "5b0f8a0e-6f3c-4b8e-9d7a-1f2e3d4c5b6a"

	tests := []struct {
		name       string
		data       adjustmentRequest
		wantErrMsg string
	}{
		{
			name: "valid request",
			data: adjustmentRequest{
				RoomTypeID:       validID,
				AdjustmentAmount: amount("-10.50"),
				EffectiveDate:    date.New(2024, 12, 24),
			},
		},
		{
			name: "zero amount is still provided",
			data: adjustmentRequest{
				RoomTypeID:       validID,
				AdjustmentAmount: amount("0"),
				EffectiveDate:    date.New(2024, 12, 24),
			},
		},
		{
			name: "missing amount",
			data: adjustmentRequest{
				RoomTypeID:    validID,
				EffectiveDate: date.New(2024, 12, 24),
			},
			wantErrMsg: "adjustment_amount is required",
		},
		{
			name: "missing date",
			data: adjustmentRequest{
				RoomTypeID:       validID,
				AdjustmentAmount: amount("20"),
			},
			wantErrMsg: "effective_date is required",
		},
		{
			name: "malformed room type id",
			data: adjustmentRequest{
				RoomTypeID:       "room-1",
				AdjustmentAmount: amount("20"),
				EffectiveDate:    date.New(2024, 12, 24),
			},
			wantErrMsg: "room_type_id must be a valid UUID",
		},
		{
			name: "reason too long",
			data: adjustmentRequest{
				RoomTypeID:       validID,
				AdjustmentAmount: amount("20"),
				EffectiveDate:    date.New(2024, 12, 24),
				Reason:           "Holiday Season Peak",
			},
			wantErrMsg: "reason must be at most 10 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantErrMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErrMsg, err.Error())
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestValidateStruct_DecimalBounds(t *testing.T) {
	tests := []struct {
		name    string
		rate    *decimal.Decimal
		wantErr bool
	}{
		{name: "positive", rate: amount("150.00")},
		{name: "zero", rate: amount("0")},
		{name: "negative", rate: amount("-0.01"), wantErr: true},
		{name: "missing", rate: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&roomTypeRequest{Name: "Deluxe Room", BaseRate: tt.rate})

			assert.Equal(t, tt.wantErr, err != nil, "err: %v", err)
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr bool
	}{
		{name: "valid civil date", field: "2024-12-24", tag: "civildate"},
		{name: "empty civil date passes", field: "", tag: "civildate"},
		{name: "invalid civil date", field: "24/12/2024", tag: "civildate", wantErr: true},
		{name: "impossible civil date", field: "2024-02-30", tag: "civildate", wantErr: true},
		{name: "empty tag on zero", field: "", tag: "empty"},
		{name: "empty tag on value", field: "x", tag: "empty", wantErr: true},
		{name: "oneof", field: "admin", tag: "oneof=admin staff"},
		{name: "oneof rejected", field: "guest", tag: "oneof=admin staff", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			assert.Equal(t, tt.wantErr, err != nil, "err: %v", err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    bool
		wantAmount string
	}{
		{
			name:       "decodes decimal and date",
			body:       `{"room_type_id":"5b0f8a0e-6f3c-4b8e-9d7a-1f2e3d4c5b6a","adjustment_amount":20.5,"effective_date":"2024-12-24"}`,
			wantAmount: "20.5",
		},
		{
			name:       "decimal given as string",
			body:       `{"room_type_id":"5b0f8a0e-6f3c-4b8e-9d7a-1f2e3d4c5b6a","adjustment_amount":"-30","effective_date":"2024-12-24"}`,
			wantAmount: "-30",
		},
		{
			name:    "bad date format",
			body:    `{"room_type_id":"5b0f8a0e-6f3c-4b8e-9d7a-1f2e3d4c5b6a","adjustment_amount":1,"effective_date":"12/24/2024"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"adjustment_amount":}`,
			wantErr: true,
		},
		{
			name:    "empty object",
			body:    `{}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req adjustmentRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, req.AdjustmentAmount.String())
			assert.Equal(t, "2024-12-24", req.EffectiveDate.String())
		})
	}
}
