package date_test

import (
	"encoding/json"
	"testing"
	"time"

	"hoteladmin/shared/date"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_DropsTimeOfDay(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	late := time.Date(2024, 12, 24, 23, 59, 0, 0, jakarta)

	assert.Equal(t, "2024-12-24", date.Of(late).String())
	assert.True(t, date.Of(late).Equal(date.New(2024, time.December, 24)))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: "2024-12-20", want: "2024-12-20"},
		{name: "leap day", input: "2024-02-29", want: "2024-02-29"},
		{name: "not a date", input: "yesterday", wantErr: true},
		{name: "wrong layout", input: "20/12/2024", wantErr: true},
		{name: "impossible day", input: "2023-02-29", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := date.Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDate_Ordering(t *testing.T) {
	a := date.New(2024, time.December, 20)
	b := date.New(2024, time.December, 24)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.AddDays(4).Equal(b))
}

func TestDate_JSON(t *testing.T) {
	payload := struct {
		On date.Date `json:"on"`
	}{On: date.New(2024, time.December, 24)}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"on":"2024-12-24"}`, string(raw))

	payload.On = date.Date{}
	require.NoError(t, json.Unmarshal([]byte(`{"on":"2025-01-01"}`), &payload))
	assert.Equal(t, "2025-01-01", payload.On.String())

	assert.Error(t, json.Unmarshal([]byte(`{"on":"01-01-2025"}`), &payload))
	assert.Error(t, json.Unmarshal([]byte(`{"on":20250101}`), &payload))
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    string
		wantErr bool
	}{
		{name: "time value", src: time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC), want: "2024-12-24"},
		{name: "text", src: "2024-12-24", want: "2024-12-24"},
		{name: "text with time", src: "2024-12-24T00:00:00Z", want: "2024-12-24"},
		{name: "bytes", src: []byte("2024-12-24"), want: "2024-12-24"},
		{name: "nil", src: nil, want: ""},
		{name: "unsupported", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d date.Date

			err := d.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_Value(t *testing.T) {
	value, err := date.New(2024, time.December, 24).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-12-24", value)

	value, err = date.Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}
