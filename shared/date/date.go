// Package date holds a calendar date without time-of-day or zone.
//
// A Date is always stored as midnight UTC of its year, month and day, so two
// dates compare with the usual time methods regardless of where they came from.
// It is persisted as YYYY-MM-DD and rendered in JSON the same way.
package date

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"hoteladmin/shared/constant"
)

type Date struct {
	t time.Time
}

// Of returns the calendar date of t as observed in t's own location.
func Of(t time.Time) Date {
	y, m, d := t.Date()

	return New(y, m, d)
}

func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Parse(value string) (Date, error) {
	t, err := time.Parse(constant.CivilDateFormat, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}

	return Of(t), nil
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) AddDays(days int) Date {
	return Of(d.t.AddDate(0, 0, days))
}

func (d Date) String() string {
	if d.IsZero() {
		return constant.Empty
	}

	return d.t.Format(constant.CivilDateFormat)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	if value == constant.Empty {
		*d = Date{}

		return nil
	}

	parsed, err := Parse(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}

	return d.String(), nil
}

// Scan implements sql.Scanner. Drivers hand DATE columns back either as
// time.Time or as text depending on the backend.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = Of(v)
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("cannot scan %T into date", src)
	}

	return nil
}

func (d *Date) scanText(value string) error {
	if len(value) >= len(constant.CivilDateFormat) {
		value = value[:len(constant.CivilDateFormat)]
	}

	parsed, err := Parse(value)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
