package model

import (
	"time"

	"hoteladmin/shared/timezone"
)

// Metadata is the audit trail every stored row carries.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}

// NewMetadata stamps a row created by user now. Timestamps are cut to
// microseconds so they survive a round trip through postgres unchanged.
func NewMetadata(user string) Metadata {
	now := timezone.Now().Truncate(time.Microsecond)

	return Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}
