package progress

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Snapshot is a persisted progress report, keyed by the authenticated
// user. One row per user; recomputing overlays the report fields and
// keeps CreatedAt.
type Snapshot struct {
	Id          ulid.ULID `json:"id"`
	UserID      string    `json:"userId"`
	Report      Report    `json:"report"`
	AccessToken string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
