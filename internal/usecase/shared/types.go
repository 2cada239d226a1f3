package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side shop snapshot; read-side views live in the queries package.
type ShopSnapshot struct {
	ID          uuid.UUID
	Domain      string
	IsActive    bool
	InstalledAt time.Time
}
