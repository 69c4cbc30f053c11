package inventory

import (
	"time"

	"github.com/osse101/HabitInventory_Go/internal/domain"
)

// TypeSummary aggregates one ownership category
type TypeSummary struct {
	ItemType domain.ItemType `json:"itemType"`
	Distinct int             `json:"distinct"`
	Total    int             `json:"total"`
}

// EggSummary is an owned egg joined with its catalog definition. Definition
// is nil for keys the catalog does not know.
type EggSummary struct {
	Key         string                `json:"key"`
	NumberOwned int                   `json:"numberOwned"`
	Display     string                `json:"display"`
	Definition  *domain.EggDefinition `json:"definition,omitempty"`
}

// Summary is the renderer-facing overview of a stored snapshot
type Summary struct {
	UserID         string        `json:"user_id"`
	CurrentPet     *string       `json:"currentPet,omitempty"`
	CurrentMount   *string       `json:"currentMount,omitempty"`
	Types          []TypeSummary `json:"types"`
	Eggs           []EggSummary  `json:"eggs"`
	UnknownEggs    []string      `json:"unknownEggs,omitempty"`
	DegradedFields []string      `json:"degraded_fields,omitempty"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
