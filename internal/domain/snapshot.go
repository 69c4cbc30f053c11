package domain

import "time"

// ItemSnapshot is the last decoded inventory stored for a user.
type ItemSnapshot struct {
	UserID         string     `json:"user_id"`
	Items          *UserItems `json:"items"`
	DegradedFields []string   `json:"degraded_fields,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
