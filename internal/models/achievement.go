package models

import "time"

// Achievement as stored in the state tree. Stored achievements exist only
// for compatibility with imported snapshots; live achievement status is
// recomputed from entity counts (see the gamify package).
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}
