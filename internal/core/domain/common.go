package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// The By fields are nullable references: reference rows seeded by migrations
// have no acting user.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     *string   `json:"createdBy,omitempty"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy *string   `json:"lastUpdatedBy,omitempty"` // UserID reference
}

// NewAuditFields stamps a freshly created entity with the acting user and time.
func NewAuditFields(actorID string, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     &actorID,
		LastUpdatedAt: now,
		LastUpdatedBy: &actorID,
	}
}
