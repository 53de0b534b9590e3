package model

import "edutrack-service/internal/store"

// CollAnnouncement is the announcement collection name.
const CollAnnouncement = "announcement"

// AnnouncementRequest defines the structure for announcement creation requests
type AnnouncementRequest struct {
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body" validate:"required"`
	Audience string `json:"audience" validate:"omitempty,oneof=all students parents teachers"`
}

func (r *AnnouncementRequest) Document(tenantID string) store.Document {
	return store.Document{
		"tenant_id": tenantID,
		"title":     r.Title,
		"body":      r.Body,
		"audience":  defaultString(r.Audience, "all"),
	}
}
