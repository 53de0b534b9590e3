package model

import "edutrack-service/internal/store"

// CollParent is the parent collection name.
const CollParent = "parent"

// ParentRequest defines the structure for parent creation requests
type ParentRequest struct {
	FirstName  string   `json:"first_name" validate:"required"`
	LastName   string   `json:"last_name" validate:"required"`
	Email      string   `json:"email" validate:"required,email"`
	Phone      string   `json:"phone"`
	StudentIDs []string `json:"student_ids"`
}

func (r *ParentRequest) Document(tenantID string) store.Document {
	doc := store.Document{
		"tenant_id":   tenantID,
		"first_name":  r.FirstName,
		"last_name":   r.LastName,
		"email":       r.Email,
		"student_ids": emptyIfNil(r.StudentIDs),
	}
	putIfSet(doc, "phone", r.Phone)
	return doc
}
