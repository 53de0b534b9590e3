package model

import "edutrack-service/internal/store"

// CollEnrollment is the enrollment collection name.
const CollEnrollment = "enrollment"

// EnrollmentRequest defines the structure for enrollment creation requests
type EnrollmentRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	ClassID   string `json:"class_id" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=enrolled completed dropped"`
}

func (r *EnrollmentRequest) Document(tenantID string) store.Document {
	return store.Document{
		"tenant_id":  tenantID,
		"student_id": r.StudentID,
		"class_id":   r.ClassID,
		"status":     defaultString(r.Status, "enrolled"),
	}
}
