package model

import "edutrack-service/internal/store"

// CollProgress is the progress record collection name.
const CollProgress = "progress"

// ProgressRequest defines the structure for progress record creation requests
type ProgressRequest struct {
	StudentID string   `json:"student_id" validate:"required"`
	ClassID   string   `json:"class_id"`
	Metric    string   `json:"metric" validate:"omitempty,oneof=assignment quiz exam attendance behavior custom"`
	Title     string   `json:"title"`
	Score     *float64 `json:"score" validate:"omitempty,gte=0,lte=100"`
	Notes     string   `json:"notes"`
}

func (r *ProgressRequest) Document(tenantID string) store.Document {
	doc := store.Document{
		"tenant_id":  tenantID,
		"student_id": r.StudentID,
		"metric":     defaultString(r.Metric, "assignment"),
	}
	putIfSet(doc, "class_id", r.ClassID)
	putIfSet(doc, "title", r.Title)
	putIfSet(doc, "notes", r.Notes)
	if r.Score != nil {
		doc["score"] = *r.Score
	}
	return doc
}
