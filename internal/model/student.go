package model

import "edutrack-service/internal/store"

// CollStudent is the student collection name.
const CollStudent = "student"

// StudentRequest defines the structure for student creation requests
type StudentRequest struct {
	FirstName string   `json:"first_name" validate:"required"`
	LastName  string   `json:"last_name" validate:"required"`
	Email     string   `json:"email" validate:"omitempty,email"`
	Grade     string   `json:"grade"`
	DOB       string   `json:"dob"`
	ParentIDs []string `json:"parent_ids"`
	ClassIDs  []string `json:"class_ids"`
	Status    string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Document builds the stored document, stamping the resolved tenant and
// applying defaults. The tenant id always comes from the request context,
// never from the payload.
func (r *StudentRequest) Document(tenantID string) store.Document {
	doc := store.Document{
		"tenant_id":  tenantID,
		"first_name": r.FirstName,
		"last_name":  r.LastName,
		"parent_ids": emptyIfNil(r.ParentIDs),
		"class_ids":  emptyIfNil(r.ClassIDs),
		"status":     defaultString(r.Status, "active"),
	}
	putIfSet(doc, "email", r.Email)
	putIfSet(doc, "grade", r.Grade)
	putIfSet(doc, "dob", r.DOB)
	return doc
}

// StudentUpdate defines the structure for partial student updates.
// Only fields present and non-null in the payload are applied.
type StudentUpdate struct {
	FirstName *string  `json:"first_name"`
	LastName  *string  `json:"last_name"`
	Email     *string  `json:"email" validate:"omitempty,email"`
	Grade     *string  `json:"grade"`
	DOB       *string  `json:"dob"`
	ParentIDs []string `json:"parent_ids"`
	ClassIDs  []string `json:"class_ids"`
	Status    *string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Fields returns the set of fields present in the update payload.
func (u *StudentUpdate) Fields() store.Document {
	fields := store.Document{}
	putPtr(fields, "first_name", u.FirstName)
	putPtr(fields, "last_name", u.LastName)
	putPtr(fields, "email", u.Email)
	putPtr(fields, "grade", u.Grade)
	putPtr(fields, "dob", u.DOB)
	putPtr(fields, "status", u.Status)
	if u.ParentIDs != nil {
		fields["parent_ids"] = u.ParentIDs
	}
	if u.ClassIDs != nil {
		fields["class_ids"] = u.ClassIDs
	}
	return fields
}
