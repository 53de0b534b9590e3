package model

import "edutrack-service/internal/store"

// CollTeacher is the teacher collection name.
const CollTeacher = "teacher"

// TeacherRequest defines the structure for teacher creation requests
type TeacherRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Subject   string `json:"subject"`
	IsAdmin   bool   `json:"is_admin"`
}

func (r *TeacherRequest) Document(tenantID string) store.Document {
	doc := store.Document{
		"tenant_id":  tenantID,
		"first_name": r.FirstName,
		"last_name":  r.LastName,
		"email":      r.Email,
		"is_admin":   r.IsAdmin,
	}
	putIfSet(doc, "subject", r.Subject)
	return doc
}

// TeacherUpdate defines the structure for partial teacher updates.
type TeacherUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Subject   *string `json:"subject"`
	IsAdmin   *bool   `json:"is_admin"`
}

// Fields returns the set of fields present in the update payload.
func (u *TeacherUpdate) Fields() store.Document {
	fields := store.Document{}
	putPtr(fields, "first_name", u.FirstName)
	putPtr(fields, "last_name", u.LastName)
	putPtr(fields, "email", u.Email)
	putPtr(fields, "subject", u.Subject)
	putPtr(fields, "is_admin", u.IsAdmin)
	return fields
}
