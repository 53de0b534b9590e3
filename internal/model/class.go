package model

import "edutrack-service/internal/store"

// CollClass is the class collection name.
const CollClass = "class"

// ClassRequest defines the structure for class creation requests
type ClassRequest struct {
	Name       string   `json:"name" validate:"required"`
	Code       string   `json:"code" validate:"required"`
	TeacherID  string   `json:"teacher_id"`
	GradeLevel string   `json:"grade_level"`
	StudentIDs []string `json:"student_ids"`
}

func (r *ClassRequest) Document(tenantID string) store.Document {
	doc := store.Document{
		"tenant_id":   tenantID,
		"name":        r.Name,
		"code":        r.Code,
		"student_ids": emptyIfNil(r.StudentIDs),
	}
	putIfSet(doc, "teacher_id", r.TeacherID)
	putIfSet(doc, "grade_level", r.GradeLevel)
	return doc
}

// ClassUpdate defines the structure for partial class updates.
type ClassUpdate struct {
	Name       *string  `json:"name"`
	Code       *string  `json:"code"`
	TeacherID  *string  `json:"teacher_id"`
	GradeLevel *string  `json:"grade_level"`
	StudentIDs []string `json:"student_ids"`
}

// Fields returns the set of fields present in the update payload.
func (u *ClassUpdate) Fields() store.Document {
	fields := store.Document{}
	putPtr(fields, "name", u.Name)
	putPtr(fields, "code", u.Code)
	putPtr(fields, "teacher_id", u.TeacherID)
	putPtr(fields, "grade_level", u.GradeLevel)
	if u.StudentIDs != nil {
		fields["student_ids"] = u.StudentIDs
	}
	return fields
}
