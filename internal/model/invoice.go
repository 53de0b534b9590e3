package model

import "edutrack-service/internal/store"

// CollInvoice is the fee invoice collection name.
const CollInvoice = "feeinvoice"

// InvoiceRequest defines the structure for fee invoice creation requests
type InvoiceRequest struct {
	StudentID string  `json:"student_id" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Currency  string  `json:"currency" validate:"required"`
	DueDate   string  `json:"due_date"`
	Status    string  `json:"status" validate:"omitempty,oneof=draft open paid void"`
	Memo      string  `json:"memo"`
}

func (r *InvoiceRequest) Document(tenantID string) store.Document {
	doc := store.Document{
		"tenant_id":  tenantID,
		"student_id": r.StudentID,
		"amount":     r.Amount,
		"currency":   r.Currency,
		"status":     defaultString(r.Status, "open"),
	}
	putIfSet(doc, "due_date", r.DueDate)
	putIfSet(doc, "memo", r.Memo)
	return doc
}
