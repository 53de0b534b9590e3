package model

import "edutrack-service/internal/store"

// CollPayment is the payment collection name.
const CollPayment = "payment"

// PaymentRequest defines the structure for payment creation requests
type PaymentRequest struct {
	InvoiceID string  `json:"invoice_id" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required"`
	Reference string  `json:"reference"`
}

func (r *PaymentRequest) Document(tenantID string) store.Document {
	doc := store.Document{
		"tenant_id":  tenantID,
		"invoice_id": r.InvoiceID,
		"amount":     r.Amount,
		"method":     r.Method,
	}
	putIfSet(doc, "reference", r.Reference)
	return doc
}
