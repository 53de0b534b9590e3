package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID validates a client-supplied identifier string and converts it to
// the store's native identifier. It fails on malformed input so a bad id is
// rejected before any store call.
func ParseID(s string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid identifier %q: %w", s, err)
	}
	return oid, nil
}

// FormatID encodes a native identifier back to its canonical string form.
func FormatID(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
