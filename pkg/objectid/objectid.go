// Package objectid generates and checks the 24-hex-character identifiers used
// as primary keys across the store.
package objectid

import "go.mongodb.org/mongo-driver/bson/primitive"

// New returns a fresh identifier in lowercase hex.
func New() string {
	return primitive.NewObjectID().Hex()
}

// IsValid reports whether s is exactly 24 hexadecimal characters.
func IsValid(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}
