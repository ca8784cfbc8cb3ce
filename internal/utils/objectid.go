package utils

import (
	"encoding/hex"
	"fmt"
	"regexp"

	"github.com/SscSPs/procurement_accounting_app/internal/apperrors"
	"github.com/google/uuid"
)

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// NewObjectID returns a 24 character lowercase hex identifier. It is the first 12 bytes of a
// UUIDv7, so ids sort by creation time.
func NewObjectID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return hex.EncodeToString(id[:12])
}

// IsValidObjectID reports whether id has the 24 hex character shape.
func IsValidObjectID(id string) bool {
	return objectIDPattern.MatchString(id)
}

// ValidateObjectID returns a validation error naming field when id is malformed.
func ValidateObjectID(field, id string) error {
	if !IsValidObjectID(id) {
		return fmt.Errorf("invalid %s %q: %w", field, id, apperrors.ErrValidation)
	}
	return nil
}
