package model

import (
	"strings"

	"github.com/google/uuid"
)

// NewDocID builds document ids like "item_3f2a9c0d1b4e": a prefix joined
// with the first 12 hex characters of a random UUID.
func NewDocID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + hex[:12]
}
