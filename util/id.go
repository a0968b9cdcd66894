// Package util provides small helpers shared across the shopcart system.
package util

import "github.com/google/uuid"

// NewID returns the id assigned to a newly committed product draft.
func NewID() string {
	return uuid.NewString()
}
