package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the referenced item or owner does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyDone means the item was already in its terminal state.
	// Callers treat it as an idempotent no-op, not a failure.
	ErrAlreadyDone = errors.New("item already done")
	// ErrNoContact means the owner has no usable delivery address. The
	// item stays pending and is retried on the next scan.
	ErrNoContact = errors.New("owner has no usable contact")
)

// mapNotFound normalizes store lookups to the service error taxonomy.
func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
